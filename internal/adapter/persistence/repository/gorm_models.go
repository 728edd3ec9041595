package repository

import (
	"encoding/json"

	"bengkel_pos/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TableNames names the SQL tables. Blank names fall back to the same env
// vars the DynamoDB repositories read.
type TableNames struct {
	Prices    string
	Estimates string
	Invoices  string
	Users     string
}

func (n TableNames) withDefaults() TableNames {
	return TableNames{
		Prices:    tableOrEnv(n.Prices, "PRICES_TABLE", defaultPricesTableName),
		Estimates: tableOrEnv(n.Estimates, "ESTIMATES_TABLE", defaultEstimatesTableName),
		Invoices:  tableOrEnv(n.Invoices, "INVOICES_TABLE", defaultInvoicesTableName),
		Users:     tableOrEnv(n.Users, "USERS_TABLE", defaultUsersTableName),
	}
}

type catalogModel struct {
	PanelID string `gorm:"column:panel_id;primaryKey;size:32"`
	Name    string `gorm:"column:name;size:255;not null"`
	Normal  int64  `gorm:"column:normal;not null;default:0"`
	Medium  int64  `gorm:"column:medium;not null;default:0"`
	Premium int64  `gorm:"column:premium;not null;default:0"`
}

type documentModel struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Number       string         `gorm:"column:number;size:32"`
	Date         string         `gorm:"column:date;size:32"`
	CustomerName string         `gorm:"column:customer_name;size:255"`
	Address      string         `gorm:"column:address;size:255"`
	Phone        string         `gorm:"column:phone;size:64"`
	Car          string         `gorm:"column:car;size:128"`
	Color        string         `gorm:"column:color;size:64"`
	License      string         `gorm:"column:license;size:32"`
	Items        datatypes.JSON `gorm:"column:items"`
	Total        int64          `gorm:"column:total;not null;default:0"`
}

type userModel struct {
	Username     string `gorm:"column:username;primaryKey;size:64"`
	Name         string `gorm:"column:name;size:255"`
	Role         string `gorm:"column:role;size:32"`
	PasswordHash string `gorm:"column:password_hash;size:255"`
}

// AutoMigrate creates or updates every table the SQL repositories use.
func AutoMigrate(db *gorm.DB, names TableNames) error {
	names = names.withDefaults()
	steps := []struct {
		table string
		model any
	}{
		{names.Prices, &catalogModel{}},
		{names.Estimates, &documentModel{}},
		{names.Invoices, &documentModel{}},
		{names.Users, &userModel{}},
	}
	for _, s := range steps {
		if err := db.Table(s.table).AutoMigrate(s.model); err != nil {
			return err
		}
	}
	return nil
}

func toDocumentModel(doc entities.Document) (documentModel, error) {
	rec := toDocumentRecord(doc)
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return documentModel{}, err
	}
	return documentModel{
		ID:           rec.ID,
		Number:       rec.Number,
		Date:         rec.Date,
		CustomerName: rec.CustomerName,
		Address:      rec.Address,
		Phone:        rec.Phone,
		Car:          rec.Car,
		Color:        rec.Color,
		License:      rec.License,
		Items:        datatypes.JSON(items),
		Total:        rec.Total,
	}, nil
}

func fromDocumentModel(kind entities.DocumentKind, m documentModel) (entities.Document, error) {
	rec := documentRecord{
		ID:           m.ID,
		Number:       m.Number,
		Date:         m.Date,
		CustomerName: m.CustomerName,
		Address:      m.Address,
		Phone:        m.Phone,
		Car:          m.Car,
		Color:        m.Color,
		License:      m.License,
		Total:        m.Total,
	}
	if len(m.Items) > 0 && string(m.Items) != "null" {
		if err := json.Unmarshal(m.Items, &rec.Items); err != nil {
			return entities.Document{}, err
		}
	}
	return normalizeDocument(kind, rec), nil
}
