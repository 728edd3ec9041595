package repository

import (
	"context"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CatalogGormRepository keeps the price list in a SQL table.
type CatalogGormRepository struct {
	db    *gorm.DB
	table string
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB, names TableNames) *CatalogGormRepository {
	return &CatalogGormRepository{db: db, table: names.withDefaults().Prices}
}

func (r *CatalogGormRepository) List(ctx context.Context) (entities.Catalog, error) {
	var rows []catalogModel
	if err := r.db.WithContext(ctx).Table(r.table).Order("panel_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	catalog := make(entities.Catalog, len(rows))
	for _, m := range rows {
		catalog[m.PanelID] = entities.CatalogEntry{
			ID:           m.PanelID,
			Name:         m.Name,
			NormalPrice:  m.Normal,
			MediumPrice:  m.Medium,
			PremiumPrice: m.Premium,
		}
	}
	return catalog, nil
}

// ReplaceAll swaps the table contents inside one transaction.
func (r *CatalogGormRepository) ReplaceAll(ctx context.Context, catalog entities.Catalog) error {
	rows := make([]catalogModel, 0, len(catalog))
	for _, e := range catalog {
		rows = append(rows, catalogModel{
			PanelID: e.ID,
			Name:    e.Name,
			Normal:  e.NormalPrice,
			Medium:  e.MediumPrice,
			Premium: e.PremiumPrice,
		})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(r.table).Where("1 = 1").Delete(&catalogModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Table(r.table).CreateInBatches(&rows, 100).Error
	})
}
