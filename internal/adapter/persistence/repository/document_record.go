package repository

import (
	"strings"
	"time"

	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/entities"
)

// documentRecord is the stored shape of an estimate or invoice. The customer
// block is flattened into columns. Older rows may instead carry a nested
// customer map or the legacy "customer name" column.
type documentRecord struct {
	ID                 int64            `dynamodbav:"id"`
	Number             string           `dynamodbav:"number,omitempty"`
	Date               string           `dynamodbav:"date"`
	CustomerName       string           `dynamodbav:"customer_name"`
	LegacyCustomerName string           `dynamodbav:"customer name,omitempty"`
	Customer           *customerRecord  `dynamodbav:"customer,omitempty"`
	Address            string           `dynamodbav:"address"`
	Phone              string           `dynamodbav:"phone"`
	Car                string           `dynamodbav:"car"`
	Color              string           `dynamodbav:"color"`
	License            string           `dynamodbav:"license"`
	Items              []lineItemRecord `dynamodbav:"items"`
	Total              int64            `dynamodbav:"total"`
}

type customerRecord struct {
	Name    string `dynamodbav:"name" json:"name"`
	Address string `dynamodbav:"address" json:"address"`
	Phone   string `dynamodbav:"phone" json:"phone"`
	Car     string `dynamodbav:"car" json:"car"`
	Color   string `dynamodbav:"color" json:"color"`
	License string `dynamodbav:"license" json:"license"`
}

// lineItemRecord keeps the field names the shop's browser client has always
// written ("panel", "size", "price").
type lineItemRecord struct {
	PanelID  string `dynamodbav:"panelId,omitempty" json:"panelId,omitempty"`
	Panel    string `dynamodbav:"panel" json:"panel"`
	Size     string `dynamodbav:"size,omitempty" json:"size,omitempty"`
	Price    int64  `dynamodbav:"price" json:"price"`
	Quantity int    `dynamodbav:"quantity" json:"quantity"`
}

func toDocumentRecord(doc entities.Document) documentRecord {
	c := doc.Customer.WithDefaults()
	return documentRecord{
		ID:           doc.ID,
		Number:       doc.Number,
		Date:         doc.Date,
		CustomerName: c.Name,
		Address:      c.Address,
		Phone:        c.Phone,
		Car:          c.Car,
		Color:        c.Color,
		License:      c.License,
		Items:        toLineItemRecords(doc.Items),
		Total:        doc.Total,
	}
}

func toLineItemRecords(items []entities.LineItem) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemRecord{
			PanelID:  it.PanelID,
			Panel:    it.Label,
			Size:     string(it.Tier),
			Price:    it.UnitPrice,
			Quantity: it.Quantity,
		})
	}
	return out
}

// normalizeDocument is the single place stored rows of any vintage become a
// canonical Document.
func normalizeDocument(kind entities.DocumentKind, rec documentRecord) entities.Document {
	doc := entities.Document{
		ID:       rec.ID,
		Kind:     kind,
		Date:     normalizeDate(rec.Date),
		Customer: normalizeCustomer(rec),
		Items:    normalizeItems(rec.Items),
	}
	doc.Total = entities.ComputeTotal(doc.Items)
	if kind == entities.DocumentKindInvoice {
		doc.Number = rec.Number
		if doc.Number == "" {
			doc.Number = entities.InvoiceNumber(rec.ID)
		}
	}
	return doc
}

func normalizeCustomer(rec documentRecord) entities.CustomerInfo {
	if rec.Customer != nil && strings.TrimSpace(rec.Customer.Name) != "" {
		c := rec.Customer
		return entities.CustomerInfo{
			Name:    strings.TrimSpace(c.Name),
			Address: c.Address,
			Phone:   c.Phone,
			Car:     c.Car,
			Color:   c.Color,
			License: c.License,
		}.WithDefaults()
	}
	name := rec.CustomerName
	if strings.TrimSpace(name) == "" {
		name = rec.LegacyCustomerName
	}
	return entities.CustomerInfo{
		Name:    strings.TrimSpace(name),
		Address: rec.Address,
		Phone:   rec.Phone,
		Car:     rec.Car,
		Color:   rec.Color,
		License: rec.License,
	}.WithDefaults()
}

func normalizeItems(recs []lineItemRecord) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(recs))
	for _, r := range recs {
		it := entities.LineItem{
			PanelID:   strings.TrimSpace(r.PanelID),
			Label:     strings.TrimSpace(r.Panel),
			UnitPrice: r.Price,
			Quantity:  r.Quantity,
		}
		if it.PanelID == "" {
			if id := entities.ResolvePanelID(it.Label); id != it.Label {
				it.PanelID = id
			}
		} else {
			it.PanelID = entities.ResolvePanelID(it.PanelID)
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if it.UnitPrice < 0 {
			it.UnitPrice = 0
		}
		if !it.IsCustom() {
			it.Tier = entities.Tier(strings.ToLower(strings.TrimSpace(r.Size)))
			if !it.Tier.Valid() {
				it.Tier = entities.TierNormal
			}
		}
		items = append(items, it)
	}
	return items
}

// normalizeDate renders ISO timestamps written by older clients in the
// short document layout and passes anything else through.
func normalizeDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(document.DateLayout)
	}
	return s
}
