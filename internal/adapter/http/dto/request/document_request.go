package request

import (
	"strings"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Car     string `json:"car"`
	Color   string `json:"color"`
	License string `json:"license"`
}

func (r CustomerRequest) ToEntity() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:    strings.TrimSpace(r.Name),
		Address: strings.TrimSpace(r.Address),
		Phone:   strings.TrimSpace(r.Phone),
		Car:     strings.TrimSpace(r.Car),
		Color:   strings.TrimSpace(r.Color),
		License: strings.TrimSpace(r.License),
	}
}

// LineRequest is one line item. A blank panelId makes it a custom item
// priced from price; otherwise price is ignored when the line is resolved
// against the catalog.
type LineRequest struct {
	PanelID  string `json:"panelId"`
	Panel    string `json:"panel"`
	Size     string `json:"size"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
}

func (r LineRequest) tier() entities.Tier {
	return entities.Tier(strings.ToLower(strings.TrimSpace(r.Size)))
}

func (r LineRequest) ToSpec() usecase.LineSpec {
	return usecase.LineSpec{
		PanelID:   strings.TrimSpace(r.PanelID),
		Tier:      r.tier(),
		Label:     strings.TrimSpace(r.Panel),
		UnitPrice: int64(r.Price),
		Quantity:  r.Quantity,
	}
}

// ToItem keeps the line as an already priced snapshot. A missing quantity
// means 1 and a legacy panel slug resolves to its catalog id.
func (r LineRequest) ToItem() entities.LineItem {
	item := entities.LineItem{
		PanelID:   entities.ResolvePanelID(r.PanelID),
		Label:     strings.TrimSpace(r.Panel),
		UnitPrice: int64(r.Price),
		Quantity:  r.Quantity,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if !item.IsCustom() {
		item.Tier = r.tier()
	}
	return item
}

func specs(lines []LineRequest) []usecase.LineSpec {
	out := make([]usecase.LineSpec, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.ToSpec())
	}
	return out
}

// DocumentRequest creates or rebuilds an estimate or invoice from the catalog.
type DocumentRequest struct {
	Customer CustomerRequest `json:"customer"`
	Items    []LineRequest   `json:"items" binding:"required"`
}

func (r DocumentRequest) Specs() []usecase.LineSpec {
	return specs(r.Items)
}

type QuoteRequest struct {
	Items []LineRequest `json:"items" binding:"required"`
}

func (r QuoteRequest) Specs() []usecase.LineSpec {
	return specs(r.Items)
}

type RepriceRequest struct {
	Item LineRequest `json:"item"`
	Size string      `json:"size" binding:"required"`
}

func (r RepriceRequest) Tier() entities.Tier {
	return entities.Tier(strings.ToLower(strings.TrimSpace(r.Size)))
}

// StoredDocumentRequest is a complete document as the client keeps it, with
// item prices already fixed. The total is recomputed on save.
type StoredDocumentRequest struct {
	ID       DocumentID      `json:"id"`
	Number   string          `json:"number"`
	Date     string          `json:"date"`
	Customer CustomerRequest `json:"customer"`
	Items    []LineRequest   `json:"items"`
	Total    Price           `json:"total"`
}

func (r StoredDocumentRequest) ToEntity(kind entities.DocumentKind) entities.Document {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, l := range r.Items {
		items = append(items, l.ToItem())
	}
	return entities.Document{
		ID:       int64(r.ID),
		Kind:     kind,
		Number:   strings.TrimSpace(r.Number),
		Date:     strings.TrimSpace(r.Date),
		Customer: r.Customer.ToEntity(),
		Items:    items,
		Total:    int64(r.Total),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
