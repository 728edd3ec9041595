package response

import (
	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/domain/pricing"
	"bengkel_pos/internal/usecase"
)

type LineItemResponse struct {
	PanelID  string `json:"panelId,omitempty"`
	Panel    string `json:"panel"`
	Size     string `json:"size,omitempty"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Car     string `json:"car"`
	Color   string `json:"color"`
	License string `json:"license"`
}

type DocumentResponse struct {
	ID        int64              `json:"id"`
	Kind      string             `json:"kind"`
	Number    string             `json:"number,omitempty"`
	Date      string             `json:"date"`
	Customer  CustomerResponse   `json:"customer"`
	Items     []LineItemResponse `json:"items"`
	Total     int64              `json:"total"`
	TotalText string             `json:"total_text"`
}

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		PanelID:  it.PanelID,
		Panel:    it.Label,
		Size:     string(it.Tier),
		Price:    it.UnitPrice,
		Quantity: it.Quantity,
		Amount:   it.Amount(),
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLineItem(it))
	}
	return out
}

func FromDocument(d entities.Document) DocumentResponse {
	c := d.Customer
	return DocumentResponse{
		ID:     d.ID,
		Kind:   string(d.Kind),
		Number: d.Number,
		Date:   d.Date,
		Customer: CustomerResponse{
			Name:    c.Name,
			Address: c.Address,
			Phone:   c.Phone,
			Car:     c.Car,
			Color:   c.Color,
			License: c.License,
		},
		Items:     fromLineItems(d.Items),
		Total:     d.Total,
		TotalText: pricing.FormatRupiah(d.Total),
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

type HistoryResponse struct {
	Estimates []DocumentResponse `json:"estimates"`
	Invoices  []DocumentResponse `json:"invoices"`
}

func FromHistory(h usecase.History) HistoryResponse {
	return HistoryResponse{Estimates: FromDocuments(h.Estimates), Invoices: FromDocuments(h.Invoices)}
}

type HistoryPageResponse struct {
	Kind       string             `json:"kind"`
	Items      []DocumentResponse `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalItems int                `json:"total_items"`
	TotalPages int                `json:"total_pages"`
}

func FromPage(kind entities.DocumentKind, p document.PageResult) HistoryPageResponse {
	return HistoryPageResponse{
		Kind:       string(kind),
		Items:      FromDocuments(p.Items),
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

type SaveResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Action  string `json:"action"`
}

func FromSaveResult(r usecase.SaveResult) SaveResponse {
	return SaveResponse{Success: true, ID: r.ID, Action: string(r.Action)}
}

type QuoteResponse struct {
	Items     []LineItemResponse `json:"items"`
	Total     int64              `json:"total"`
	TotalText string             `json:"total_text"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{Items: fromLineItems(q.Items), Total: q.Total, TotalText: pricing.FormatRupiah(q.Total)}
}
