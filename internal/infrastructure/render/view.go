// Package render turns documents into printable HTML and PDF, and document
// history into spreadsheets.
package render

import (
	"strconv"
	"strings"

	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/domain/pricing"
)

// ShopView is the letterhead printed on every page.
type ShopView struct {
	Name    string
	Tagline string
	Footer  []string
}

type LineView struct {
	Index  string
	Label  string
	Tier   string
	Qty    string
	Price  string
	Amount string
}

// DocumentView is a document laid out for printing: items are split into
// fixed-size pages and every amount is preformatted as Rupiah.
type DocumentView struct {
	Shop     ShopView
	Title    string
	Kind     entities.DocumentKind
	Number   string
	Date     string
	Customer entities.CustomerInfo
	Pages    [][]LineView
	Total    string
}

func (v DocumentView) PageCount() int {
	return len(v.Pages)
}

func newDocumentView(shop ShopView, doc entities.Document, pageSize int) DocumentView {
	lines := make([]LineView, 0, len(doc.Items))
	for i, it := range doc.Items {
		lines = append(lines, LineView{
			Index:  strconv.Itoa(i + 1),
			Label:  it.Label,
			Tier:   tierLabel(it.Tier),
			Qty:    strconv.Itoa(it.Quantity),
			Price:  pricing.FormatRupiah(it.UnitPrice),
			Amount: pricing.FormatRupiah(it.Amount()),
		})
	}

	view := DocumentView{
		Shop:     shop,
		Title:    documentTitle(doc.Kind),
		Kind:     doc.Kind,
		Number:   doc.Number,
		Date:     doc.Date,
		Customer: doc.Customer.WithDefaults(),
		Total:    pricing.FormatRupiah(doc.Total),
	}
	offset := 0
	for _, page := range document.Paginate(doc.Items, pageSize) {
		view.Pages = append(view.Pages, lines[offset:offset+len(page)])
		offset += len(page)
	}
	if len(view.Pages) == 0 {
		view.Pages = [][]LineView{{}}
	}
	return view
}

func documentTitle(kind entities.DocumentKind) string {
	if kind == entities.DocumentKindInvoice {
		return "SERVICE ORDER"
	}
	return "ESTIMATE"
}

func tierLabel(t entities.Tier) string {
	if t == "" {
		return "-"
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}
