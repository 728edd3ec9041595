package render

import (
	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/entities"
)

// Renderer produces every printable artifact for the shop.
type Renderer struct {
	shop     ShopView
	pageSize int
	html     *htmlRenderer
}

func NewRenderer(shopName string, pageSize int) *Renderer {
	if pageSize <= 0 {
		pageSize = document.DefaultPrintPageSize
	}
	if shopName == "" {
		shopName = "Body Repair"
	}
	return &Renderer{
		shop: ShopView{
			Name:    shopName,
			Tagline: "Professional Auto Body Solutions",
			Footer: []string{
				"*NOT RESPONSIBLE FOR ITEMS LEFT IN CAR",
				"WE APPRECIATE YOUR BUSINESS",
			},
		},
		pageSize: pageSize,
		html:     newHTMLRenderer(),
	}
}

// View lays doc out into print pages.
func (r *Renderer) View(doc entities.Document) DocumentView {
	return newDocumentView(r.shop, doc, r.pageSize)
}

func (r *Renderer) HTML(doc entities.Document) (string, error) {
	return r.html.render(r.View(doc))
}

func (r *Renderer) PDF(doc entities.Document) ([]byte, error) {
	return generatePDF(r.View(doc))
}

func (r *Renderer) HistoryXLSX(estimates, invoices []entities.Document) ([]byte, error) {
	return generateHistoryExcel(r.shop.Name, estimates, invoices)
}
