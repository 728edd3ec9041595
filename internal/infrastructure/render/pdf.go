package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	grayText   = &props.Color{Red: 80, Green: 80, Blue: 80}
	headerFill = &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	totalFill  = &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
)

// generatePDF renders view as an A4 portrait PDF, one print page per view page.
func generatePDF(view DocumentView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(10).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)
	for i, lines := range view.Pages {
		rows := append(documentHeaderRows(view), itemRows(lines)...)
		if i == len(view.Pages)-1 {
			rows = append(rows, totalRows(view)...)
			rows = append(rows, signatureRows(view)...)
		}
		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func documentHeaderRows(view DocumentView) []core.Row {
	right := props.Text{Size: 9, Align: align.Right, Color: grayText}
	rows := []core.Row{
		row.New(10).Add(
			col.New(8).Add(text.New(view.Shop.Name, props.Text{Size: 14, Style: fontstyle.Bold})),
			col.New(4).Add(text.New(view.Title, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right})),
		),
		row.New(6).Add(
			col.New(8).Add(text.New(view.Shop.Tagline, props.Text{Size: 9, Color: grayText})),
			col.New(4).Add(text.New("Date: "+view.Date, right)),
		),
	}
	if view.Number != "" {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("No: "+view.Number, right)),
		))
	}

	c := view.Customer
	info := props.Text{Size: 9}
	return append(rows,
		row.New(4),
		row.New(6).Add(
			col.New(4).Add(text.New("Customer: "+c.Name, info)),
			col.New(4).Add(text.New("Car: "+c.Car, info)),
			col.New(4).Add(text.New("License: "+c.License, info)),
		),
		row.New(6).Add(
			col.New(4).Add(text.New("Phone: "+c.Phone, info)),
			col.New(4).Add(text.New("Color: "+c.Color, info)),
			col.New(4).Add(text.New("Address: "+c.Address, info)),
		),
		row.New(4),
	)
}

func itemRows(lines []LineView) []core.Row {
	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: &props.Color{Red: 255, Green: 255, Blue: 255}}
	headLeft := head
	headLeft.Align = align.Left

	rows := []core.Row{row.New(8).Add(
		col.New(1).Add(text.New("#", head)).WithStyle(headerFill),
		col.New(4).Add(text.New("PANEL", headLeft)).WithStyle(headerFill),
		col.New(2).Add(text.New("SIZE", head)).WithStyle(headerFill),
		col.New(1).Add(text.New("QTY", head)).WithStyle(headerFill),
		col.New(2).Add(text.New("PRICE", head)).WithStyle(headerFill),
		col.New(2).Add(text.New("AMOUNT", head)).WithStyle(headerFill),
	)}

	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(l.Index, base)),
			col.New(4).Add(text.New(l.Label, left)),
			col.New(2).Add(text.New(l.Tier, base)),
			col.New(1).Add(text.New(l.Qty, right)),
			col.New(2).Add(text.New(l.Price, right)),
			col.New(2).Add(text.New(l.Amount, right)),
		))
	}
	return rows
}

func totalRows(view DocumentView) []core.Row {
	style := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	return []core.Row{
		row.New(4),
		row.New(9).Add(
			col.New(8).Add(text.New("TOTAL", style)).WithStyle(totalFill),
			col.New(4).Add(text.New(view.Total, style)).WithStyle(totalFill),
		),
	}
}

func signatureRows(view DocumentView) []core.Row {
	center := props.Text{Size: 8, Align: align.Center}
	rows := []core.Row{
		row.New(12),
		row.New(6).Add(
			col.New(6).Add(text.New("( _______________________ )", center)),
			col.New(6).Add(text.New("( _______________________ )", center)),
		),
		row.New(6).Add(
			col.New(6).Add(text.New(view.Shop.Name, center)),
			col.New(6).Add(text.New("CUSTOMER'S SIGNATURE", center)),
		),
	}
	for _, line := range view.Shop.Footer {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(line, props.Text{Size: 7, Align: align.Center, Color: grayText})),
		))
	}
	return rows
}
