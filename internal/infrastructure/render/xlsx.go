package render

import (
	"bytes"
	"fmt"
	"strings"

	"bengkel_pos/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var historyColumns = []struct {
	header string
	width  float64
}{
	{"Date", 12},
	{"No", 14},
	{"Customer", 24},
	{"Phone", 18},
	{"Car", 18},
	{"Color", 12},
	{"License", 12},
	{"Items", 48},
	{"Total", 16},
}

// generateHistoryExcel writes one sheet per document kind. Totals are numeric
// cells so the sheet can be summed.
func generateHistoryExcel(shopName string, estimates, invoices []entities.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Estimates"); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet("Invoices"); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	// 3 is the built-in "#,##0" number format.
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	for sheet, docs := range map[string][]entities.Document{"Estimates": estimates, "Invoices": invoices} {
		if err := writeHistorySheet(f, sheet, shopName, docs, headerStyle, moneyStyle); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHistorySheet(f *excelize.File, sheet, shopName string, docs []entities.Document, headerStyle, moneyStyle int) error {
	lastCol, _ := excelize.ColumnNumberToName(len(historyColumns))

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(shopName+" - "+sheet))

	for i, c := range historyColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return fmt.Errorf("set col width %s: %w", name, err)
		}
		f.SetCellValue(sheet, name+"3", c.header)
	}
	f.SetCellStyle(sheet, "A3", lastCol+"3", headerStyle)

	for i, d := range docs {
		r := i + 4
		values := []any{
			d.Date,
			d.Number,
			sanitizeExcelCell(d.Customer.Name),
			sanitizeExcelCell(d.Customer.Phone),
			sanitizeExcelCell(d.Customer.Car),
			sanitizeExcelCell(d.Customer.Color),
			sanitizeExcelCell(d.Customer.License),
			sanitizeExcelCell(itemSummary(d.Items)),
			d.Total,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
		totalCell := fmt.Sprintf("%s%d", lastCol, r)
		f.SetCellStyle(sheet, totalCell, totalCell, moneyStyle)
	}
	return nil
}

func itemSummary(items []entities.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Label, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

// sanitizeExcelCell prefixes values Excel would evaluate as formulas.
func sanitizeExcelCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
