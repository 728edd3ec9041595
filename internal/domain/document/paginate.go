package document

import (
	"strings"

	"bengkel_pos/internal/domain/entities"
)

const (
	DefaultPrintPageSize   = 25
	DefaultHistoryPageSize = 5
)

// Paginate splits items into consecutive windows of pageSize for printing.
func Paginate(items []entities.LineItem, pageSize int) [][]entities.LineItem {
	if pageSize <= 0 {
		pageSize = DefaultPrintPageSize
	}
	var pages [][]entities.LineItem
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}

// Filter keeps documents whose customer name, car or date contains term,
// ignoring case. A blank term keeps everything.
func Filter(docs []entities.Document, term string) []entities.Document {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return docs
	}
	out := make([]entities.Document, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Customer.Name), term) ||
			strings.Contains(strings.ToLower(d.Customer.Car), term) ||
			strings.Contains(strings.ToLower(d.Date), term) {
			out = append(out, d)
		}
	}
	return out
}

// PageResult is one page of a history listing.
type PageResult struct {
	Items      []entities.Document
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// Page returns the 1-based page of docs. Out-of-range pages are empty.
func Page(docs []entities.Document, page, perPage int) PageResult {
	if perPage <= 0 {
		perPage = DefaultHistoryPageSize
	}
	if page < 1 {
		page = 1
	}
	res := PageResult{
		Items:      []entities.Document{},
		Page:       page,
		PerPage:    perPage,
		TotalItems: len(docs),
	}
	if len(docs) > 0 {
		res.TotalPages = (len(docs)-1)/perPage + 1
	}
	if page > res.TotalPages {
		return res
	}
	start := (page - 1) * perPage
	end := len(docs)
	if end-start > perPage {
		end = start + perPage
	}
	res.Items = docs[start:end]
	return res
}
