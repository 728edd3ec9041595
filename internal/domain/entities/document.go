package entities

import "strconv"

// DocumentKind tags a document as an estimate or an invoice. Both share the
// same shape; only invoices carry a Number.
type DocumentKind string

const (
	DocumentKindEstimate DocumentKind = "estimate"
	DocumentKindInvoice  DocumentKind = "invoice"
)

func (k DocumentKind) Valid() bool {
	return k == DocumentKindEstimate || k == DocumentKindInvoice
}

// Other returns the kind a document converts into.
func (k DocumentKind) Other() DocumentKind {
	if k == DocumentKindInvoice {
		return DocumentKindEstimate
	}
	return DocumentKindInvoice
}

const (
	InvoiceNumberPrefix  = "INV-"
	DefaultCustomerField = "-"
)

// CustomerInfo is the customer and vehicle block printed on a document.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Car     string `json:"car"`
	Color   string `json:"color"`
	License string `json:"license"`
}

// WithDefaults fills blank optional fields with "-".
func (c CustomerInfo) WithDefaults() CustomerInfo {
	for _, f := range []*string{&c.Address, &c.Phone, &c.Car, &c.Color, &c.License} {
		if *f == "" {
			*f = DefaultCustomerField
		}
	}
	return c
}

// Document is an estimate or invoice.
//
// Storage model (DynamoDB, one table per kind):
//   - PK: id (number, creation timestamp in unix millis)
//   - customer flattened into customer_name/address/phone/car/color/license
type Document struct {
	ID       int64        `json:"id"`
	Kind     DocumentKind `json:"kind"`
	Number   string       `json:"number,omitempty"`
	Date     string       `json:"date"`
	Customer CustomerInfo `json:"customer"`
	Items    []LineItem   `json:"items"`
	Total    int64        `json:"total"`
}

// InvoiceNumber derives "INV-" plus the last six digits of id.
func InvoiceNumber(id int64) string {
	s := strconv.FormatInt(id, 10)
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return InvoiceNumberPrefix + s
}
