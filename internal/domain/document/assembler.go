// Package document assembles priced line items and customer details into
// estimates and invoices.
package document

import (
	"strings"
	"time"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
)

// DateLayout is the id-ID short date used on documents (e.g. 16/10/2026).
const DateLayout = "2/1/2006"

var (
	ErrInvalidKind           = domainerr.Validation("invalid document kind")
	ErrCustomerNameRequired  = domainerr.Validation("customer name is required")
	ErrItemsRequired         = domainerr.Validation("at least one item is required")
	ErrItemQuantityInvalid   = domainerr.Validation("item quantity must be at least 1")
	ErrItemUnitPriceNegative = domainerr.Validation("item price cannot be negative")
	ErrTotalTooLarge         = domainerr.Validation("document total is too large")
)

// Clock supplies the creation time used for document ids and dates.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Assembler builds documents. The zero value uses the system clock and UTC.
type Assembler struct {
	clock Clock
	loc   *time.Location
}

func NewAssembler(clock Clock, loc *time.Location) *Assembler {
	return &Assembler{clock: clock, loc: loc}
}

// Build validates the input and returns a draft document of kind.
func (a *Assembler) Build(kind entities.DocumentKind, customer entities.CustomerInfo, items []entities.LineItem) (entities.Document, error) {
	if !kind.Valid() {
		return entities.Document{}, ErrInvalidKind
	}
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return entities.Document{}, ErrCustomerNameRequired
	}
	if err := ValidateItems(items); err != nil {
		return entities.Document{}, err
	}

	doc := entities.Document{
		Kind:     kind,
		Customer: customer.WithDefaults(),
		Items:    append([]entities.LineItem(nil), items...),
		Total:    entities.ComputeTotal(items),
	}
	a.stamp(&doc)
	return doc, nil
}

// CloneAcrossKind copies customer, items and total into a fresh draft of
// target. Items are not repriced.
func (a *Assembler) CloneAcrossKind(doc entities.Document, target entities.DocumentKind) entities.Document {
	out := entities.Document{
		Kind:     target,
		Customer: doc.Customer,
		Items:    append([]entities.LineItem(nil), doc.Items...),
		Total:    doc.Total,
	}
	a.stamp(&out)
	return out
}

// Validate checks a document about to be persisted and recomputes its total.
func Validate(doc entities.Document) (entities.Document, error) {
	if !doc.Kind.Valid() {
		return entities.Document{}, ErrInvalidKind
	}
	doc.Customer.Name = strings.TrimSpace(doc.Customer.Name)
	if doc.Customer.Name == "" {
		return entities.Document{}, ErrCustomerNameRequired
	}
	if err := ValidateItems(doc.Items); err != nil {
		return entities.Document{}, err
	}
	doc.Total = entities.ComputeTotal(doc.Items)
	return doc, nil
}

func ValidateItems(items []entities.LineItem) error {
	if len(items) == 0 {
		return ErrItemsRequired
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return ErrItemQuantityInvalid
		}
		if it.UnitPrice < 0 {
			return ErrItemUnitPriceNegative
		}
	}
	if _, ok := entities.CheckedTotal(items); !ok {
		return ErrTotalTooLarge
	}
	return nil
}

// Stamp assigns a fresh id, date and (for invoices) number to doc.
func (a *Assembler) Stamp(doc entities.Document) entities.Document {
	a.stamp(&doc)
	return doc
}

func (a *Assembler) stamp(doc *entities.Document) {
	now := a.now()
	doc.ID = now.UnixMilli()
	doc.Date = now.Format(DateLayout)
	doc.Number = ""
	if doc.Kind == entities.DocumentKindInvoice {
		doc.Number = entities.InvoiceNumber(doc.ID)
	}
}

func (a *Assembler) now() time.Time {
	var now time.Time
	if a == nil || a.clock == nil {
		now = time.Now()
	} else {
		now = a.clock.Now()
	}
	if a != nil && a.loc != nil {
		return now.In(a.loc)
	}
	return now.UTC()
}
