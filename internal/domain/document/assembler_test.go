package document

import (
	"errors"
	"math"
	"testing"
	"time"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/domain/pricing"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var jakarta = time.FixedZone("WIB", 7*3600)

func newTestAssembler(t time.Time) *Assembler {
	return NewAssembler(fixedClock{t: t}, jakarta)
}

func TestAssembler_Build(t *testing.T) {
	created := time.Date(2026, 10, 16, 3, 4, 5, 0, time.UTC)
	a := newTestAssembler(created)
	bonnet := entities.CatalogEntry{ID: "1", Name: "BONNET", NormalPrice: 50000, MediumPrice: 75000, PremiumPrice: 100000}

	t.Run("bonnet scenario", func(t *testing.T) {
		item, err := pricing.FromCatalog(bonnet, entities.TierMedium, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc, err := a.Build(entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Test"}, []entities.LineItem{item})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Total != 150000 {
			t.Fatalf("expected total 150000, got %d", doc.Total)
		}
		if doc.ID != created.UnixMilli() {
			t.Fatalf("expected id from clock, got %d", doc.ID)
		}
		if doc.Date != "16/10/2026" {
			t.Fatalf("unexpected date %q", doc.Date)
		}
		if doc.Number != "" {
			t.Fatalf("estimates carry no number, got %q", doc.Number)
		}
		if doc.Customer.License != "-" {
			t.Fatalf("expected license default, got %q", doc.Customer.License)
		}
	})

	t.Run("invoice gets number", func(t *testing.T) {
		doc, err := a.Build(entities.DocumentKindInvoice, entities.CustomerInfo{Name: "Test"}, []entities.LineItem{{Label: "x", UnitPrice: 1, Quantity: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Number != entities.InvoiceNumber(created.UnixMilli()) {
			t.Fatalf("unexpected number %q", doc.Number)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		_, err := a.Build(entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Test"}, nil)
		if !errors.Is(err, ErrItemsRequired) || !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrItemsRequired, got %v", err)
		}
	})

	t.Run("empty customer name regardless of items", func(t *testing.T) {
		for _, items := range [][]entities.LineItem{nil, {{Label: "x", UnitPrice: 1, Quantity: 1}}} {
			_, err := a.Build(entities.DocumentKindInvoice, entities.CustomerInfo{Name: "   "}, items)
			if !errors.Is(err, ErrCustomerNameRequired) {
				t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
			}
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := a.Build("receipt", entities.CustomerInfo{Name: "Test"}, []entities.LineItem{{Label: "x", UnitPrice: 1, Quantity: 1}})
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("zero quantity item", func(t *testing.T) {
		_, err := a.Build(entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Test"}, []entities.LineItem{{Label: "x", UnitPrice: 1}})
		if !errors.Is(err, ErrItemQuantityInvalid) {
			t.Fatalf("expected ErrItemQuantityInvalid, got %v", err)
		}
	})

	t.Run("total overflow", func(t *testing.T) {
		items := []entities.LineItem{{Label: "x", UnitPrice: math.MaxInt64 / 2, Quantity: 3}}
		_, err := a.Build(entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Budi"}, items)
		if !errors.Is(err, ErrTotalTooLarge) || !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrTotalTooLarge, got %v", err)
		}

		items = []entities.LineItem{
			{Label: "x", UnitPrice: math.MaxInt64 - 1, Quantity: 1},
			{Label: "y", UnitPrice: 2, Quantity: 1},
		}
		if _, err := Validate(entities.Document{Kind: entities.DocumentKindInvoice, Customer: entities.CustomerInfo{Name: "Budi"}, Items: items}); !errors.Is(err, ErrTotalTooLarge) {
			t.Fatalf("expected ErrTotalTooLarge for sum, got %v", err)
		}
	})

	t.Run("items are copied", func(t *testing.T) {
		items := []entities.LineItem{{Label: "x", UnitPrice: 10, Quantity: 1}}
		doc, _ := a.Build(entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Test"}, items)
		items[0].UnitPrice = 99
		if doc.Items[0].UnitPrice != 10 {
			t.Fatalf("document must not alias caller items")
		}
	})
}

func TestAssembler_CloneAcrossKind(t *testing.T) {
	first := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	src, err := newTestAssembler(first).Build(entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Budi", Car: "Avanza"}, []entities.LineItem{
		{PanelID: "1", Label: "BONNET", Tier: entities.TierNormal, UnitPrice: 50000, Quantity: 1},
		{Label: "Poles", UnitPrice: 20000, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv := newTestAssembler(later).CloneAcrossKind(src, entities.DocumentKindInvoice)
	if inv.Kind != entities.DocumentKindInvoice || inv.Number == "" {
		t.Fatalf("expected invoice with number: %+v", inv)
	}
	if inv.ID == src.ID || inv.Date == src.Date {
		t.Fatalf("expected fresh id/date")
	}
	if inv.Total != src.Total || len(inv.Items) != len(src.Items) {
		t.Fatalf("total/items must be preserved")
	}
	for i := range src.Items {
		if inv.Items[i] != src.Items[i] {
			t.Fatalf("item %d changed: %+v vs %+v", i, inv.Items[i], src.Items[i])
		}
	}
	if inv.Customer != src.Customer {
		t.Fatalf("customer must be preserved")
	}

	back := newTestAssembler(later).CloneAcrossKind(inv, entities.DocumentKindEstimate)
	if back.Number != "" {
		t.Fatalf("estimate must not carry invoice number")
	}
}

func TestValidate_RecomputesTotal(t *testing.T) {
	doc := entities.Document{
		Kind:     entities.DocumentKindInvoice,
		Customer: entities.CustomerInfo{Name: " Budi "},
		Items:    []entities.LineItem{{Label: "x", UnitPrice: 1000, Quantity: 3}},
		Total:    1,
	}
	out, err := Validate(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 3000 || out.Customer.Name != "Budi" {
		t.Fatalf("unexpected document: %+v", out)
	}

	doc.Items[0].UnitPrice = -1
	if _, err := Validate(doc); !errors.Is(err, ErrItemUnitPriceNegative) {
		t.Fatalf("expected ErrItemUnitPriceNegative, got %v", err)
	}
}

func TestAssembler_ZeroValue(t *testing.T) {
	var a Assembler
	doc := a.Stamp(entities.Document{Kind: entities.DocumentKindInvoice})
	if doc.ID == 0 || doc.Date == "" || doc.Number == "" {
		t.Fatalf("expected stamped document, got %+v", doc)
	}
}
