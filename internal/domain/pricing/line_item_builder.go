// Package pricing turns catalog entries and free-text input into priced line
// items.
package pricing

import (
	"strings"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
)

var (
	ErrInvalidTier        = domainerr.Validation("invalid tier")
	ErrInvalidQuantity    = domainerr.Validation("quantity must be at least 1")
	ErrCustomLabelEmpty   = domainerr.Validation("custom item label is required")
	ErrCustomPriceInvalid = domainerr.Validation("custom item price must be greater than zero")
	ErrCustomItemNoTier   = domainerr.Validation("custom items have no tier")
)

// FromCatalog prices entry at tier. A zero quantity means one.
func FromCatalog(entry entities.CatalogEntry, tier entities.Tier, quantity int) (entities.LineItem, error) {
	if tier == "" {
		tier = entities.TierNormal
	}
	price, ok := entry.PriceFor(tier)
	if !ok {
		return entities.LineItem{}, ErrInvalidTier
	}
	qty, err := normalizeQuantity(quantity)
	if err != nil {
		return entities.LineItem{}, err
	}

	label := strings.TrimSpace(entry.Name)
	if label == "" {
		label = entry.ID
	}
	return entities.LineItem{
		PanelID:   entry.ID,
		Label:     label,
		Tier:      tier,
		UnitPrice: price,
		Quantity:  qty,
	}, nil
}

// FromCustom builds a free-text item with no catalog backing.
func FromCustom(label string, unitPrice int64, quantity int) (entities.LineItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return entities.LineItem{}, ErrCustomLabelEmpty
	}
	if unitPrice <= 0 {
		return entities.LineItem{}, ErrCustomPriceInvalid
	}
	qty, err := normalizeQuantity(quantity)
	if err != nil {
		return entities.LineItem{}, err
	}
	return entities.LineItem{Label: label, UnitPrice: unitPrice, Quantity: qty}, nil
}

// Reprice switches item to tier using the catalog price. When the panel is no
// longer in the catalog the tier changes but the price snapshot is kept.
func Reprice(item entities.LineItem, tier entities.Tier, catalog entities.Catalog) (entities.LineItem, error) {
	if item.IsCustom() {
		return entities.LineItem{}, ErrCustomItemNoTier
	}
	if !tier.Valid() {
		return entities.LineItem{}, ErrInvalidTier
	}

	out := item
	out.Tier = tier
	entry, ok := catalog[item.PanelID]
	if !ok {
		return out, nil
	}
	out.UnitPrice, _ = entry.PriceFor(tier)
	return out, nil
}

func normalizeQuantity(q int) (int, error) {
	switch {
	case q == 0:
		return 1, nil
	case q < 0:
		return 0, ErrInvalidQuantity
	}
	return q, nil
}
