package entities

import "math"

// LineItem is one priced row of an estimate or invoice.
//
// PanelID is empty for free-text custom items, which also carry no tier.
// UnitPrice is a snapshot taken when the item was built and does not follow
// later catalog edits.
type LineItem struct {
	PanelID   string `json:"panelId,omitempty"`
	Label     string `json:"panel"`
	Tier      Tier   `json:"size,omitempty"`
	UnitPrice int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

func (i LineItem) IsCustom() bool {
	return i.PanelID == ""
}

func (i LineItem) Amount() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// ComputeTotal sums unit price times quantity over items.
func ComputeTotal(items []LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount()
	}
	return total
}

// CheckedTotal is ComputeTotal for non-negative prices and quantities. It
// reports false when an amount or the running sum does not fit in int64.
func CheckedTotal(items []LineItem) (int64, bool) {
	var total int64
	for _, it := range items {
		if it.UnitPrice < 0 || it.Quantity < 0 {
			return 0, false
		}
		if it.Quantity > 0 && it.UnitPrice > math.MaxInt64/int64(it.Quantity) {
			return 0, false
		}
		amount := it.Amount()
		if total > math.MaxInt64-amount {
			return 0, false
		}
		total += amount
	}
	return total, true
}
