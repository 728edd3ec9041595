package entities

import (
	"strconv"
	"strings"
)

// Tier is the repair size/quality level a panel is priced at.
type Tier string

const (
	TierNormal  Tier = "normal"
	TierMedium  Tier = "medium"
	TierPremium Tier = "premium"
)

func (t Tier) Valid() bool {
	switch t {
	case TierNormal, TierMedium, TierPremium:
		return true
	}
	return false
}

// Reserved catalog ids are the 17 default car panels. They can be repriced
// but never deleted.
const (
	MinReservedCatalogID = 1
	MaxReservedCatalogID = 17
)

// CatalogEntry is one price-list row.
//
// Storage model (DynamoDB):
//   - PK: panel_id
type CatalogEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NormalPrice  int64  `json:"normal"`
	MediumPrice  int64  `json:"medium"`
	PremiumPrice int64  `json:"premium"`
}

// PriceFor returns the entry price for the given tier.
func (e CatalogEntry) PriceFor(t Tier) (int64, bool) {
	switch t {
	case TierNormal:
		return e.NormalPrice, true
	case TierMedium:
		return e.MediumPrice, true
	case TierPremium:
		return e.PremiumPrice, true
	}
	return 0, false
}

// Catalog is the full price list keyed by entry id.
type Catalog map[string]CatalogEntry

func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// NextID returns one past the highest numeric id in the catalog.
func (c Catalog) NextID() string {
	max := 0
	for id := range c {
		if n, err := strconv.Atoi(strings.TrimSpace(id)); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// IsReservedCatalogID reports whether id is one of the protected default panels.
func IsReservedCatalogID(id string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return false
	}
	return n >= MinReservedCatalogID && n <= MaxReservedCatalogID
}
