package request

import (
	"strings"

	"bengkel_pos/internal/domain/entities"
)

// CatalogEntryRequest is one price-list row as the shop's client sends it.
type CatalogEntryRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Normal  Price  `json:"normal"`
	Medium  Price  `json:"medium"`
	Premium Price  `json:"premium"`
}

func (r CatalogEntryRequest) ToEntry() entities.CatalogEntry {
	return entities.CatalogEntry{
		ID:           strings.TrimSpace(r.ID),
		Name:         strings.TrimSpace(r.Name),
		NormalPrice:  int64(r.Normal),
		MediumPrice:  int64(r.Medium),
		PremiumPrice: int64(r.Premium),
	}
}

// ReplaceCatalogRequest carries the whole price list keyed by entry id.
type ReplaceCatalogRequest struct {
	Prices map[string]CatalogEntryRequest `json:"prices" binding:"required"`
}

func (r ReplaceCatalogRequest) ToCatalog() entities.Catalog {
	return toCatalog(r.Prices)
}

func toCatalog(prices map[string]CatalogEntryRequest) entities.Catalog {
	catalog := make(entities.Catalog, len(prices))
	for key, p := range prices {
		entry := p.ToEntry()
		if entry.ID == "" {
			entry.ID = strings.TrimSpace(key)
		}
		catalog[entry.ID] = entry
	}
	return catalog
}
