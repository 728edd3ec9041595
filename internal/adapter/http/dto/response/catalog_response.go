package response

import (
	"bengkel_pos/internal/domain/entities"
)

type CatalogEntryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Normal   int64  `json:"normal"`
	Medium   int64  `json:"medium"`
	Premium  int64  `json:"premium"`
	Reserved bool   `json:"reserved"`
}

func FromCatalogEntry(e entities.CatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:       e.ID,
		Name:     e.Name,
		Normal:   e.NormalPrice,
		Medium:   e.MediumPrice,
		Premium:  e.PremiumPrice,
		Reserved: entities.IsReservedCatalogID(e.ID),
	}
}

// FromCatalog keeps the id-keyed map shape the client stores.
func FromCatalog(c entities.Catalog) map[string]CatalogEntryResponse {
	out := make(map[string]CatalogEntryResponse, len(c))
	for id, e := range c {
		out[id] = FromCatalogEntry(e)
	}
	return out
}
