package entities

import "strings"

// Panel is one of the reserved car body panels shown on the car diagram.
type Panel struct {
	ID           string
	Slug         string
	Name         string
	NormalPrice  int64
	MediumPrice  int64
	PremiumPrice int64
}

// DisplayName is the label printed on documents, e.g. "BONNET (1)".
func (p Panel) DisplayName() string {
	return p.Name + " (" + p.ID + ")"
}

func (p Panel) CatalogEntry() CatalogEntry {
	return CatalogEntry{
		ID:           p.ID,
		Name:         p.Name,
		NormalPrice:  p.NormalPrice,
		MediumPrice:  p.MediumPrice,
		PremiumPrice: p.PremiumPrice,
	}
}

var DefaultPanels = []Panel{
	{ID: "1", Slug: "bonnet", Name: "BONNET", NormalPrice: 50000, MediumPrice: 75000, PremiumPrice: 100000},
	{ID: "2", Slug: "roof", Name: "ROOF", NormalPrice: 60000, MediumPrice: 90000, PremiumPrice: 120000},
	{ID: "3", Slug: "back-door", Name: "BACK DOOR", NormalPrice: 50000, MediumPrice: 75000, PremiumPrice: 100000},
	{ID: "4", Slug: "lf-fender", Name: "LF FENDER", NormalPrice: 40000, MediumPrice: 60000, PremiumPrice: 80000},
	{ID: "5", Slug: "lf-door", Name: "LF DOOR", NormalPrice: 45000, MediumPrice: 65000, PremiumPrice: 85000},
	{ID: "6", Slug: "lr-door", Name: "LR DOOR", NormalPrice: 45000, MediumPrice: 65000, PremiumPrice: 85000},
	{ID: "7", Slug: "lr-fender", Name: "LR FENDER", NormalPrice: 40000, MediumPrice: 60000, PremiumPrice: 80000},
	{ID: "8", Slug: "rf-fender", Name: "RF FENDER", NormalPrice: 40000, MediumPrice: 60000, PremiumPrice: 80000},
	{ID: "9", Slug: "rf-door", Name: "RF DOOR", NormalPrice: 45000, MediumPrice: 65000, PremiumPrice: 85000},
	{ID: "10", Slug: "rr-door", Name: "RR DOOR", NormalPrice: 45000, MediumPrice: 65000, PremiumPrice: 85000},
	{ID: "11", Slug: "rr-fender", Name: "RR FENDER", NormalPrice: 40000, MediumPrice: 60000, PremiumPrice: 80000},
	{ID: "12", Slug: "front-bumper", Name: "FRONT BUMPER", NormalPrice: 50000, MediumPrice: 75000, PremiumPrice: 100000},
	{ID: "13", Slug: "rear-bumper", Name: "REAR BUMPER", NormalPrice: 50000, MediumPrice: 75000, PremiumPrice: 100000},
	{ID: "14", Slug: "l-trisplang", Name: "(L) TRISPLANG", NormalPrice: 35000, MediumPrice: 50000, PremiumPrice: 70000},
	{ID: "15", Slug: "r-trisplang", Name: "(R) TRISPLANG", NormalPrice: 35000, MediumPrice: 50000, PremiumPrice: 70000},
	{ID: "16", Slug: "l-panel-roof", Name: "(L) PANEL ROOF", NormalPrice: 40000, MediumPrice: 60000, PremiumPrice: 80000},
	{ID: "17", Slug: "r-panel-roof", Name: "(R) PANEL ROOF", NormalPrice: 40000, MediumPrice: 60000, PremiumPrice: 80000},
}

// DefaultCatalog builds a catalog holding only the reserved panels.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(DefaultPanels))
	for _, p := range DefaultPanels {
		c[p.ID] = p.CatalogEntry()
	}
	return c
}

// ResolvePanelID maps a legacy panel reference (slug, display name or id) to a
// catalog id. Unknown references are returned unchanged.
func ResolvePanelID(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	for _, p := range DefaultPanels {
		if ref == p.ID || ref == p.Slug || ref == p.DisplayName() {
			return p.ID
		}
	}
	return ref
}
