package pricing

import (
	"errors"
	"testing"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
)

var bonnet = entities.CatalogEntry{ID: "1", Name: "BONNET", NormalPrice: 50000, MediumPrice: 75000, PremiumPrice: 100000}

func TestFromCatalog(t *testing.T) {
	t.Run("medium tier quantity two", func(t *testing.T) {
		item, err := FromCatalog(bonnet, entities.TierMedium, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.PanelID != "1" || item.UnitPrice != 75000 || item.Quantity != 2 || item.Tier != entities.TierMedium {
			t.Fatalf("unexpected item: %+v", item)
		}
		if item.Label != "BONNET" {
			t.Fatalf("expected label from entry name, got %q", item.Label)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		item, err := FromCatalog(bonnet, "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Tier != entities.TierNormal || item.UnitPrice != 50000 || item.Quantity != 1 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("every tier matches entry", func(t *testing.T) {
		for _, tier := range []entities.Tier{entities.TierNormal, entities.TierMedium, entities.TierPremium} {
			item, err := FromCatalog(bonnet, tier, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want, _ := bonnet.PriceFor(tier)
			if item.UnitPrice != want {
				t.Fatalf("tier %s: got %d want %d", tier, item.UnitPrice, want)
			}
		}
	})

	t.Run("invalid tier", func(t *testing.T) {
		_, err := FromCatalog(bonnet, "deluxe", 1)
		if !errors.Is(err, ErrInvalidTier) || !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrInvalidTier, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := FromCatalog(bonnet, entities.TierNormal, -1)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("nameless entry falls back to id", func(t *testing.T) {
		item, err := FromCatalog(entities.CatalogEntry{ID: "20", NormalPrice: 1}, entities.TierNormal, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Label != "20" {
			t.Fatalf("expected id label, got %q", item.Label)
		}
	})
}

func TestFromCustom(t *testing.T) {
	item, err := FromCustom("  Poles body  ", 20000, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.IsCustom() || item.Tier != "" || item.Label != "Poles body" || item.Quantity != 3 || item.UnitPrice != 20000 {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, err := FromCustom(" ", 1000, 1); !errors.Is(err, ErrCustomLabelEmpty) {
		t.Fatalf("expected ErrCustomLabelEmpty, got %v", err)
	}
	for _, price := range []int64{0, -5} {
		if _, err := FromCustom("Poles", price, 1); !errors.Is(err, ErrCustomPriceInvalid) {
			t.Fatalf("price %d: expected ErrCustomPriceInvalid, got %v", price, err)
		}
	}
	if _, err := FromCustom("Poles", 1000, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestReprice(t *testing.T) {
	catalog := entities.Catalog{"1": bonnet}
	item, _ := FromCatalog(bonnet, entities.TierNormal, 2)

	t.Run("uses catalog tier price", func(t *testing.T) {
		for _, tier := range []entities.Tier{entities.TierNormal, entities.TierMedium, entities.TierPremium} {
			out, err := Reprice(item, tier, catalog)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want, _ := catalog["1"].PriceFor(tier)
			if out.UnitPrice != want || out.Tier != tier || out.Quantity != 2 {
				t.Fatalf("unexpected item: %+v", out)
			}
		}
		if item.Tier != entities.TierNormal {
			t.Fatalf("reprice must not mutate the input")
		}
	})

	t.Run("missing panel keeps price", func(t *testing.T) {
		out, err := Reprice(item, entities.TierPremium, entities.Catalog{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.UnitPrice != 50000 || out.Tier != entities.TierPremium {
			t.Fatalf("unexpected item: %+v", out)
		}
	})

	t.Run("custom item", func(t *testing.T) {
		custom, _ := FromCustom("Poles", 1000, 1)
		if _, err := Reprice(custom, entities.TierMedium, catalog); !errors.Is(err, ErrCustomItemNoTier) {
			t.Fatalf("expected ErrCustomItemNoTier, got %v", err)
		}
	})

	t.Run("invalid tier", func(t *testing.T) {
		if _, err := Reprice(item, "", catalog); !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("expected ErrInvalidTier, got %v", err)
		}
	})
}
