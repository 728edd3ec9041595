package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/domain/pricing"
	mock_interfaces "bengkel_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestQuoteUseCase_Quote(t *testing.T) {
	t.Run("bonnet scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil)

		q, err := uc.Quote(context.Background(), []LineSpec{{PanelID: "1", Tier: entities.TierMedium, Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Items) != 1 || q.Items[0].PanelID != "1" || q.Items[0].UnitPrice != 75000 || q.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %+v", q.Items)
		}
		if q.Total != 150000 {
			t.Fatalf("expected total 150000, got %d", q.Total)
		}
	})

	t.Run("custom only does not read catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		q, err := uc.Quote(context.Background(), []LineSpec{{Label: "Poles", UnitPrice: 20000, Quantity: 3}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Total != 60000 || !q.Items[0].IsCustom() {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("total overflow", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.Quote(context.Background(), []LineSpec{
			{Label: "Poles", UnitPrice: math.MaxInt64 / 2, Quantity: 1},
			{Label: "Cat", UnitPrice: math.MaxInt64 / 2, Quantity: 3},
		})
		if !errors.Is(err, document.ErrTotalTooLarge) || !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrTotalTooLarge, got %v", err)
		}
	})

	t.Run("quantity change moves total by delta times price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil).Times(2)

		specs := []LineSpec{{PanelID: "1", Tier: entities.TierPremium, Quantity: 1}, {PanelID: "20", Quantity: 2}}
		before, err := uc.Quote(context.Background(), specs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		specs[1].Quantity = 5
		after, err := uc.Quote(context.Background(), specs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if after.Total-before.Total != 3*10000 {
			t.Fatalf("expected delta 30000, got %d", after.Total-before.Total)
		}
	})

	t.Run("legacy slug reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil)

		q, err := uc.Quote(context.Background(), []LineSpec{{PanelID: "bonnet"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Items[0].PanelID != "1" || q.Items[0].UnitPrice != 50000 || q.Items[0].Quantity != 1 {
			t.Fatalf("unexpected item: %+v", q.Items[0])
		}
	})

	t.Run("unknown panel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil)

		if _, err := uc.Quote(context.Background(), []LineSpec{{PanelID: "99"}}); !errors.Is(err, ErrUnknownPanel) {
			t.Fatalf("expected ErrUnknownPanel, got %v", err)
		}
	})

	t.Run("catalog backend error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

		if _, err := uc.Quote(context.Background(), []LineSpec{{PanelID: "1"}}); !errors.Is(err, domainerr.ErrBackend) {
			t.Fatalf("expected backend error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Reprice(t *testing.T) {
	item := entities.LineItem{PanelID: "1", Label: "BONNET", Tier: entities.TierNormal, UnitPrice: 50000, Quantity: 1}

	t.Run("uses catalog tier price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil)

		out, err := uc.Reprice(context.Background(), item, entities.TierPremium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.UnitPrice != bonnetCatalog()["1"].PremiumPrice || out.Tier != entities.TierPremium {
			t.Fatalf("unexpected item: %+v", out)
		}
	})

	t.Run("slug resolves to catalog id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil)

		legacy := item
		legacy.PanelID = "bonnet"
		out, err := uc.Reprice(context.Background(), legacy, entities.TierMedium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PanelID != "1" || out.UnitPrice != bonnetCatalog()["1"].MediumPrice {
			t.Fatalf("unexpected item: %+v", out)
		}
	})

	t.Run("missing panel keeps price and warns", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		orig := zap.L()
		zap.ReplaceGlobals(zap.New(core))
		defer zap.ReplaceGlobals(orig)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(entities.Catalog{}, nil)

		out, err := uc.Reprice(context.Background(), item, entities.TierMedium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.UnitPrice != 50000 || out.Tier != entities.TierMedium {
			t.Fatalf("unexpected item: %+v", out)
		}
		if logs.Len() != 1 {
			t.Fatalf("expected 1 warning, got %d", logs.Len())
		}
	})

	t.Run("custom item", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.Reprice(context.Background(), entities.LineItem{Label: "x", UnitPrice: 1, Quantity: 1}, entities.TierMedium)
		if !errors.Is(err, pricing.ErrCustomItemNoTier) {
			t.Fatalf("expected ErrCustomItemNoTier, got %v", err)
		}
	})
}
