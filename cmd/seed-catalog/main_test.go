package main

import (
	"context"
	"testing"

	"bengkel_pos/internal/adapter/http/handlers/mocks"
	"bengkel_pos/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps existing prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		current := entities.Catalog{
			"1":  {ID: "1", Name: "BONNET", NormalPrice: 1},
			"20": {ID: "20", Name: "SPION", NormalPrice: 10000},
		}
		uc.EXPECT().GetAll(ctx).Return(current, nil)
		uc.EXPECT().ReplaceAll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Catalog) error {
			if len(c) != 18 || c["1"].NormalPrice != 1 || c["20"].Name != "SPION" {
				t.Fatalf("unexpected merged catalog: %+v", c)
			}
			return nil
		})

		n, err := seedCatalog(ctx, uc, false)
		if err != nil || n != 18 {
			t.Fatalf("expected 18 entries, got %d (%v)", n, err)
		}
	})

	t.Run("nothing missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		uc.EXPECT().GetAll(ctx).Return(entities.DefaultCatalog(), nil)

		if n, err := seedCatalog(ctx, uc, false); err != nil || n != 17 {
			t.Fatalf("expected 17 entries, got %d (%v)", n, err)
		}
	})

	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		uc.EXPECT().ReplaceAll(ctx, entities.DefaultCatalog()).Return(nil)

		if n, err := seedCatalog(ctx, uc, true); err != nil || n != 17 {
			t.Fatalf("expected 17 entries, got %d (%v)", n, err)
		}
	})
}
