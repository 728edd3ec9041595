package usecase

import (
	"context"
	"strings"

	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/domain/pricing"
	"bengkel_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrUnknownPanel = domainerr.Validation("panel is not in the price list")

// LineSpec is one requested line: a catalog panel at a tier, or a free-text
// item when PanelID is blank.
type LineSpec struct {
	PanelID   string
	Tier      entities.Tier
	Label     string
	UnitPrice int64
	Quantity  int
}

func (s LineSpec) isCustom() bool {
	return strings.TrimSpace(s.PanelID) == ""
}

// Quote is a priced draft that has not been persisted.
type Quote struct {
	Items []entities.LineItem
	Total int64
}

type IQuoteUseCase interface {
	Quote(ctx context.Context, specs []LineSpec) (Quote, error)
	Reprice(ctx context.Context, item entities.LineItem, tier entities.Tier) (entities.LineItem, error)
}

type QuoteUseCase struct {
	catalogRepo interfaces.ICatalogRepository
	log         *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(catalogRepo interfaces.ICatalogRepository) *QuoteUseCase {
	return &QuoteUseCase{catalogRepo: catalogRepo, log: zap.L().Named("quote")}
}

func (u *QuoteUseCase) Quote(ctx context.Context, specs []LineSpec) (Quote, error) {
	items, err := resolveLines(ctx, u.catalogRepo, specs)
	if err != nil {
		return Quote{}, err
	}
	total, ok := entities.CheckedTotal(items)
	if !ok {
		return Quote{}, document.ErrTotalTooLarge
	}
	return Quote{Items: items, Total: total}, nil
}

func (u *QuoteUseCase) Reprice(ctx context.Context, item entities.LineItem, tier entities.Tier) (entities.LineItem, error) {
	if item.IsCustom() {
		return entities.LineItem{}, pricing.ErrCustomItemNoTier
	}
	catalog, err := u.catalogRepo.List(ctx)
	if err != nil {
		return entities.LineItem{}, domainerr.Backend("catalog.list", err)
	}
	item.PanelID = entities.ResolvePanelID(item.PanelID)
	out, err := pricing.Reprice(item, tier, catalog)
	if err != nil {
		return entities.LineItem{}, err
	}
	if _, ok := catalog[item.PanelID]; !ok {
		u.log.Warn("panel missing from price list, keeping price",
			zap.String("panel_id", item.PanelID),
			zap.Int64("price", item.UnitPrice),
		)
	}
	return out, nil
}

// resolveLines prices specs in order. The catalog is only fetched when at
// least one spec references a panel.
func resolveLines(ctx context.Context, repo interfaces.ICatalogRepository, specs []LineSpec) ([]entities.LineItem, error) {
	var catalog entities.Catalog
	for _, s := range specs {
		if !s.isCustom() {
			var err error
			if catalog, err = repo.List(ctx); err != nil {
				return nil, domainerr.Backend("catalog.list", err)
			}
			break
		}
	}

	items := make([]entities.LineItem, 0, len(specs))
	for _, s := range specs {
		var (
			item entities.LineItem
			err  error
		)
		if s.isCustom() {
			item, err = pricing.FromCustom(s.Label, s.UnitPrice, s.Quantity)
		} else {
			entry, ok := catalog[entities.ResolvePanelID(s.PanelID)]
			if !ok {
				return nil, ErrUnknownPanel
			}
			item, err = pricing.FromCatalog(entry, s.Tier, s.Quantity)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
