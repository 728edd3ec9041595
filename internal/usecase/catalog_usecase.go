package usecase

import (
	"context"
	"strings"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCatalogEmpty              = domainerr.Validation("price list cannot be empty")
	ErrCatalogEntryIDRequired    = domainerr.Validation("price entry id is required")
	ErrCatalogEntryPriceNegative = domainerr.Validation("price entry prices cannot be negative")
	ErrCatalogEntryNotFound      = domainerr.NotFound("price entry not found")
	ErrCatalogEntryReserved      = domainerr.Protected("default panels cannot be deleted")
)

// ICatalogUseCase manages the three-tier price list.
//
// Writes always go through a full replace of the stored catalog, so two
// concurrent writers race and the last one wins.
type ICatalogUseCase interface {
	GetAll(ctx context.Context) (entities.Catalog, error)
	ReplaceAll(ctx context.Context, catalog entities.Catalog) error
	Upsert(ctx context.Context, entry entities.CatalogEntry) (entities.CatalogEntry, error)
	Remove(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: zap.L().Named("catalog")}
}

func (u *CatalogUseCase) GetAll(ctx context.Context) (entities.Catalog, error) {
	catalog, err := u.repo.List(ctx)
	if err != nil {
		return nil, domainerr.Backend("catalog.list", err)
	}
	if catalog == nil {
		catalog = entities.Catalog{}
	}
	return catalog, nil
}

// ReplaceAll swaps the stored catalog for catalog. Default panels missing
// from catalog keep their stored entries.
func (u *CatalogUseCase) ReplaceAll(ctx context.Context, catalog entities.Catalog) error {
	if len(catalog) == 0 {
		return ErrCatalogEmpty
	}
	normalized := make(entities.Catalog, len(catalog))
	for key, entry := range catalog {
		if strings.TrimSpace(entry.ID) == "" {
			entry.ID = key
		}
		entry, err := normalizeEntry(entry)
		if err != nil {
			return err
		}
		normalized[entry.ID] = entry
	}

	current, err := u.GetAll(ctx)
	if err != nil {
		return err
	}
	var kept []string
	for id, entry := range current {
		if _, ok := normalized[id]; !ok && entities.IsReservedCatalogID(id) {
			normalized[id] = entry
			kept = append(kept, id)
		}
	}
	if len(kept) > 0 {
		u.log.Warn("replacement omitted default panels, keeping stored entries", zap.Strings("ids", kept))
	}

	if err := u.repo.ReplaceAll(ctx, normalized); err != nil {
		return domainerr.Backend("catalog.replace_all", err)
	}
	u.log.Info("price list replaced", zap.Int("entries", len(normalized)))
	return nil
}

// Upsert merges entry into the stored catalog. A blank id gets the next free
// numeric id.
func (u *CatalogUseCase) Upsert(ctx context.Context, entry entities.CatalogEntry) (entities.CatalogEntry, error) {
	current, err := u.GetAll(ctx)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if strings.TrimSpace(entry.ID) == "" {
		entry.ID = current.NextID()
	}
	entry, err = normalizeEntry(entry)
	if err != nil {
		return entities.CatalogEntry{}, err
	}

	merged := current.Clone()
	merged[entry.ID] = entry
	if err := u.repo.ReplaceAll(ctx, merged); err != nil {
		return entities.CatalogEntry{}, domainerr.Backend("catalog.replace_all", err)
	}
	u.log.Info("price entry saved", zap.String("id", entry.ID), zap.String("name", entry.Name))
	return entry, nil
}

func (u *CatalogUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCatalogEntryIDRequired
	}
	if entities.IsReservedCatalogID(id) {
		return ErrCatalogEntryReserved
	}

	current, err := u.GetAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := current[id]; !ok {
		return ErrCatalogEntryNotFound
	}
	remaining := current.Clone()
	delete(remaining, id)
	if err := u.repo.ReplaceAll(ctx, remaining); err != nil {
		return domainerr.Backend("catalog.replace_all", err)
	}
	u.log.Info("price entry removed", zap.String("id", id))
	return nil
}

func normalizeEntry(e entities.CatalogEntry) (entities.CatalogEntry, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryIDRequired
	}
	if e.NormalPrice < 0 || e.MediumPrice < 0 || e.PremiumPrice < 0 {
		return entities.CatalogEntry{}, ErrCatalogEntryPriceNegative
	}
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		e.Name = "Item " + e.ID
	}
	return e, nil
}
