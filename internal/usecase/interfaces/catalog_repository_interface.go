package interfaces

import (
	"context"

	"bengkel_pos/internal/domain/entities"
)

// ICatalogRepository abstracts persistence of the price catalog.
//
// The store is read and written wholesale:
//   - List returns every entry keyed by id (empty catalog when nothing is stored)
//   - ReplaceAll makes the stored catalog exactly the given set
type ICatalogRepository interface {
	List(ctx context.Context) (entities.Catalog, error)
	ReplaceAll(ctx context.Context, catalog entities.Catalog) error
}
