package interfaces

import (
	"context"

	"bengkel_pos/internal/domain/entities"
)

// IDocumentRepository persists estimates and invoices, one collection per kind.
//
// GetByID returns an empty Document (ID == 0) when nothing is stored under id.
// Save overwrites every field when the id exists and reports updated=true.
// Delete reports found=false for a missing id.
type IDocumentRepository interface {
	Save(ctx context.Context, doc entities.Document) (updated bool, err error)
	GetByID(ctx context.Context, kind entities.DocumentKind, id int64) (entities.Document, error)
	List(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error)
	Delete(ctx context.Context, kind entities.DocumentKind, id int64) (found bool, err error)
}
