package repository

import (
	"context"
	"errors"
	"fmt"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentGormRepository stores estimates and invoices in two SQL tables with
// the customer flattened into columns and items as a JSON column.
type DocumentGormRepository struct {
	db     *gorm.DB
	tables map[entities.DocumentKind]string
}

var _ interfaces.IDocumentRepository = (*DocumentGormRepository)(nil)

func NewDocumentGormRepository(db *gorm.DB, names TableNames) *DocumentGormRepository {
	names = names.withDefaults()
	return &DocumentGormRepository{
		db: db,
		tables: map[entities.DocumentKind]string{
			entities.DocumentKindEstimate: names.Estimates,
			entities.DocumentKindInvoice:  names.Invoices,
		},
	}
}

func (r *DocumentGormRepository) table(kind entities.DocumentKind) (string, error) {
	t, ok := r.tables[kind]
	if !ok {
		return "", fmt.Errorf("no table for document kind %q", kind)
	}
	return t, nil
}

func (r *DocumentGormRepository) Save(ctx context.Context, doc entities.Document) (bool, error) {
	table, err := r.table(doc.Kind)
	if err != nil {
		return false, err
	}
	m, err := toDocumentModel(doc)
	if err != nil {
		return false, err
	}

	var updated bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(table).Where("id = ?", doc.ID).Count(&count).Error; err != nil {
			return err
		}
		updated = count > 0
		return tx.Table(table).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (r *DocumentGormRepository) GetByID(ctx context.Context, kind entities.DocumentKind, id int64) (entities.Document, error) {
	table, err := r.table(kind)
	if err != nil {
		return entities.Document{}, err
	}
	var m documentModel
	err = r.db.WithContext(ctx).Table(table).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Document{}, nil
	}
	if err != nil {
		return entities.Document{}, err
	}
	return fromDocumentModel(kind, m)
}

func (r *DocumentGormRepository) List(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	var rows []documentModel
	if err := r.db.WithContext(ctx).Table(table).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]entities.Document, 0, len(rows))
	for _, m := range rows {
		doc, err := fromDocumentModel(kind, m)
		if err != nil {
			return nil, fmt.Errorf("decode %s %d: %w", kind, m.ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *DocumentGormRepository) Delete(ctx context.Context, kind entities.DocumentKind, id int64) (bool, error) {
	table, err := r.table(kind)
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&documentModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
