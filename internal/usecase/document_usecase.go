package usecase

import (
	"context"
	"sort"

	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDocumentNotFound  = domainerr.NotFound("document not found")
	ErrInvalidDocumentID = domainerr.Validation("invalid document id")
)

type SaveAction string

const (
	SaveActionInserted SaveAction = "inserted"
	SaveActionUpdated  SaveAction = "updated"
)

type SaveResult struct {
	ID     int64
	Action SaveAction
}

// History holds both document collections, newest first.
type History struct {
	Estimates []entities.Document
	Invoices  []entities.Document
}

// IDocumentUseCase exposes estimate and invoice operations.
//
// A document is either a draft (built in memory by Create's assembler or by
// Convert) or persisted. Every edit is a full overwrite under the same id.
type IDocumentUseCase interface {
	Create(ctx context.Context, kind entities.DocumentKind, customer entities.CustomerInfo, specs []LineSpec) (entities.Document, error)
	Update(ctx context.Context, kind entities.DocumentKind, id int64, customer entities.CustomerInfo, specs []LineSpec) (entities.Document, error)
	Save(ctx context.Context, kind entities.DocumentKind, doc entities.Document) (SaveResult, error)
	GetByID(ctx context.Context, kind entities.DocumentKind, id int64) (entities.Document, error)
	Delete(ctx context.Context, kind entities.DocumentKind, id int64) error
	GetHistory(ctx context.Context) (History, error)
	Convert(ctx context.Context, kind entities.DocumentKind, id int64, target entities.DocumentKind) (entities.Document, error)
	SearchHistory(ctx context.Context, kind entities.DocumentKind, term string, page, perPage int) (document.PageResult, error)
}

type DocumentUseCase struct {
	repo            interfaces.IDocumentRepository
	catalogRepo     interfaces.ICatalogRepository
	phones          interfaces.IPhoneNormalizer
	assembler       *document.Assembler
	historyPageSize int
	log             *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase wires the document flows. phones may be nil, in which
// case phone numbers are stored as typed.
func NewDocumentUseCase(
	repo interfaces.IDocumentRepository,
	catalogRepo interfaces.ICatalogRepository,
	phones interfaces.IPhoneNormalizer,
	assembler *document.Assembler,
	historyPageSize int,
) *DocumentUseCase {
	if assembler == nil {
		assembler = &document.Assembler{}
	}
	if historyPageSize <= 0 {
		historyPageSize = document.DefaultHistoryPageSize
	}
	return &DocumentUseCase{
		repo:            repo,
		catalogRepo:     catalogRepo,
		phones:          phones,
		assembler:       assembler,
		historyPageSize: historyPageSize,
		log:             zap.L().Named("document"),
	}
}

func (u *DocumentUseCase) Create(ctx context.Context, kind entities.DocumentKind, customer entities.CustomerInfo, specs []LineSpec) (entities.Document, error) {
	if !kind.Valid() {
		return entities.Document{}, document.ErrInvalidKind
	}
	items, err := resolveLines(ctx, u.catalogRepo, specs)
	if err != nil {
		return entities.Document{}, err
	}
	doc, err := u.assembler.Build(kind, u.normalizeCustomer(customer), items)
	if err != nil {
		return entities.Document{}, err
	}
	if _, err := u.persist(ctx, doc); err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

// Update rebuilds an existing document from new input, keeping its id, date
// and number.
func (u *DocumentUseCase) Update(ctx context.Context, kind entities.DocumentKind, id int64, customer entities.CustomerInfo, specs []LineSpec) (entities.Document, error) {
	existing, err := u.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Document{}, err
	}
	items, err := resolveLines(ctx, u.catalogRepo, specs)
	if err != nil {
		return entities.Document{}, err
	}
	draft, err := u.assembler.Build(kind, u.normalizeCustomer(customer), items)
	if err != nil {
		return entities.Document{}, err
	}
	draft.ID = existing.ID
	draft.Date = existing.Date
	draft.Number = existing.Number

	if _, err := u.persist(ctx, draft); err != nil {
		return entities.Document{}, err
	}
	return draft, nil
}

// Save stores a fully formed document, overwriting any document with the same
// id. A zero id is treated as a new document.
func (u *DocumentUseCase) Save(ctx context.Context, kind entities.DocumentKind, doc entities.Document) (SaveResult, error) {
	if !kind.Valid() {
		return SaveResult{}, document.ErrInvalidKind
	}
	doc.Kind = kind
	switch {
	case doc.ID == 0:
		doc = u.assembler.Stamp(doc)
	case doc.Date == "":
		doc.Date = u.assembler.Stamp(doc).Date
	}
	if kind == entities.DocumentKindInvoice && doc.Number == "" {
		doc.Number = entities.InvoiceNumber(doc.ID)
	}
	if kind == entities.DocumentKindEstimate {
		doc.Number = ""
	}
	doc.Customer = u.normalizeCustomer(doc.Customer).WithDefaults()

	doc, err := document.Validate(doc)
	if err != nil {
		return SaveResult{}, err
	}
	return u.persist(ctx, doc)
}

func (u *DocumentUseCase) persist(ctx context.Context, doc entities.Document) (SaveResult, error) {
	updated, err := u.repo.Save(ctx, doc)
	if err != nil {
		return SaveResult{}, domainerr.Backend(string(doc.Kind)+".save", err)
	}
	res := SaveResult{ID: doc.ID, Action: SaveActionInserted}
	if updated {
		res.Action = SaveActionUpdated
	}
	u.log.Info("document saved",
		zap.String("kind", string(doc.Kind)),
		zap.Int64("id", doc.ID),
		zap.String("action", string(res.Action)),
		zap.Int64("total", doc.Total),
	)
	return res, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, kind entities.DocumentKind, id int64) (entities.Document, error) {
	if !kind.Valid() {
		return entities.Document{}, document.ErrInvalidKind
	}
	if id <= 0 {
		return entities.Document{}, ErrInvalidDocumentID
	}
	doc, err := u.repo.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Document{}, domainerr.Backend(string(kind)+".get", err)
	}
	if doc.ID == 0 {
		return entities.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

func (u *DocumentUseCase) Delete(ctx context.Context, kind entities.DocumentKind, id int64) error {
	if !kind.Valid() {
		return document.ErrInvalidKind
	}
	if id <= 0 {
		return ErrInvalidDocumentID
	}
	found, err := u.repo.Delete(ctx, kind, id)
	if err != nil {
		return domainerr.Backend(string(kind)+".delete", err)
	}
	if !found {
		return ErrDocumentNotFound
	}
	u.log.Info("document deleted", zap.String("kind", string(kind)), zap.Int64("id", id))
	return nil
}

// GetHistory fetches both collections concurrently.
func (u *DocumentUseCase) GetHistory(ctx context.Context) (History, error) {
	var h History
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := u.list(gctx, entities.DocumentKindEstimate)
		h.Estimates = docs
		return err
	})
	g.Go(func() error {
		docs, err := u.list(gctx, entities.DocumentKindInvoice)
		h.Invoices = docs
		return err
	})
	if err := g.Wait(); err != nil {
		return History{}, err
	}
	return h, nil
}

// Convert loads a document and returns a draft of target carrying the same
// customer, items and total.
func (u *DocumentUseCase) Convert(ctx context.Context, kind entities.DocumentKind, id int64, target entities.DocumentKind) (entities.Document, error) {
	if !target.Valid() {
		return entities.Document{}, document.ErrInvalidKind
	}
	src, err := u.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Document{}, err
	}
	return u.assembler.CloneAcrossKind(src, target), nil
}

func (u *DocumentUseCase) SearchHistory(ctx context.Context, kind entities.DocumentKind, term string, page, perPage int) (document.PageResult, error) {
	if !kind.Valid() {
		return document.PageResult{}, document.ErrInvalidKind
	}
	if perPage <= 0 {
		perPage = u.historyPageSize
	}
	docs, err := u.list(ctx, kind)
	if err != nil {
		return document.PageResult{}, err
	}
	return document.Page(document.Filter(docs, term), page, perPage), nil
}

func (u *DocumentUseCase) list(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	docs, err := u.repo.List(ctx, kind)
	if err != nil {
		return nil, domainerr.Backend(string(kind)+".list", err)
	}
	if docs == nil {
		docs = []entities.Document{}
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].ID > docs[j].ID })
	return docs, nil
}

func (u *DocumentUseCase) normalizeCustomer(c entities.CustomerInfo) entities.CustomerInfo {
	if u.phones != nil && c.Phone != "" && c.Phone != entities.DefaultCustomerField {
		c.Phone = u.phones.Normalize(c.Phone)
	}
	return c
}
