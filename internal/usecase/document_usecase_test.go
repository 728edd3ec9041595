package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	mock_interfaces "bengkel_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 10, 16, 2, 0, 0, 0, time.UTC)

type documentDeps struct {
	docs    *mock_interfaces.MockIDocumentRepository
	catalog *mock_interfaces.MockICatalogRepository
	phones  *mock_interfaces.MockIPhoneNormalizer
	uc      *DocumentUseCase
}

func newDocumentDeps(t *testing.T) documentDeps {
	ctrl := gomock.NewController(t)
	d := documentDeps{
		docs:    mock_interfaces.NewMockIDocumentRepository(ctrl),
		catalog: mock_interfaces.NewMockICatalogRepository(ctrl),
		phones:  mock_interfaces.NewMockIPhoneNormalizer(ctrl),
	}
	d.uc = NewDocumentUseCase(d.docs, d.catalog, d.phones, document.NewAssembler(fixedClock{testNow}, time.UTC), 0)
	return d
}

func sampleDoc(kind entities.DocumentKind, id int64) entities.Document {
	return entities.Document{
		ID:       id,
		Kind:     kind,
		Date:     "1/10/2026",
		Customer: entities.CustomerInfo{Name: "Budi", Car: "Avanza"}.WithDefaults(),
		Items:    []entities.LineItem{{PanelID: "1", Label: "BONNET", Tier: entities.TierNormal, UnitPrice: 50000, Quantity: 1}},
		Total:    50000,
	}
}

func TestDocumentUseCase_Create(t *testing.T) {
	t.Run("invoice from catalog lines", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.catalog.EXPECT().List(gomock.Any()).Return(bonnetCatalog(), nil)
		d.phones.EXPECT().Normalize("0812 3456 7890").Return("+62 812-3456-7890")
		d.docs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc entities.Document) (bool, error) {
			if doc.Kind != entities.DocumentKindInvoice || doc.ID != testNow.UnixMilli() {
				t.Fatalf("unexpected document: %+v", doc)
			}
			return false, nil
		})

		doc, err := d.uc.Create(context.Background(), entities.DocumentKindInvoice,
			entities.CustomerInfo{Name: "Test", Phone: "0812 3456 7890"},
			[]LineSpec{{PanelID: "1", Tier: entities.TierMedium, Quantity: 2}},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Total != 150000 {
			t.Fatalf("expected total 150000, got %d", doc.Total)
		}
		if doc.Number != entities.InvoiceNumber(doc.ID) {
			t.Fatalf("unexpected number %q", doc.Number)
		}
		if doc.Customer.Phone != "+62 812-3456-7890" || doc.Customer.Address != "-" {
			t.Fatalf("unexpected customer: %+v", doc.Customer)
		}
	})

	t.Run("missing name fails before saving", func(t *testing.T) {
		d := newDocumentDeps(t)
		_, err := d.uc.Create(context.Background(), entities.DocumentKindEstimate,
			entities.CustomerInfo{}, []LineSpec{{Label: "Poles", UnitPrice: 1000}})
		if !errors.Is(err, document.ErrCustomerNameRequired) {
			t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
		}
	})

	t.Run("no lines", func(t *testing.T) {
		d := newDocumentDeps(t)
		_, err := d.uc.Create(context.Background(), entities.DocumentKindEstimate, entities.CustomerInfo{Name: "Test"}, nil)
		if !errors.Is(err, document.ErrItemsRequired) {
			t.Fatalf("expected ErrItemsRequired, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		d := newDocumentDeps(t)
		_, err := d.uc.Create(context.Background(), "receipt", entities.CustomerInfo{Name: "Test"}, nil)
		if !errors.Is(err, document.ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, errors.New("throttled"))

		_, err := d.uc.Create(context.Background(), entities.DocumentKindEstimate,
			entities.CustomerInfo{Name: "Test"}, []LineSpec{{Label: "Poles", UnitPrice: 1000}})
		if !errors.Is(err, domainerr.ErrBackend) {
			t.Fatalf("expected backend error, got %v", err)
		}
	})
}

func TestDocumentUseCase_Update(t *testing.T) {
	t.Run("keeps identity and overwrites content", func(t *testing.T) {
		d := newDocumentDeps(t)
		existing := sampleDoc(entities.DocumentKindInvoice, 1700000123456)
		existing.Number = "INV-123456"

		d.docs.EXPECT().GetByID(gomock.Any(), entities.DocumentKindInvoice, int64(1700000123456)).Return(existing, nil)
		d.docs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc entities.Document) (bool, error) {
			if doc.ID != existing.ID || doc.Number != existing.Number || doc.Date != existing.Date {
				t.Fatalf("identity changed: %+v", doc)
			}
			if doc.Total != 40000 || doc.Customer.Name != "Sari" {
				t.Fatalf("content not updated: %+v", doc)
			}
			return true, nil
		})

		_, err := d.uc.Update(context.Background(), entities.DocumentKindInvoice, existing.ID,
			entities.CustomerInfo{Name: "Sari"}, []LineSpec{{Label: "Cat ulang", UnitPrice: 20000, Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().GetByID(gomock.Any(), entities.DocumentKindEstimate, int64(5)).Return(entities.Document{}, nil)

		_, err := d.uc.Update(context.Background(), entities.DocumentKindEstimate, 5,
			entities.CustomerInfo{Name: "Sari"}, []LineSpec{{Label: "x", UnitPrice: 1}})
		if !errors.Is(err, ErrDocumentNotFound) || !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})
}

func TestDocumentUseCase_Save(t *testing.T) {
	t.Run("insert recomputes total and stamps", func(t *testing.T) {
		d := newDocumentDeps(t)
		doc := sampleDoc("", 0)
		doc.Date = ""
		doc.Total = 999

		d.phones.EXPECT().Normalize(gomock.Any()).Times(0)
		d.docs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got entities.Document) (bool, error) {
			if got.Total != 50000 || got.ID != testNow.UnixMilli() || got.Date == "" || got.Kind != entities.DocumentKindInvoice {
				t.Fatalf("unexpected document: %+v", got)
			}
			if got.Number != entities.InvoiceNumber(got.ID) {
				t.Fatalf("expected invoice number, got %q", got.Number)
			}
			return false, nil
		})

		res, err := d.uc.Save(context.Background(), entities.DocumentKindInvoice, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Action != SaveActionInserted || res.ID != testNow.UnixMilli() {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("existing id is updated", func(t *testing.T) {
		d := newDocumentDeps(t)
		doc := sampleDoc(entities.DocumentKindEstimate, 42)
		doc.Number = "INV-000042"

		d.docs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got entities.Document) (bool, error) {
			if got.ID != 42 || got.Number != "" || got.Date != "1/10/2026" {
				t.Fatalf("unexpected document: %+v", got)
			}
			return true, nil
		})

		res, err := d.uc.Save(context.Background(), entities.DocumentKindEstimate, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Action != SaveActionUpdated || res.ID != 42 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		d := newDocumentDeps(t)
		doc := sampleDoc(entities.DocumentKindEstimate, 42)
		doc.Items[0].Quantity = 0

		_, err := d.uc.Save(context.Background(), entities.DocumentKindEstimate, doc)
		if !errors.Is(err, document.ErrItemQuantityInvalid) {
			t.Fatalf("expected ErrItemQuantityInvalid, got %v", err)
		}
	})
}

func TestDocumentUseCase_GetByIDAndDelete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		d := newDocumentDeps(t)
		if _, err := d.uc.GetByID(context.Background(), entities.DocumentKindEstimate, 0); !errors.Is(err, ErrInvalidDocumentID) {
			t.Fatalf("expected ErrInvalidDocumentID, got %v", err)
		}
		if err := d.uc.Delete(context.Background(), entities.DocumentKindEstimate, -1); !errors.Is(err, ErrInvalidDocumentID) {
			t.Fatalf("expected ErrInvalidDocumentID, got %v", err)
		}
	})

	t.Run("get backend error", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().GetByID(gomock.Any(), entities.DocumentKindEstimate, int64(7)).Return(entities.Document{}, errors.New("db"))

		if _, err := d.uc.GetByID(context.Background(), entities.DocumentKindEstimate, 7); !errors.Is(err, domainerr.ErrBackend) {
			t.Fatalf("expected backend error, got %v", err)
		}
	})

	t.Run("delete missing reports not found", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().Delete(gomock.Any(), entities.DocumentKindInvoice, int64(7)).Return(false, nil)

		if err := d.uc.Delete(context.Background(), entities.DocumentKindInvoice, 7); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().Delete(gomock.Any(), entities.DocumentKindInvoice, int64(7)).Return(true, nil)

		if err := d.uc.Delete(context.Background(), entities.DocumentKindInvoice, 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDocumentUseCase_GetHistory(t *testing.T) {
	t.Run("both collections newest first", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().List(gomock.Any(), entities.DocumentKindEstimate).Return([]entities.Document{
			sampleDoc(entities.DocumentKindEstimate, 1), sampleDoc(entities.DocumentKindEstimate, 3), sampleDoc(entities.DocumentKindEstimate, 2),
		}, nil)
		d.docs.EXPECT().List(gomock.Any(), entities.DocumentKindInvoice).Return(nil, nil)

		h, err := d.uc.GetHistory(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(h.Estimates) != 3 || h.Estimates[0].ID != 3 || h.Estimates[2].ID != 1 {
			t.Fatalf("unexpected estimates order: %+v", h.Estimates)
		}
		if h.Invoices == nil || len(h.Invoices) != 0 {
			t.Fatalf("expected empty invoices, got %+v", h.Invoices)
		}
	})

	t.Run("one collection fails", func(t *testing.T) {
		d := newDocumentDeps(t)
		d.docs.EXPECT().List(gomock.Any(), entities.DocumentKindEstimate).Return(nil, nil)
		d.docs.EXPECT().List(gomock.Any(), entities.DocumentKindInvoice).Return(nil, errors.New("db"))

		if _, err := d.uc.GetHistory(context.Background()); !errors.Is(err, domainerr.ErrBackend) {
			t.Fatalf("expected backend error, got %v", err)
		}
	})
}

func TestDocumentUseCase_Convert(t *testing.T) {
	t.Run("estimate to invoice", func(t *testing.T) {
		d := newDocumentDeps(t)
		src := sampleDoc(entities.DocumentKindEstimate, 1700000000001)
		d.docs.EXPECT().GetByID(gomock.Any(), entities.DocumentKindEstimate, src.ID).Return(src, nil)

		out, err := d.uc.Convert(context.Background(), entities.DocumentKindEstimate, src.ID, entities.DocumentKindInvoice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != entities.DocumentKindInvoice || out.ID != testNow.UnixMilli() || out.Number == "" {
			t.Fatalf("unexpected draft: %+v", out)
		}
		if out.Total != src.Total || len(out.Items) != len(src.Items) || out.Items[0] != src.Items[0] {
			t.Fatalf("content not preserved: %+v", out)
		}
	})

	t.Run("invalid target", func(t *testing.T) {
		d := newDocumentDeps(t)
		if _, err := d.uc.Convert(context.Background(), entities.DocumentKindEstimate, 1, "x"); !errors.Is(err, document.ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})
}

func TestDocumentUseCase_SearchHistory(t *testing.T) {
	d := newDocumentDeps(t)
	docs := make([]entities.Document, 0, 7)
	for i := int64(1); i <= 7; i++ {
		docs = append(docs, sampleDoc(entities.DocumentKindInvoice, i))
	}
	docs[6].Customer.Name = "Sari"
	d.docs.EXPECT().List(gomock.Any(), entities.DocumentKindInvoice).Return(docs, nil).Times(2)

	res, err := d.uc.SearchHistory(context.Background(), entities.DocumentKindInvoice, "budi", 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalItems != 6 || res.PerPage != document.DefaultHistoryPageSize || res.TotalPages != 2 || len(res.Items) != 1 || res.Items[0].ID != 1 {
		t.Fatalf("unexpected page: %+v", res)
	}

	res, err = d.uc.SearchHistory(context.Background(), entities.DocumentKindInvoice, "SARI", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].ID != 7 {
		t.Fatalf("unexpected page: %+v", res)
	}
}
