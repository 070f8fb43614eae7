package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"
)

func insertRequests(t *testing.T, store interfaces.ITableStore, reqs ...entities.Request) {
	t.Helper()
	for _, r := range reqs {
		row, err := entities.ToRow(r)
		if err != nil {
			t.Fatalf("row: %v", err)
		}
		if err := store.Insert(context.Background(), interfaces.TableRequests, row); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
}

func TestSupplierUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := NewSupplierUseCase(newTestStore(), nil, "")

	if _, err := uc.Create(ctx, entities.Supplier{Name: " "}); !errors.Is(err, ErrInvalidSupplierName) {
		t.Fatalf("expected ErrInvalidSupplierName, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.Supplier{Name: "ACME", Rating: 6}); !errors.Is(err, ErrInvalidSupplierRating) {
		t.Fatalf("expected ErrInvalidSupplierRating, got %v", err)
	}

	s, err := uc.Create(ctx, entities.Supplier{Name: " ACME ", Rating: 4, Category: "Elétrica"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Create(ctx, entities.Supplier{Name: "acme"}); !errors.Is(err, ErrSupplierAlreadyExists) {
		t.Fatalf("expected ErrSupplierAlreadyExists, got %v", err)
	}

	s, err = uc.Update(ctx, s.ID, entities.Supplier{Name: "ACME Ltda", Rating: 5})
	if err != nil || s.Name != "ACME Ltda" || s.Rating != 5 {
		t.Fatalf("unexpected update %+v %v", s, err)
	}
	if err := uc.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, s.ID); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

func TestSupplierUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	requests, _ := newRequestFixture(t, store)
	uc := NewSupplierUseCase(store, requests, entities.DefaultDeliveredStatus)

	s, err := uc.Create(ctx, entities.Supplier{Name: "ACME"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	insertRequests(t, store,
		entities.Request{ID: 1, Supplier: "ACME", Sector: "Compras", Status: "Entregue", RequestDate: "2024-05-01", DeliveryDate: "2024-05-05"},
		entities.Request{ID: 2, Supplier: "ACME", Sector: "TI", Status: "Entregue", RequestDate: "2024-05-01", DeliveryDate: "2024-05-11"},
		entities.Request{ID: 3, Supplier: "ACME", Sector: "Compras", Status: "Pendente", RequestDate: "2024-05-02"},
		entities.Request{ID: 4, Supplier: "Outra", Sector: "Compras", Status: "Pendente"},
		entities.Request{ID: 5, Supplier: "acme ", Sector: "Compras", Status: "Pendente", RequestDate: "2024-05-03"},
	)

	stats, err := uc.Stats(ctx, manager, s.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Delivered != 2 || stats.Open != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.AvgLeadTimeDays == nil || *stats.AvgLeadTimeDays != 7 {
		t.Fatalf("expected average lead time 7, got %v", stats.AvgLeadTimeDays)
	}

	scoped, _ := uc.Stats(ctx, buyer, s.ID)
	if scoped.Total != 2 {
		t.Fatalf("stats must follow visibility, got %+v", scoped)
	}
}
