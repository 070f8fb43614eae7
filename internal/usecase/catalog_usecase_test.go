package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"
	mock_interfaces "gestao_compras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seededCatalog(t *testing.T) (*CatalogUseCase, interfaces.ITableStore) {
	t.Helper()
	store := newTestStore()
	uc := NewCatalogUseCase(store)
	if err := uc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return uc, store
}

func assertContiguous(t *testing.T, fields []entities.FormField) {
	t.Helper()
	for i, f := range fields {
		if f.Order != i {
			t.Fatalf("field %s at position %d has order %d", f.ID, i, f.Order)
		}
	}
}

func TestCatalogUseCase_SeedDefaults(t *testing.T) {
	uc, _ := seededCatalog(t)
	ctx := context.Background()
	if err := uc.SeedDefaults(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	fields, _ := uc.ListFormFields(ctx)
	if len(fields) != len(entities.DefaultFormFields()) {
		t.Fatalf("expected default fields once, got %d", len(fields))
	}
	assertContiguous(t, fields)

	statuses, _ := uc.ListStatuses(ctx)
	if len(statuses) != 5 || statuses[0].Name != "Pendente" {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
}

func TestCatalogUseCase_SeedDefaults_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockITableStore(ctrl)
	uc := NewCatalogUseCase(store)

	missing := interfaces.NewStoreError(interfaces.TableFormFields, interfaces.CodeUndefinedTable, errors.New("relation does not exist"))
	store.EXPECT().Select(gomock.Any(), interfaces.TableFormFields, gomock.Nil()).Return(nil, missing)

	if err := uc.SeedDefaults(context.Background()); !interfaces.IsMissingSchema(err) {
		t.Fatalf("expected missing schema error, got %v", err)
	}
}

func TestCatalogUseCase_Statuses(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		uc, _ := seededCatalog(t)
		if _, err := uc.CreateStatus(ctx, "  ", entities.StatusColorRed); !errors.Is(err, ErrInvalidStatusName) {
			t.Fatalf("expected ErrInvalidStatusName, got %v", err)
		}
		if _, err := uc.CreateStatus(ctx, "Novo", "pink"); !errors.Is(err, ErrInvalidStatusColor) {
			t.Fatalf("expected ErrInvalidStatusColor, got %v", err)
		}
		if _, err := uc.CreateStatus(ctx, "pendente", entities.StatusColorRed); !errors.Is(err, ErrStatusAlreadyExists) {
			t.Fatalf("expected ErrStatusAlreadyExists, got %v", err)
		}
	})

	t.Run("create update delete", func(t *testing.T) {
		uc, _ := seededCatalog(t)
		s, err := uc.CreateStatus(ctx, " Em Cotação ", entities.StatusColorGray)
		if err != nil || s.Name != "Em Cotação" {
			t.Fatalf("unexpected create result %+v %v", s, err)
		}
		s, err = uc.UpdateStatus(ctx, s.ID, "Cotação", entities.StatusColorPurple)
		if err != nil || s.Color != entities.StatusColorPurple {
			t.Fatalf("unexpected update result %+v %v", s, err)
		}
		if err := uc.DeleteStatus(ctx, s.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := uc.DeleteStatus(ctx, s.ID); !errors.Is(err, ErrStatusNotFound) {
			t.Fatalf("expected ErrStatusNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Sectors(t *testing.T) {
	ctx := context.Background()
	uc, _ := seededCatalog(t)

	s, err := uc.CreateSector(ctx, "Manutenção", "Oficina")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.CreateSector(ctx, "manutenção", ""); !errors.Is(err, ErrSectorAlreadyExists) {
		t.Fatalf("expected ErrSectorAlreadyExists, got %v", err)
	}
	if _, err := uc.UpdateSector(ctx, s.ID, "", ""); !errors.Is(err, ErrInvalidSectorName) {
		t.Fatalf("expected ErrInvalidSectorName, got %v", err)
	}
	if _, err := uc.UpdateSector(ctx, 1, "X", ""); !errors.Is(err, ErrSectorNotFound) {
		t.Fatalf("expected ErrSectorNotFound, got %v", err)
	}
	sectors, _ := uc.ListSectors(ctx)
	if len(sectors) != 1 || sectors[0].Description != "Oficina" {
		t.Fatalf("unexpected sectors: %+v", sectors)
	}
}

func TestCatalogUseCase_FormFields(t *testing.T) {
	ctx := context.Background()

	t.Run("standard fields cannot be deleted", func(t *testing.T) {
		uc, _ := seededCatalog(t)
		if err := uc.DeleteFormField(ctx, "status"); !errors.Is(err, ErrStandardFieldDelete) {
			t.Fatalf("expected ErrStandardFieldDelete, got %v", err)
		}
		if err := uc.DeleteFormField(ctx, "nope"); !errors.Is(err, ErrFieldNotFound) {
			t.Fatalf("expected ErrFieldNotFound, got %v", err)
		}
	})

	t.Run("custom field lifecycle keeps order contiguous", func(t *testing.T) {
		uc, _ := seededCatalog(t)
		if _, err := uc.CreateFormField(ctx, entities.FormField{Label: "X", Type: "color"}); !errors.Is(err, ErrInvalidFieldType) {
			t.Fatalf("expected ErrInvalidFieldType, got %v", err)
		}

		a, err := uc.CreateFormField(ctx, entities.FormField{Label: "Centro de Custo", Type: entities.FieldTypeText, Active: true})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		b, _ := uc.CreateFormField(ctx, entities.FormField{Label: "Projeto", Type: entities.FieldTypeText, Active: true})
		if !strings.HasPrefix(a.ID, "cf_") || a.Standard || a.Order != 12 || b.Order != 13 {
			t.Fatalf("unexpected custom fields: %+v %+v", a, b)
		}

		if err := uc.DeleteFormField(ctx, a.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		fields, _ := uc.ListFormFields(ctx)
		assertContiguous(t, fields)
		if fields[len(fields)-1].ID != b.ID {
			t.Fatalf("expected %s last, got %s", b.ID, fields[len(fields)-1].ID)
		}
	})

	t.Run("standard field type is fixed", func(t *testing.T) {
		uc, _ := seededCatalog(t)
		f, err := uc.UpdateFormField(ctx, "supplier", entities.FormField{Label: "Fornecedor Principal", Type: entities.FieldTypeNumber, Active: false})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if f.Type != entities.FieldTypeText || f.Active || f.Label != "Fornecedor Principal" {
			t.Fatalf("unexpected field: %+v", f)
		}
	})

	t.Run("reorder", func(t *testing.T) {
		uc, store := seededCatalog(t)
		fields, err := uc.ReorderFormFields(ctx, []string{"status", "orderNumber"})
		if err != nil {
			t.Fatalf("reorder: %v", err)
		}
		if fields[0].ID != "status" || fields[1].ID != "orderNumber" || fields[2].ID != "requestDate" {
			t.Fatalf("unexpected order: %s %s %s", fields[0].ID, fields[1].ID, fields[2].ID)
		}
		assertContiguous(t, fields)

		reloaded, _ := NewCatalogUseCase(store).ListFormFields(ctx)
		if reloaded[0].ID != "status" {
			t.Fatalf("order not persisted, first is %s", reloaded[0].ID)
		}
		assertContiguous(t, reloaded)

		if _, err := uc.ReorderFormFields(ctx, []string{"ghost"}); !errors.Is(err, ErrFieldNotFound) {
			t.Fatalf("expected ErrFieldNotFound, got %v", err)
		}
	})

	t.Run("batch list visibility", func(t *testing.T) {
		uc, _ := seededCatalog(t)
		fields, err := uc.SetListVisibility(ctx, map[string]bool{"description": true, "status": false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, f := range fields {
			if f.ID == "description" && !f.ShowInList {
				t.Fatalf("description should be listed")
			}
			if f.ID == "status" && f.ShowInList {
				t.Fatalf("status should be hidden")
			}
		}
		if _, err := uc.SetListVisibility(ctx, map[string]bool{"ghost": true}); !errors.Is(err, ErrFieldNotFound) {
			t.Fatalf("expected ErrFieldNotFound, got %v", err)
		}
	})
}
