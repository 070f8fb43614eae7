package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/thermal"
)

func TestThermalUseCase(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	uc := NewThermalUseCase(store)

	if _, err := uc.Create(ctx, entities.ThermalAnalysis{Equipment: " "}); !errors.Is(err, ErrInvalidEquipment) {
		t.Fatalf("expected ErrInvalidEquipment, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.ThermalAnalysis{Equipment: "Câmara 1", Tolerance: -1}); !errors.Is(err, thermal.ErrInvalidTolerance) {
		t.Fatalf("expected ErrInvalidTolerance, got %v", err)
	}

	a, err := uc.Create(ctx, entities.ThermalAnalysis{Equipment: "Câmara 1", Location: "Depósito", TargetTemperature: 4, Tolerance: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != entities.ThermalStatusNormal || a.Measurements == nil {
		t.Fatalf("unexpected analysis: %+v", a)
	}

	if _, err := uc.AddMeasurement(ctx, a.ID, entities.Measurement{Temperature: 5}); !errors.Is(err, thermal.ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}

	a, err = uc.AddMeasurement(ctx, a.ID, entities.Measurement{Date: "2024-05-20", Temperature: 7.5, Responsible: "Rui"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.Status != entities.ThermalStatusWarning || len(a.Measurements) != 1 {
		t.Fatalf("unexpected analysis after measurement: %+v", a)
	}

	a, err = uc.Update(ctx, a.ID, entities.ThermalAnalysis{TargetTemperature: 4, Tolerance: 1})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if a.Status != entities.ThermalStatusCritical || a.Equipment != "Câmara 1" {
		t.Fatalf("status must follow the new tolerance: %+v", a)
	}

	reloaded, err := NewThermalUseCase(store).Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Status != entities.ThermalStatusCritical || len(reloaded.Measurements) != 1 {
		t.Fatalf("not persisted: %+v", reloaded)
	}

	if err := uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, a.ID); !errors.Is(err, ErrThermalNotFound) {
		t.Fatalf("expected ErrThermalNotFound, got %v", err)
	}
}
