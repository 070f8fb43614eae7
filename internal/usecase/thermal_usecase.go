package usecase

//go:generate mockgen -source=thermal_usecase.go -destination=../adapter/http/handlers/mocks/mock_thermal_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/thermal"
	"gestao_compras/internal/usecase/interfaces"
)

var (
	ErrThermalNotFound  = errors.New("thermal analysis not found")
	ErrInvalidEquipment = errors.New("equipment name is required")
)

type IThermalUseCase interface {
	List(ctx context.Context) ([]entities.ThermalAnalysis, error)
	Get(ctx context.Context, id int64) (entities.ThermalAnalysis, error)
	Create(ctx context.Context, a entities.ThermalAnalysis) (entities.ThermalAnalysis, error)
	Update(ctx context.Context, id int64, a entities.ThermalAnalysis) (entities.ThermalAnalysis, error)
	Delete(ctx context.Context, id int64) error
	AddMeasurement(ctx context.Context, id int64, measurement entities.Measurement) (entities.ThermalAnalysis, error)
	Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
}

type ThermalUseCase struct {
	analyses *collection[entities.ThermalAnalysis]
}

var _ IThermalUseCase = (*ThermalUseCase)(nil)

func NewThermalUseCase(store interfaces.ITableStore) *ThermalUseCase {
	return &ThermalUseCase{
		analyses: newCollection(interfaces.TableThermal, store, func(a entities.ThermalAnalysis) any { return a.ID }),
	}
}

func (u *ThermalUseCase) List(ctx context.Context) ([]entities.ThermalAnalysis, error) {
	return u.analyses.All(ctx)
}

func (u *ThermalUseCase) Get(ctx context.Context, id int64) (entities.ThermalAnalysis, error) {
	a, ok, err := u.analyses.Find(ctx, id)
	if err != nil {
		return entities.ThermalAnalysis{}, err
	}
	if !ok {
		return entities.ThermalAnalysis{}, ErrThermalNotFound
	}
	return a, nil
}

func (u *ThermalUseCase) Create(ctx context.Context, a entities.ThermalAnalysis) (entities.ThermalAnalysis, error) {
	a.Equipment = strings.TrimSpace(a.Equipment)
	a.Location = strings.TrimSpace(a.Location)
	if a.Equipment == "" {
		return entities.ThermalAnalysis{}, ErrInvalidEquipment
	}
	if a.Tolerance < 0 {
		return entities.ThermalAnalysis{}, thermal.ErrInvalidTolerance
	}
	if a.Measurements == nil {
		a.Measurements = []entities.Measurement{}
	}
	a.ID = nextID()
	a.Status = thermal.CurrentStatus(a)
	if err := u.analyses.Insert(ctx, a); err != nil {
		return entities.ThermalAnalysis{}, err
	}
	return a, nil
}

// Update edits the equipment data. Measurements are append-only and are
// left untouched; the status is recomputed against the new target.
func (u *ThermalUseCase) Update(ctx context.Context, id int64, a entities.ThermalAnalysis) (entities.ThermalAnalysis, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.ThermalAnalysis{}, err
	}
	if a.Tolerance < 0 {
		return entities.ThermalAnalysis{}, thermal.ErrInvalidTolerance
	}
	updated := existing
	if eq := strings.TrimSpace(a.Equipment); eq != "" {
		updated.Equipment = eq
	}
	updated.Location = strings.TrimSpace(a.Location)
	updated.TargetTemperature = a.TargetTemperature
	updated.Tolerance = a.Tolerance
	updated.Status = thermal.CurrentStatus(updated)

	patch := entities.Row{
		"equipment":         updated.Equipment,
		"location":          updated.Location,
		"targetTemperature": updated.TargetTemperature,
		"tolerance":         updated.Tolerance,
		"status":            string(updated.Status),
	}
	if err := u.analyses.Update(ctx, updated, patch); err != nil {
		return entities.ThermalAnalysis{}, err
	}
	return updated, nil
}

func (u *ThermalUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.analyses.Remove(ctx, id)
}

func (u *ThermalUseCase) AddMeasurement(ctx context.Context, id int64, m entities.Measurement) (entities.ThermalAnalysis, error) {
	a, err := u.Get(ctx, id)
	if err != nil {
		return entities.ThermalAnalysis{}, err
	}
	updated, err := thermal.AddMeasurement(a, m)
	if err != nil {
		return entities.ThermalAnalysis{}, err
	}
	patch := entities.Row{"measurements": updated.Measurements, "status": string(updated.Status)}
	if err := u.analyses.Update(ctx, updated, patch); err != nil {
		return entities.ThermalAnalysis{}, err
	}
	return updated, nil
}

func (u *ThermalUseCase) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return u.analyses.Watch(ctx, notifier)
}
