// Package thermal classifies equipment temperature readings.
package thermal

import (
	"errors"
	"math"
	"strings"

	"gestao_compras/internal/domain/entities"
)

var (
	ErrInvalidTolerance = errors.New("tolerance must not be negative")
	ErrMissingDate      = errors.New("measurement date is required")
)

// Classify compares a reading against the target. Within the tolerance is
// Normal, up to twice the tolerance is Atenção, beyond that Crítico.
func Classify(target, tolerance, measured float64) entities.ThermalStatus {
	deviation := math.Abs(measured - target)
	switch {
	case deviation <= tolerance:
		return entities.ThermalStatusNormal
	case deviation <= 2*tolerance:
		return entities.ThermalStatusWarning
	default:
		return entities.ThermalStatusCritical
	}
}

// AddMeasurement returns a copy of the analysis with m appended and the
// status recomputed from m. Earlier measurements are kept as they are.
func AddMeasurement(a entities.ThermalAnalysis, m entities.Measurement) (entities.ThermalAnalysis, error) {
	if strings.TrimSpace(m.Date) == "" {
		return a, ErrMissingDate
	}
	if a.Tolerance < 0 {
		return a, ErrInvalidTolerance
	}
	measurements := make([]entities.Measurement, 0, len(a.Measurements)+1)
	measurements = append(measurements, a.Measurements...)
	a.Measurements = append(measurements, m)
	a.Status = Classify(a.TargetTemperature, a.Tolerance, m.Temperature)
	return a, nil
}

// CurrentStatus is the status implied by the latest measurement, Normal when there is none.
func CurrentStatus(a entities.ThermalAnalysis) entities.ThermalStatus {
	if len(a.Measurements) == 0 {
		return entities.ThermalStatusNormal
	}
	last := a.Measurements[len(a.Measurements)-1]
	return Classify(a.TargetTemperature, a.Tolerance, last.Temperature)
}
