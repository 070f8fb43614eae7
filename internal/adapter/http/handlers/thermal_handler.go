package handlers

import (
	"errors"
	"net/http"

	"gestao_compras/internal/adapter/http/dto/request"
	"gestao_compras/internal/domain/thermal"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
)

type ThermalHandler struct {
	usecase usecase.IThermalUseCase
}

func NewThermalHandler(uc usecase.IThermalUseCase) *ThermalHandler {
	return &ThermalHandler{usecase: uc}
}

func (h *ThermalHandler) ListAnalyses(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	respondList(c, items, err)
}

func (h *ThermalHandler) GetAnalysis(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapThermalError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ThermalHandler) CreateAnalysis(c *gin.Context) {
	var payload request.ThermalAnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapThermalError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ThermalHandler) UpdateAnalysis(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.ThermalAnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, mapThermalError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ThermalHandler) DeleteAnalysis(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapThermalError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMeasurement appends a reading and returns the analysis with its new status.
func (h *ThermalHandler) AddMeasurement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.MeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.AddMeasurement(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, mapThermalError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

func mapThermalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipment), errors.Is(err, thermal.ErrInvalidTolerance), errors.Is(err, thermal.ErrMissingDate):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrThermalNotFound):
		return pkg.NewDomainErrorSimple("THERMAL_ANALYSIS_NOT_FOUND", "Thermal analysis not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
