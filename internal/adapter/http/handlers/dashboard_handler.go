package handlers

import (
	"errors"
	"net/http"

	"gestao_compras/internal/adapter/http/dto/response"
	"gestao_compras/internal/config"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
// @Summary Dashboard counters and series for the caller's visible requests
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.SummaryResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	summary, err := h.usecase.Summary(c.Request.Context(), user)
	out := response.SummaryResponse{Summary: summary}
	if err != nil {
		if out.Warning, ok = degrade(c, err); !ok {
			return
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) Performance(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	eval, err := h.usecase.Performance(c.Request.Context(), user)
	out := response.PerformanceResponse{Evaluation: eval}
	if err != nil {
		if out.Warning, ok = degrade(c, err); !ok {
			return
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Preferences())
}

func (h *DashboardHandler) UpdatePreferences(c *gin.Context) {
	var payload config.Preferences
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	prefs, err := h.usecase.UpdatePreferences(payload)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func mapDashboardError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidThresholds) || errors.Is(err, usecase.ErrInvalidColumnWidth) {
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	}
	return mapBackendError(err)
}
