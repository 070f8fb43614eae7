package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gestao_compras/internal/adapter/http/dto/response"
	"gestao_compras/internal/infrastructure/spreadsheet"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ExportRequests godoc
// @Summary Export the visible requests as an xlsx workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param from query string false "First request date (YYYY-MM-DD)"
// @Param to query string false "Last request date (YYYY-MM-DD)"
// @Param columns query string false "Comma separated column ids"
// @Param history query bool false "Add the history sheet"
// @Param upload query bool false "Upload to object storage and return a link"
// @Success 200 {object} response.ExportResponse
// @Router /reports/requests [get]
func (h *ReportHandler) ExportRequests(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	opts := usecase.ExportOptions{
		From:           c.Query("from"),
		To:             c.Query("to"),
		Columns:        splitList(c.Query("columns")),
		IncludeHistory: queryBool(c, "history"),
		Upload:         queryBool(c, "upload"),
	}

	res, err := h.usecase.Export(c.Request.Context(), user, opts)
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}

	if opts.Upload {
		c.JSON(http.StatusOK, response.FromExport(res))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	c.Data(http.StatusOK, spreadsheet.ContentType, res.Content)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange), errors.Is(err, usecase.ErrInvalidDateFormat):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageDisabled):
		return pkg.NewDomainErrorSimple("STORAGE_DISABLED", "Report storage is not configured", http.StatusNotImplemented)
	default:
		return mapBackendError(err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}
