package handlers

import (
	"errors"
	"net/http"

	"gestao_compras/internal/adapter/http/dto/request"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the configurable lists: statuses, sectors and form fields.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	items, err := h.usecase.ListStatuses(c.Request.Context())
	respondList(c, items, err)
}

func (h *CatalogHandler) CreateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	status, err := h.usecase.CreateStatus(c.Request.Context(), payload.Name, entities.StatusColor(payload.Color))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, status)
}

func (h *CatalogHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	status, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Name, entities.StatusColor(payload.Color))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *CatalogHandler) DeleteStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteStatus(c.Request.Context(), id); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListSectors(c *gin.Context) {
	items, err := h.usecase.ListSectors(c.Request.Context())
	respondList(c, items, err)
}

func (h *CatalogHandler) CreateSector(c *gin.Context) {
	var payload request.SectorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	sector, err := h.usecase.CreateSector(c.Request.Context(), payload.Name, payload.Description)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, sector)
}

func (h *CatalogHandler) UpdateSector(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.SectorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	sector, err := h.usecase.UpdateSector(c.Request.Context(), id, payload.Name, payload.Description)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, sector)
}

func (h *CatalogHandler) DeleteSector(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteSector(c.Request.Context(), id); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListFormFields(c *gin.Context) {
	items, err := h.usecase.ListFormFields(c.Request.Context())
	respondList(c, items, err)
}

func (h *CatalogHandler) CreateFormField(c *gin.Context) {
	var payload request.FormFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	field, err := h.usecase.CreateFormField(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, field)
}

// UpdateFormField edits a field; form field ids are strings, not numbers.
func (h *CatalogHandler) UpdateFormField(c *gin.Context) {
	var payload request.FormFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	field, err := h.usecase.UpdateFormField(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, field)
}

func (h *CatalogHandler) DeleteFormField(c *gin.Context) {
	if err := h.usecase.DeleteFormField(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ReorderFormFields(c *gin.Context) {
	var payload request.ReorderFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	fields, err := h.usecase.ReorderFormFields(c.Request.Context(), payload.IDs)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, fields)
}

func (h *CatalogHandler) SetListVisibility(c *gin.Context) {
	var payload request.ListVisibilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	fields, err := h.usecase.SetListVisibility(c.Request.Context(), payload.Visibility)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, fields)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatusName), errors.Is(err, usecase.ErrInvalidStatusColor),
		errors.Is(err, usecase.ErrInvalidSectorName), errors.Is(err, usecase.ErrInvalidFieldLabel),
		errors.Is(err, usecase.ErrInvalidFieldType):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusAlreadyExists), errors.Is(err, usecase.ErrSectorAlreadyExists):
		return pkg.NewDomainError("ALREADY_EXISTS", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStandardFieldDelete):
		return pkg.NewDomainErrorSimple("STANDARD_FIELD", "Standard fields can only be deactivated", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusNotFound), errors.Is(err, usecase.ErrSectorNotFound), errors.Is(err, usecase.ErrFieldNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
