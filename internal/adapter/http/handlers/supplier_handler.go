package handlers

import (
	"errors"
	"net/http"

	"gestao_compras/internal/adapter/http/dto/request"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	respondList(c, items, err)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SupplierStats counts the caller's visible requests placed with the supplier.
func (h *SupplierHandler) SupplierStats(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.usecase.Stats(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplierName), errors.Is(err, usecase.ErrInvalidSupplierRating):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplierAlreadyExists):
		return pkg.NewDomainErrorSimple("SUPPLIER_ALREADY_EXISTS", "Supplier already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
