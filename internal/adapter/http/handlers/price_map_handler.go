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

// PriceMapHandler serves quote comparison documents (mapas de preço).
type PriceMapHandler struct {
	usecase usecase.IPriceMapUseCase
}

func NewPriceMapHandler(uc usecase.IPriceMapUseCase) *PriceMapHandler {
	return &PriceMapHandler{usecase: uc}
}

func (h *PriceMapHandler) ListPriceMaps(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	respondList(c, items, err)
}

func (h *PriceMapHandler) GetPriceMap(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pm, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapPriceMapError(err))
		return
	}
	c.JSON(http.StatusOK, pm)
}

func (h *PriceMapHandler) CreatePriceMap(c *gin.Context) {
	var payload request.PriceMapRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	pm, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapPriceMapError(err))
		return
	}
	c.JSON(http.StatusCreated, pm)
}

func (h *PriceMapHandler) UpdatePriceMap(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.PriceMapRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	pm, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, mapPriceMapError(err))
		return
	}
	c.JSON(http.StatusOK, pm)
}

func (h *PriceMapHandler) DeletePriceMap(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapPriceMapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PriceMapHandler) SetPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.OfferPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (entities.PriceMap, error) {
		return h.usecase.SetPrice(c.Request.Context(), id, payload.Supplier, payload.ItemID, payload.Price)
	})
}

func (h *PriceMapHandler) SetFreight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.OfferFreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (entities.PriceMap, error) {
		return h.usecase.SetFreight(c.Request.Context(), id, payload.Supplier, payload.Freight)
	})
}

func (h *PriceMapHandler) SetDeliveryDeadline(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.OfferDeadlineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (entities.PriceMap, error) {
		return h.usecase.SetDeliveryDeadline(c.Request.Context(), id, payload.Supplier, payload.Deadline)
	})
}

// Compare returns per-supplier totals, the cheapest supplier and the
// winner of every item.
func (h *PriceMapHandler) Compare(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cmp, err := h.usecase.Compare(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapPriceMapError(err))
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (h *PriceMapHandler) respond(c *gin.Context, update func() (entities.PriceMap, error)) {
	pm, err := update()
	if err != nil {
		respondError(c, mapPriceMapError(err))
		return
	}
	c.JSON(http.StatusOK, pm)
}

func mapPriceMapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPriceMap), errors.Is(err, usecase.ErrInvalidOfferTarget),
		errors.Is(err, usecase.ErrNegativeAmount), errors.Is(err, usecase.ErrUnknownItem):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceMapNotFound):
		return pkg.NewDomainErrorSimple("PRICE_MAP_NOT_FOUND", "Price map not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
