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

// RequestHandler serves purchase requests (solicitações de compra).
type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// ListRequests godoc
// @Summary List the requests visible to the caller
// @Tags requests
// @Produce json
// @Success 200 {object} response.ListResponse[entities.Request]
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.usecase.List(c.Request.Context(), user)
	respondList(c, items, err)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.usecase.Get(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, req)
}

// CreateRequest godoc
// @Summary Create a request
// @Tags requests
// @Accept json
// @Produce json
// @Param body body request.CreatePurchaseRequest true "Request"
// @Success 201 {object} entities.Request
// @Failure 400 {object} pkg.HTTPError
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	var payload request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), user, payload.ToEntity())
	if err != nil {
		respondError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRequest applies a partial update. Only the columns present in the
// body are considered; blank values are ignored.
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var changes entities.Row
	if err := c.ShouldBindJSON(&changes); err != nil || len(changes) == 0 {
		respondError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), user, id, changes)
	if err != nil {
		respondError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, mapRequestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncState reports whether the last write to the requests table failed.
func (h *RequestHandler) SyncState(c *gin.Context) {
	state, err := h.usecase.State()
	body := gin.H{"state": state}
	if err != nil {
		body["error"] = mapBackendError(err).ToHTTPError()
	}
	c.JSON(http.StatusOK, body)
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainError("MISSING_REQUIRED_FIELDS", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
