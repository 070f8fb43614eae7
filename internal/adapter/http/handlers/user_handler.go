package handlers

import (
	"errors"
	"net/http"

	"gestao_compras/internal/adapter/http/dto/request"
	"gestao_compras/internal/adapter/http/dto/response"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler is mounted behind RequireAdmin.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	respondList(c, response.FromUsers(users), err)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	user, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// UpdateUser keeps the stored password when the body leaves it empty.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	user, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserName), errors.Is(err, usecase.ErrInvalidUserEmail),
		errors.Is(err, usecase.ErrInvalidUserRole), errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "A user with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
