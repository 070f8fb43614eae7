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

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(result))
}

// Me returns the user carried by the token.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	}
	return mapBackendError(err)
}
