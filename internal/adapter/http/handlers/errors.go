package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gestao_compras/internal/adapter/http/dto/response"
	"gestao_compras/internal/adapter/http/middleware"
	"gestao_compras/internal/domain/access"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid payload", http.StatusBadRequest)
	errInvalidID       = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapBackendError classifies failures shared by every area: access checks
// and the backing store. Handlers call it after their own sentinels.
func mapBackendError(err error) *pkg.AppError {
	var se *interfaces.StoreError
	switch {
	case errors.Is(err, access.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to access this request", http.StatusForbidden)
	case interfaces.IsMissingSchema(err):
		return pkg.NewDomainError("SCHEMA_MISSING", "Database tables are missing, run the setup script", err, http.StatusServiceUnavailable)
	case interfaces.IsMissingColumn(err):
		return pkg.NewDomainError("SCHEMA_COLUMN_MISSING", "A required column is missing, run the setup script", err, http.StatusFailedDependency)
	case errors.As(err, &se):
		return pkg.NewDomainError("BACKEND_ERROR", "The database rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http][handler] request failed",
			zap.String("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respondList writes items, or an empty list with a warning when the read
// failed. A missing schema is never hidden.
func respondList[T any](c *gin.Context, items []T, err error) {
	out := response.NewList(items)
	if err != nil {
		warning, ok := degrade(c, err)
		if !ok {
			return
		}
		out = response.NewList[T](nil)
		out.Warning = warning
	}
	c.JSON(http.StatusOK, out)
}

// degrade turns a read failure into a warning for a 200 response. A missing
// schema is written as an error instead and ok is false.
func degrade(c *gin.Context, err error) (warning *response.Warning, ok bool) {
	appErr := mapBackendError(err)
	if appErr.Code == "SCHEMA_MISSING" {
		respondError(c, appErr)
		return nil, false
	}
	zap.L().Warn("[http][handler] read degraded to empty", zap.String("path", c.FullPath()), zap.Error(err))
	return &response.Warning{Code: appErr.Code, Message: appErr.Message}, true
}

// actor returns the authenticated user or writes 401.
func actor(c *gin.Context) (entities.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthenticated)
	}
	return user, ok
}

// pathID parses the numeric :id parameter or writes 400.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, errInvalidID)
		return 0, false
	}
	return id, true
}
