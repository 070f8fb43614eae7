// Package middleware holds the gin middlewares of the API.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase"
	"gestao_compras/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ContextUser is the gin context key of the authenticated entities.User.
	ContextUser      = "user"
	ContextRequestID = "request_id"
	HeaderRequestID  = "X-Request-ID"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errAdminOnly    = pkg.NewDomainErrorSimple("ADMIN_ONLY", "Administrator role required", http.StatusForbidden)
	errAuthFailed   = pkg.NewDomainErrorSimple("AUTH_UNAVAILABLE", "Could not verify the user account", http.StatusServiceUnavailable)
)

// Logger writes one zap entry per request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", redactToken(query)),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ContextRequestID)),
		}
		if user, ok := CurrentUser(c); ok {
			fields = append(fields, zap.String("user", user.Email))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("[http] server error", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("[http] client error", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		h.Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// TokenResolver turns a bearer token into the current state of its account.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (entities.User, error)
}

// JWTAuth reads the token from the Authorization header, falling back to
// the token query parameter used by EventSource clients.
func JWTAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := resolver.ResolveToken(c.Request.Context(), token)
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		case err != nil:
			zap.L().Error("[http][auth] failed to resolve token", zap.Error(err))
			c.AbortWithStatusJSON(errAuthFailed.HTTPStatus, errAuthFailed.ToHTTPError())
			return
		}
		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireAdmin must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by JWTAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}

func redactToken(query string) string {
	if !strings.Contains(query, "token=") {
		return query
	}
	parts := strings.Split(query, "&")
	for i, p := range parts {
		if strings.HasPrefix(p, "token=") {
			parts[i] = "token=REDACTED"
		}
	}
	return strings.Join(parts, "&")
}
