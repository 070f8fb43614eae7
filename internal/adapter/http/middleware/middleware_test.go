package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_compras/internal/adapter/persistence/repository"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubResolver struct {
	user entities.User
	err  error
}

func (s stubResolver) ResolveToken(context.Context, string) (entities.User, error) {
	return s.user, s.err
}

func newTestRouter(resolver TokenResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()), CORS())
	handlers := append([]gin.HandlerFunc{JWTAuth(resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Email)
	})
	r.GET("/private", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	ok := stubResolver{user: entities.User{Email: "ana@empresa.com", Role: entities.RoleUser}}

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestRouter(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer bad")
		newTestRouter(stubResolver{err: usecase.ErrInvalidToken}).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("user store unavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer good")
		newTestRouter(stubResolver{err: errors.New("offline")}).ServeHTTP(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("header token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer good")
		newTestRouter(ok).ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "ana@empresa.com" {
			t.Fatalf("expected 200 with user, got %d %s", w.Code, w.Body.String())
		}
		if w.Header().Get(HeaderRequestID) == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("query token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestRouter(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?token=good", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	user := stubResolver{user: entities.User{Role: entities.RoleUser}}
	admin := stubResolver{user: entities.User{Role: entities.RoleAdmin}}

	w := httptest.NewRecorder()
	newTestRouter(user, RequireAdmin()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?token=x", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	newTestRouter(admin, RequireAdmin()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?token=x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestJWTAuth_AccountChanges(t *testing.T) {
	ctx := context.Background()
	users := usecase.NewUserUseCase(repository.NewMemoryTableStore(interfaces.RequiredTables...))
	admin, err := users.Create(ctx, entities.User{Name: "Rui", Email: "rui@empresa.com", Password: "segredo1", Role: entities.RoleAdmin, Sector: "Diretor"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	auth := usecase.NewAuthUseCase(users, "secret", time.Hour, "")
	login, err := auth.Login(ctx, "rui@empresa.com", "segredo1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	r := newTestRouter(auth, RequireAdmin())
	get := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := get(); code != http.StatusOK {
		t.Fatalf("expected 200 for the admin, got %d", code)
	}

	if _, err := users.Update(ctx, admin.ID, entities.User{Role: entities.RoleUser}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if code := get(); code != http.StatusForbidden {
		t.Fatalf("expected 403 after demotion, got %d", code)
	}

	if err := users.Delete(ctx, admin.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if code := get(); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after deletion, got %d", code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(stubResolver{}).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/private", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestRedactToken(t *testing.T) {
	if got := redactToken("tables=requests&token=abc"); got != "tables=requests&token=REDACTED" {
		t.Fatalf("unexpected %q", got)
	}
}
