package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_compras/internal/adapter/http/middleware"
	"gestao_compras/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	buyer = entities.User{ID: 1, Name: "Ana", Email: "ana@empresa.com", Role: entities.RoleUser, Sector: "Compras"}
	admin = entities.User{ID: 2, Name: "Admin", Email: "admin@empresa.com", Role: entities.RoleAdmin, Sector: "Diretor"}
)

// newRouter returns a test engine that authenticates every request as user.
// A nil user leaves the request anonymous.
func newRouter(user *entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		u := *user
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUser, u)
			c.Next()
		})
	}
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
}

func expectCode(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
