package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gestao_compras/internal/adapter/http/dto/response"
	"gestao_compras/internal/domain/access"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func TestMapBackendError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"access denied", fmt.Errorf("get: %w", access.ErrAccessDenied), http.StatusForbidden, "FORBIDDEN"},
		{"missing table", &interfaces.StoreError{Table: "requests", Code: interfaces.CodeUndefinedTable}, http.StatusServiceUnavailable, "SCHEMA_MISSING"},
		{"missing rest table", &interfaces.StoreError{Table: "requests", Code: interfaces.CodeTableNotFoundREST}, http.StatusServiceUnavailable, "SCHEMA_MISSING"},
		{"missing column", &interfaces.StoreError{Table: "requests", Code: interfaces.CodeUndefinedColumn}, http.StatusFailedDependency, "SCHEMA_COLUMN_MISSING"},
		{"backend", &interfaces.StoreError{Table: "requests", Code: "08006", Err: errors.New("conn reset")}, http.StatusBadGateway, "BACKEND_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapBackendError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}

func TestRespondList(t *testing.T) {
	serve := func(err error) (int, response.ListResponse[entities.Status]) {
		r := newRouter(nil)
		r.GET("/x", func(c *gin.Context) {
			respondList(c, []entities.Status{{ID: 1, Name: "Pendente"}}, err)
		})
		w := do(r, http.MethodGet, "/x", "")
		var body response.ListResponse[entities.Status]
		decode(t, w, &body)
		return w.Code, body
	}

	t.Run("ok", func(t *testing.T) {
		code, body := serve(nil)
		if code != http.StatusOK || len(body.Data) != 1 || body.Warning != nil {
			t.Fatalf("unexpected %d %+v", code, body)
		}
	})

	t.Run("transient failure degrades to empty list", func(t *testing.T) {
		code, body := serve(&interfaces.StoreError{Code: "08006"})
		if code != http.StatusOK || len(body.Data) != 0 || body.Warning == nil || body.Warning.Code != "BACKEND_ERROR" {
			t.Fatalf("unexpected %d %+v", code, body)
		}
	})

	t.Run("missing schema is not hidden", func(t *testing.T) {
		r := newRouter(nil)
		r.GET("/x", func(c *gin.Context) {
			respondList[entities.Status](c, nil, &interfaces.StoreError{Code: interfaces.CodeUndefinedTable})
		})
		w := do(r, http.MethodGet, "/x", "")
		expectCode(t, w, http.StatusServiceUnavailable)
	})
}

func TestPathIDAndActor(t *testing.T) {
	r := newRouter(nil)
	r.GET("/x/:id", func(c *gin.Context) {
		if _, ok := pathID(c); !ok {
			return
		}
		if _, ok := actor(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	expectCode(t, do(r, http.MethodGet, "/x/abc", ""), http.StatusBadRequest)
	expectCode(t, do(r, http.MethodGet, "/x/0", ""), http.StatusBadRequest)
	expectCode(t, do(r, http.MethodGet, "/x/12", ""), http.StatusUnauthorized)
}
