package interfaces

import (
	"errors"
	"fmt"
	"testing"

	"gestao_compras/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePatch(t *testing.T) {
	patch := entities.Row{
		"id":           int64(7),
		"status":       "Entregue",
		"supplier":     "",
		"responsible":  "   ",
		"forecastDate": nil,
		"items":        []any{},
		"rating":       0.0,
	}

	got := SanitizePatch(patch)
	assert.Equal(t, entities.Row{"status": "Entregue", "items": []any{}, "rating": 0.0}, got)
	assert.Contains(t, patch, "id", "input is not mutated")
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name          string
		err           error
		missingSchema bool
		missingColumn bool
	}{
		{name: "rest table missing", err: &StoreError{Table: "requests", Code: CodeTableNotFoundREST}, missingSchema: true},
		{name: "sql table missing", err: NewStoreError("users", CodeUndefinedTable, errors.New("relation does not exist")), missingSchema: true},
		{name: "column missing", err: &StoreError{Code: CodeUndefinedColumn}, missingColumn: true},
		{name: "wrapped", err: fmt.Errorf("load: %w", &StoreError{Code: CodeUndefinedTable}), missingSchema: true},
		{name: "transient", err: &StoreError{Code: "08006"}},
		{name: "plain", err: errors.New("boom")},
		{name: "nil", err: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.missingSchema, IsMissingSchema(tc.err))
			assert.Equal(t, tc.missingColumn, IsMissingColumn(tc.err))
		})
	}
}

func TestNewStoreError_KeepsInnerCode(t *testing.T) {
	inner := &StoreError{Table: "requests", Code: CodeUndefinedColumn, Err: errors.New("x")}
	err := NewStoreError("requests", "", inner)
	assert.Same(t, inner, err)
	assert.Equal(t, "table requests: [42703] x", err.Error())
}
