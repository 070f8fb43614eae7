package interfaces

//go:generate mockgen -source=table_store_interface.go -destination=mocks/mock_table_store_interface.go -package=mock_interfaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gestao_compras/internal/domain/entities"
)

// Tables used by the service. Every one of them must exist before the
// service can run; see SetupUseCase.
const (
	TableRequests   = "requests"
	TableStatuses   = "statuses"
	TableSectors    = "sectors"
	TableFormFields = "form_fields"
	TableUsers      = "users"
	TableSuppliers  = "suppliers"
	TablePriceMaps  = "price_maps"
	TableThermal    = "thermal_analyses"
)

// RequiredTables lists every table in creation order.
var RequiredTables = []string{
	TableRequests, TableStatuses, TableSectors, TableFormFields,
	TableUsers, TableSuppliers, TablePriceMaps, TableThermal,
}

// Backend error codes with a special meaning.
const (
	CodeTableNotFoundREST = "PGRST205"
	CodeUndefinedTable    = "42P01"
	CodeUndefinedColumn   = "42703"
)

// ITableStore is the request/response table API of the backing store.
//
// Rows use the entity json tags as column names. The identifier is only
// ever passed through the id argument of Update and Delete, never inside
// the patch.
type ITableStore interface {
	Select(ctx context.Context, table string, filter entities.Row) ([]entities.Row, error)
	Insert(ctx context.Context, table string, row entities.Row) error
	Update(ctx context.Context, table string, id any, patch entities.Row) error
	Delete(ctx context.Context, table string, id any) error
}

// StoreError is a backend failure carrying the backend's error code.
type StoreError struct {
	Table string
	Code  string
	Err   error
}

func (e *StoreError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("table %s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("table %s: [%s] %v", e.Table, e.Code, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err unless it already is a StoreError.
func NewStoreError(table, code string, err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Table: table, Code: code, Err: err}
}

// ErrNoRows is returned by Update and Delete when the id matches nothing.
var ErrNoRows = errors.New("no rows matched")

// IsMissingSchema reports whether err means the table does not exist.
func IsMissingSchema(err error) bool {
	var se *StoreError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == CodeTableNotFoundREST || se.Code == CodeUndefinedTable
}

// IsMissingColumn reports whether err means a column the service writes does not exist.
func IsMissingColumn(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeUndefinedColumn
}

// SanitizePatch returns a copy of patch without the id and without nil or
// blank string values, so an update never names a column it does not set.
func SanitizePatch(patch entities.Row) entities.Row {
	out := make(entities.Row, len(patch))
	for k, v := range patch {
		if k == "id" || v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		out[k] = v
	}
	return out
}
