package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgresTableStore persists every table in PostgreSQL through gorm.
//
// Column names are the entity json tags (camelCase, quoted). Nested values
// are kept in jsonb columns and travel as JSON text.
type PostgresTableStore struct {
	db     *gorm.DB
	prefix string
}

var _ interfaces.ITableStore = (*PostgresTableStore)(nil)

func NewPostgresTableStore(db *gorm.DB, tablePrefix string) *PostgresTableStore {
	return &PostgresTableStore{db: db, prefix: tablePrefix}
}

func (s *PostgresTableStore) Select(ctx context.Context, table string, filter entities.Row) ([]entities.Row, error) {
	q := s.db.WithContext(ctx).Table(physicalName(s.prefix, table))
	if len(filter) > 0 {
		q = q.Where(map[string]any(encodeColumns(filter)))
	}
	var raw []map[string]any
	if err := q.Find(&raw).Error; err != nil {
		return nil, wrapPgError(table, err)
	}
	rows := make([]entities.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, decodeColumns(table, r))
	}
	return rows, nil
}

func (s *PostgresTableStore) Insert(ctx context.Context, table string, row entities.Row) error {
	err := s.db.WithContext(ctx).
		Table(physicalName(s.prefix, table)).
		Create(map[string]any(encodeColumns(row))).Error
	if err != nil {
		return wrapPgError(table, err)
	}
	return nil
}

func (s *PostgresTableStore) Update(ctx context.Context, table string, id any, patch entities.Row) error {
	patch = interfaces.SanitizePatch(patch)
	if len(patch) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).
		Table(physicalName(s.prefix, table)).
		Where("id = ?", id).
		Updates(map[string]any(encodeColumns(patch)))
	if res.Error != nil {
		return wrapPgError(table, res.Error)
	}
	if res.RowsAffected == 0 {
		return interfaces.NewStoreError(table, "", interfaces.ErrNoRows)
	}
	return nil
}

func (s *PostgresTableStore) Delete(ctx context.Context, table string, id any) error {
	res := s.db.WithContext(ctx).
		Exec("DELETE FROM "+quoteIdent(physicalName(s.prefix, table))+" WHERE id = ?", id)
	if res.Error != nil {
		return wrapPgError(table, res.Error)
	}
	if res.RowsAffected == 0 {
		return interfaces.NewStoreError(table, "", interfaces.ErrNoRows)
	}
	return nil
}

func wrapPgError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return interfaces.NewStoreError(table, pgErr.Code, err)
	}
	return interfaces.NewStoreError(table, "", err)
}

// encodeColumns turns nested values into JSON text for jsonb columns.
func encodeColumns(row entities.Row) entities.Row {
	out := make(entities.Row, len(row))
	for k, v := range row {
		switch v.(type) {
		case map[string]any, []any, map[string]float64, map[string]string:
			b, err := json.Marshal(v)
			if err != nil {
				out[k] = v
				continue
			}
			out[k] = string(b)
		default:
			out[k] = v
		}
	}
	return out
}

// decodeColumns parses the jsonb columns of table back into maps and
// slices. Text columns are returned as strings even when they hold JSON.
func decodeColumns(table string, row map[string]any) entities.Row {
	out := make(entities.Row, len(row))
	for k, v := range row {
		switch val := v.(type) {
		case []byte:
			out[k] = decodeColumn(table, k, string(val))
		case string:
			out[k] = decodeColumn(table, k, val)
		default:
			out[k] = v
		}
	}
	return out
}

func decodeColumn(table, name, s string) any {
	if !isJSONColumn(table, name) {
		return s
	}
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return s
	}
	return v
}

func isJSONColumn(table, name string) bool {
	for _, c := range tableColumns[table] {
		if c.name == name {
			return strings.HasPrefix(c.sqlType, "jsonb")
		}
	}
	return false
}
