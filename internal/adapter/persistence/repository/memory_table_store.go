package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"
)

// CodeUniqueViolation is reported when an insert reuses an existing id.
const CodeUniqueViolation = "23505"

// MemoryTableStore keeps tables in process memory. It is used for local
// development and tests. Tables must be created with CreateTable first so
// the missing-schema path behaves like the real backends.
type MemoryTableStore struct {
	mu     sync.RWMutex
	tables map[string][]entities.Row
}

var _ interfaces.ITableStore = (*MemoryTableStore)(nil)

func NewMemoryTableStore(tables ...string) *MemoryTableStore {
	s := &MemoryTableStore{tables: map[string][]entities.Row{}}
	for _, t := range tables {
		s.CreateTable(t)
	}
	return s
}

// CreateTable creates an empty table if it does not exist yet.
func (s *MemoryTableStore) CreateTable(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table]; !ok {
		s.tables[table] = []entities.Row{}
	}
}

func (s *MemoryTableStore) Select(_ context.Context, table string, filter entities.Row) ([]entities.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.tables[table]
	if !ok {
		return nil, missingTable(table)
	}
	out := make([]entities.Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, filter) {
			out = append(out, cloneRow(row))
		}
	}
	return out, nil
}

func (s *MemoryTableStore) Insert(_ context.Context, table string, row entities.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.tables[table]
	if !ok {
		return missingTable(table)
	}
	key := idKey(row["id"])
	if key == "" {
		return interfaces.NewStoreError(table, "", errors.New("row has no id"))
	}
	for _, existing := range rows {
		if idKey(existing["id"]) == key {
			return interfaces.NewStoreError(table, CodeUniqueViolation, fmt.Errorf("duplicate id %s", key))
		}
	}
	s.tables[table] = append(rows, cloneRow(row))
	return nil
}

func (s *MemoryTableStore) Update(_ context.Context, table string, id any, patch entities.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.tables[table]
	if !ok {
		return missingTable(table)
	}
	patch = cloneRow(interfaces.SanitizePatch(patch))
	key := idKey(id)
	for i, row := range rows {
		if idKey(row["id"]) != key {
			continue
		}
		for k, v := range patch {
			rows[i][k] = v
		}
		return nil
	}
	return interfaces.NewStoreError(table, "", interfaces.ErrNoRows)
}

func (s *MemoryTableStore) Delete(_ context.Context, table string, id any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.tables[table]
	if !ok {
		return missingTable(table)
	}
	key := idKey(id)
	for i, row := range rows {
		if idKey(row["id"]) == key {
			s.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return interfaces.NewStoreError(table, "", interfaces.ErrNoRows)
}

func matches(row, filter entities.Row) bool {
	for k, want := range filter {
		if idKey(row[k]) != idKey(want) {
			return false
		}
	}
	return true
}

func missingTable(table string) error {
	return interfaces.NewStoreError(table, interfaces.CodeUndefinedTable, fmt.Errorf("relation %q does not exist", table))
}
