// Package audit records field-level changes of a request as history entries.
package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gestao_compras/internal/domain/entities"
)

const (
	customFieldsColumn = "customFields"
	deliveryDateColumn = "deliveryDate"
	statusColumn       = "status"
)

// Diff compares two snapshots of a request over the active form fields and
// returns one entry per changed field. Standard fields are read from the row,
// custom fields from its customFields map.
func Diff(old, updated entities.Row, fields []entities.FormField, user string, now time.Time) []entities.HistoryEntry {
	if strings.TrimSpace(user) == "" {
		user = entities.SystemUser
	}
	date := now.Format(time.RFC3339)

	var entries []entities.HistoryEntry
	for _, f := range fields {
		if !f.Active {
			continue
		}
		before := Normalize(fieldValue(old, f))
		after := Normalize(fieldValue(updated, f))
		if before == after {
			continue
		}
		entries = append(entries, entities.HistoryEntry{
			Date:     date,
			User:     user,
			Field:    f.Label,
			OldValue: before,
			NewValue: after,
		})
	}
	return entries
}

// ApplyDeliveryRule forces the status to the delivered value whenever the row
// carries a non-empty delivery date. It must run before Diff so the status
// change is recorded. It reports whether the status was changed.
func ApplyDeliveryRule(row entities.Row, deliveredStatus string) bool {
	if row == nil || Normalize(row[deliveryDateColumn]) == entities.EmptyValue {
		return false
	}
	if s, _ := row[statusColumn].(string); s == deliveredStatus {
		return false
	}
	row[statusColumn] = deliveredStatus
	return true
}

// Append returns a new history with entries added after the existing ones.
func Append(history []entities.HistoryEntry, entries []entities.HistoryEntry) []entities.HistoryEntry {
	out := make([]entities.HistoryEntry, 0, len(history)+len(entries))
	out = append(out, history...)
	return append(out, entries...)
}

// Normalize renders a column value for comparison and display. Missing and
// blank values become the empty sentinel.
func Normalize(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return entities.EmptyValue
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		s = strconv.FormatBool(val)
	default:
		s = fmt.Sprint(val)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return entities.EmptyValue
	}
	return s
}

func fieldValue(row entities.Row, f entities.FormField) any {
	if row == nil {
		return nil
	}
	if f.Standard {
		return row[f.ID]
	}
	switch custom := row[customFieldsColumn].(type) {
	case map[string]any:
		return custom[f.ID]
	case map[string]string:
		if v, ok := custom[f.ID]; ok {
			return v
		}
	}
	return nil
}
