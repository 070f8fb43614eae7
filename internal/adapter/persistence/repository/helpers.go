package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gestao_compras/internal/domain/entities"
)

func physicalName(prefix, table string) string {
	return prefix + table
}

// idKey renders an identifier so that 7, int64(7) and 7.0 compare equal.
func idKey(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(id), 'f', -1, 32)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}

func cloneRow(row entities.Row) entities.Row {
	var out entities.Row
	if err := entities.FromRow(row, &out); err != nil {
		out = make(entities.Row, len(row))
		for k, v := range row {
			out[k] = v
		}
	}
	return out
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
