// Package report prepares request data for tabular export.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gestao_compras/internal/domain/entities"
)

// Table is a projected request sheet.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// HistoryRow is one flattened audit entry, referenced by order number.
type HistoryRow struct {
	OrderNumber string `json:"orderNumber"`
	Date        string `json:"date"`
	User        string `json:"user"`
	Field       string `json:"field"`
	OldValue    string `json:"oldValue"`
	NewValue    string `json:"newValue"`
}

// ObjectName is the storage key of a workbook generated at t.
func ObjectName(t time.Time, fileName string) string {
	return fmt.Sprintf("relatorios/%s/%s", t.Format("2006/01/02"), fileName)
}

// HistoryHeaders are the column titles of the history sheet.
var HistoryHeaders = []string{"Nº Pedido", "Data", "Usuário", "Campo", "Valor Anterior", "Novo Valor"}

// FilterByDate keeps requests whose requestDate falls in [from, to]. Empty
// bounds are open. Dates are compared on their YYYY-MM-DD prefix.
func FilterByDate(requests []entities.Request, from, to string) []entities.Request {
	from, to = day(from), day(to)
	out := make([]entities.Request, 0, len(requests))
	for _, r := range requests {
		d := day(r.RequestDate)
		if from != "" && (d == "" || d < from) {
			continue
		}
		if to != "" && (d == "" || d > to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Columns returns the active fields selected by id, in form order. An empty
// selection means every active field.
func Columns(fields []entities.FormField, selected []string) []entities.FormField {
	want := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}
	cols := make([]entities.FormField, 0, len(fields))
	for _, f := range fields {
		if !f.Active {
			continue
		}
		if _, ok := want[f.ID]; len(selected) > 0 && !ok {
			continue
		}
		cols = append(cols, f)
	}
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Order < cols[j].Order })
	return cols
}

// Project renders the selected columns of every request as strings.
func Project(requests []entities.Request, fields []entities.FormField, selected []string) Table {
	cols := Columns(fields, selected)
	t := Table{Headers: make([]string, len(cols)), Rows: make([][]string, 0, len(requests))}
	for i, c := range cols {
		t.Headers[i] = c.Label
	}
	for _, r := range requests {
		row, err := entities.ToRow(r)
		if err != nil {
			row = entities.Row{}
		}
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = render(columnValue(row, c))
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

// HistoryRows flattens the history of every request.
func HistoryRows(requests []entities.Request) []HistoryRow {
	var out []HistoryRow
	for _, r := range requests {
		ref := r.OrderNumber
		if strings.TrimSpace(ref) == "" {
			ref = "#" + strconv.FormatInt(r.ID, 10)
		}
		for _, h := range r.History {
			out = append(out, HistoryRow{
				OrderNumber: ref,
				Date:        h.Date,
				User:        h.User,
				Field:       h.Field,
				OldValue:    h.OldValue,
				NewValue:    h.NewValue,
			})
		}
	}
	return out
}

// Values returns the row as sheet cells in HistoryHeaders order.
func (h HistoryRow) Values() []string {
	return []string{h.OrderNumber, h.Date, h.User, h.Field, h.OldValue, h.NewValue}
}

func columnValue(row entities.Row, f entities.FormField) any {
	if f.Standard {
		return row[f.ID]
	}
	if custom, ok := row["customFields"].(map[string]any); ok {
		return custom[f.ID]
	}
	return nil
}

func render(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, render(p))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

func day(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}
