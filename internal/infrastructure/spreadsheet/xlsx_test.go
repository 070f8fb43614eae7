package spreadsheet

import (
	"bytes"
	"testing"

	"gestao_compras/internal/domain/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	table := report.Table{
		Headers: []string{"Nº Pedido", "Status"},
		Rows:    [][]string{{"PC-1", "Pendente"}, {"PC-2", "Entregue"}},
	}
	history := []report.HistoryRow{{OrderNumber: "PC-2", Field: "Status", OldValue: "Pendente", NewValue: "Entregue"}}

	b, err := Write(table, history, Options{IncludeHistory: true, Widths: map[string]int{"Status": 210}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{RequestsSheet, HistorySheet}, f.GetSheetList())

	v, err := f.GetCellValue(RequestsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nº Pedido", v)
	v, _ = f.GetCellValue(RequestsSheet, "B3")
	assert.Equal(t, "Entregue", v)

	w, err := f.GetColWidth(RequestsSheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 30.0, w)

	v, _ = f.GetCellValue(HistorySheet, "A2")
	assert.Equal(t, "PC-2", v)
	v, _ = f.GetCellValue(HistorySheet, "F1")
	assert.Equal(t, "Novo Valor", v)
}

func TestWrite_WithoutHistory(t *testing.T) {
	b, err := Write(report.Table{Headers: []string{"Status"}}, nil, Options{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{RequestsSheet}, f.GetSheetList())
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, defaultColWidth, columnWidth("x", nil))
	assert.Equal(t, minColWidth, columnWidth("x", map[string]int{"x": 14}))
	assert.Equal(t, 20.0, columnWidth("x", map[string]int{"x": 140}))
}
