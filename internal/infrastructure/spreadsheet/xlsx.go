// Package spreadsheet renders report tables as .xlsx workbooks.
package spreadsheet

import (
	"bytes"
	"fmt"

	"gestao_compras/internal/domain/report"

	"github.com/xuri/excelize/v2"
)

const (
	RequestsSheet = "Solicitações"
	HistorySheet  = "Histórico"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultColWidth = 18.0
	minColWidth     = 8.0
)

// Options tune the rendering. Widths maps a header to a column width in
// pixels as kept in the user preferences.
type Options struct {
	IncludeHistory bool
	Widths         map[string]int
}

// Write renders the request table and, when asked, the history sheet.
func Write(table report.Table, history []report.HistoryRow, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RequestsSheet); err != nil {
		return nil, err
	}
	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}

	if err := writeSheet(f, RequestsSheet, table.Headers, table.Rows, header, opts.Widths); err != nil {
		return nil, err
	}

	if opts.IncludeHistory {
		if _, err := f.NewSheet(HistorySheet); err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(history))
		for _, h := range history {
			rows = append(rows, h.Values())
		}
		if err := writeSheet(f, HistorySheet, report.HistoryHeaders, rows, header, nil); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#8EA9DB", Style: 1},
		},
	})
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]string, style int, widths map[string]int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth(h, widths)); err != nil {
			return err
		}
	}
	return nil
}

// columnWidth converts a preference in pixels to Excel character units.
func columnWidth(header string, widths map[string]int) float64 {
	px, ok := widths[header]
	if !ok || px <= 0 {
		return defaultColWidth
	}
	w := float64(px) / 7
	if w < minColWidth {
		return minColWidth
	}
	return w
}
