package usecase

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/mock_report_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/report"
	"gestao_compras/internal/infrastructure/spreadsheet"
	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidDateRange  = errors.New("from must not be after to")
	ErrStorageDisabled   = errors.New("report storage is not configured")
	ErrInvalidDateFormat = errors.New("dates must use the YYYY-MM-DD format")
)

// ExportOptions select what goes into the spreadsheet.
type ExportOptions struct {
	From           string
	To             string
	Columns        []string
	IncludeHistory bool
	Upload         bool
}

// ExportResult is the generated workbook. URL is set only for uploads.
type ExportResult struct {
	FileName string
	Content  []byte
	Rows     int
	URL      string
}

type IReportUseCase interface {
	Export(ctx context.Context, actor entities.User, opts ExportOptions) (ExportResult, error)
}

type ReportUseCase struct {
	requests IRequestUseCase
	catalog  ICatalogUseCase
	prefs    PreferencesStore
	storage  interfaces.IReportStorage
	expiry   time.Duration
	now      func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase builds the exporter. storage may be nil, in which case
// uploads are refused.
func NewReportUseCase(requests IRequestUseCase, catalog ICatalogUseCase, prefs PreferencesStore, storage interfaces.IReportStorage, urlExpiry time.Duration) *ReportUseCase {
	if urlExpiry <= 0 {
		urlExpiry = time.Hour
	}
	return &ReportUseCase{requests: requests, catalog: catalog, prefs: prefs, storage: storage, expiry: urlExpiry, now: time.Now}
}

// Export renders the visible requests of the date range as an xlsx workbook.
func (u *ReportUseCase) Export(ctx context.Context, actor entities.User, opts ExportOptions) (ExportResult, error) {
	if err := validateRange(opts.From, opts.To); err != nil {
		return ExportResult{}, err
	}
	if opts.Upload && u.storage == nil {
		return ExportResult{}, ErrStorageDisabled
	}

	reqs, err := u.requests.List(ctx, actor)
	if err != nil {
		return ExportResult{}, err
	}
	fields, err := u.catalog.ListFormFields(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	reqs = report.FilterByDate(reqs, opts.From, opts.To)
	table := report.Project(reqs, fields, opts.Columns)
	var history []report.HistoryRow
	if opts.IncludeHistory {
		history = report.HistoryRows(reqs)
	}

	var widths map[string]int
	if u.prefs != nil {
		widths = u.prefs.Get().ColumnWidths
	}
	content, err := spreadsheet.Write(table, history, spreadsheet.Options{IncludeHistory: opts.IncludeHistory, Widths: widths})
	if err != nil {
		return ExportResult{}, err
	}

	now := u.now()
	res := ExportResult{
		FileName: fmt.Sprintf("solicitacoes_%s.xlsx", now.Format("20060102_150405")),
		Content:  content,
		Rows:     len(table.Rows),
	}
	if !opts.Upload {
		return res, nil
	}

	name := report.ObjectName(now, res.FileName)
	if err := u.storage.Upload(ctx, name, content, spreadsheet.ContentType); err != nil {
		return ExportResult{}, err
	}
	url, err := u.storage.PresignedURL(ctx, name, u.expiry)
	if err != nil {
		return ExportResult{}, err
	}
	res.URL = url
	zap.L().Info("[report][usecase] report uploaded", zap.String("object", name), zap.Int("rows", res.Rows))
	return res, nil
}

func validateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return ErrInvalidDateFormat
		}
	}
	if from != "" && to != "" && from > to {
		return ErrInvalidDateRange
	}
	return nil
}
