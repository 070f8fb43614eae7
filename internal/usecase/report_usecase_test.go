package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gestao_compras/internal/config"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/infrastructure/spreadsheet"
	mock_interfaces "gestao_compras/internal/usecase/interfaces/mocks"

	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newReportFixture(t *testing.T, storage *mock_interfaces.MockIReportStorage) *ReportUseCase {
	t.Helper()
	store := newTestStore()
	requests, catalog := newRequestFixture(t, store)
	insertRequests(t, store,
		entities.Request{ID: 1, OrderNumber: "PC-1", Sector: "Compras", Status: "Pendente", RequestDate: "2024-05-01",
			History: []entities.HistoryEntry{{Date: "2024-05-02T10:00:00Z", User: "Ana", Field: "Status", OldValue: "Pendente", NewValue: "Em Andamento"}}},
		entities.Request{ID: 2, OrderNumber: "PC-2", Sector: "Compras", Status: "Pendente", RequestDate: "2024-06-01"},
	)
	prefs := &memoryPreferences{prefs: config.DefaultPreferences()}
	var uc *ReportUseCase
	if storage != nil {
		uc = NewReportUseCase(requests, catalog, prefs, storage, time.Hour)
	} else {
		uc = NewReportUseCase(requests, catalog, prefs, nil, time.Hour)
	}
	uc.now = fixedNow
	return uc
}

func TestReportUseCase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid range", func(t *testing.T) {
		uc := newReportFixture(t, nil)
		if _, err := uc.Export(ctx, buyer, ExportOptions{From: "2024-06-01", To: "2024-05-01"}); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if _, err := uc.Export(ctx, buyer, ExportOptions{From: "01/05/2024"}); !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
		}
	})

	t.Run("upload without storage", func(t *testing.T) {
		uc := newReportFixture(t, nil)
		if _, err := uc.Export(ctx, buyer, ExportOptions{Upload: true}); !errors.Is(err, ErrStorageDisabled) {
			t.Fatalf("expected ErrStorageDisabled, got %v", err)
		}
	})

	t.Run("filters by date and writes history sheet", func(t *testing.T) {
		uc := newReportFixture(t, nil)
		res, err := uc.Export(ctx, buyer, ExportOptions{From: "2024-05-01", To: "2024-05-31", Columns: []string{"orderNumber", "status"}, IncludeHistory: true})
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if res.Rows != 1 || res.FileName != "solicitacoes_20240520_103000.xlsx" || res.URL != "" {
			t.Fatalf("unexpected result: %+v", res)
		}

		f, err := excelize.OpenReader(bytes.NewReader(res.Content))
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer f.Close()
		if v, _ := f.GetCellValue(spreadsheet.RequestsSheet, "A2"); v != "PC-1" {
			t.Fatalf("expected PC-1, got %q", v)
		}
		if v, _ := f.GetCellValue(spreadsheet.HistorySheet, "F2"); v != "Em Andamento" {
			t.Fatalf("expected history row, got %q", v)
		}
	})

	t.Run("upload returns presigned url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIReportStorage(ctrl)
		uc := newReportFixture(t, storage)

		name := "relatorios/2024/05/20/solicitacoes_20240520_103000.xlsx"
		storage.EXPECT().Upload(gomock.Any(), name, gomock.Any(), spreadsheet.ContentType).Return(nil)
		storage.EXPECT().PresignedURL(gomock.Any(), name, time.Hour).Return("http://minio/r.xlsx", nil)

		res, err := uc.Export(ctx, buyer, ExportOptions{Upload: true})
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if res.URL != "http://minio/r.xlsx" || res.Rows != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIReportStorage(ctrl)
		uc := newReportFixture(t, storage)

		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bucket"))

		if _, err := uc.Export(ctx, buyer, ExportOptions{Upload: true}); err == nil || err.Error() != "bucket" {
			t.Fatalf("expected bucket error, got %v", err)
		}
	})
}
