package interfaces

//go:generate mockgen -source=report_storage_interface.go -destination=mocks/mock_report_storage_interface.go -package=mock_interfaces

import (
	"context"
	"time"
)

// IReportStorage keeps exported spreadsheets in object storage.
type IReportStorage interface {
	Upload(ctx context.Context, name string, content []byte, contentType string) error
	PresignedURL(ctx context.Context, name string, expiry time.Duration) (string, error)
}
