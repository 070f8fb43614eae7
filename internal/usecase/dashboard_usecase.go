package usecase

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/mock_dashboard_usecase.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"gestao_compras/internal/config"
	"gestao_compras/internal/domain/dashboard"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/performance"
)

var (
	ErrInvalidThresholds  = errors.New("sla thresholds must not be negative")
	ErrInvalidColumnWidth = errors.New("column widths must not be negative")
)

// PreferencesStore keeps the installation-local preferences.
type PreferencesStore interface {
	Get() config.Preferences
	Update(p config.Preferences) error
}

type IDashboardUseCase interface {
	Summary(ctx context.Context, actor entities.User) (dashboard.Summary, error)
	Performance(ctx context.Context, actor entities.User) (performance.Evaluation, error)
	Preferences() config.Preferences
	UpdatePreferences(p config.Preferences) (config.Preferences, error)
}

type DashboardUseCase struct {
	requests  IRequestUseCase
	catalog   ICatalogUseCase
	prefs     PreferencesStore
	delivered string
	now       func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(requests IRequestUseCase, catalog ICatalogUseCase, prefs PreferencesStore, deliveredStatus string) *DashboardUseCase {
	if deliveredStatus == "" {
		deliveredStatus = entities.DefaultDeliveredStatus
	}
	return &DashboardUseCase{requests: requests, catalog: catalog, prefs: prefs, delivered: deliveredStatus, now: time.Now}
}

// Summary computes the dashboard over the requests visible to actor. A read
// that fails leaves its part of the input empty: the summary is still built
// and returned together with the read errors.
func (u *DashboardUseCase) Summary(ctx context.Context, actor entities.User) (dashboard.Summary, error) {
	reqs, reqErr := u.requests.List(ctx, actor)
	statuses, statusErr := u.catalog.ListStatuses(ctx)
	sectors, sectorErr := u.catalog.ListSectors(ctx)
	summary := dashboard.Build(dashboard.Input{
		Requests:        reqs,
		Statuses:        statuses,
		Sectors:         sectors,
		Now:             u.now(),
		DeliveredStatus: u.delivered,
	})
	return summary, errors.Join(reqErr, statusErr, sectorErr)
}

// Performance evaluates the responsible parties against the SLA thresholds
// kept in the preferences. On a read failure the evaluation covers no
// requests and the error is returned with it.
func (u *DashboardUseCase) Performance(ctx context.Context, actor entities.User) (performance.Evaluation, error) {
	reqs, err := u.requests.List(ctx, actor)
	return performance.Evaluate(reqs, u.prefs.Get().SLA, u.delivered), err
}

func (u *DashboardUseCase) Preferences() config.Preferences {
	return u.prefs.Get()
}

// UpdatePreferences saves p. Thresholds are stored as given, even when
// excellent exceeds good.
func (u *DashboardUseCase) UpdatePreferences(p config.Preferences) (config.Preferences, error) {
	if p.SLA.Excellent < 0 || p.SLA.Good < 0 {
		return config.Preferences{}, ErrInvalidThresholds
	}
	for _, w := range p.ColumnWidths {
		if w < 0 {
			return config.Preferences{}, ErrInvalidColumnWidth
		}
	}
	if p.ColumnWidths == nil {
		p.ColumnWidths = map[string]int{}
	}
	if err := u.prefs.Update(p); err != nil {
		return config.Preferences{}, err
	}
	return u.prefs.Get(), nil
}
