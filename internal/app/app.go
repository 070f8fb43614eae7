// Package app wires the table store, the change notifier and every use case
// from a Config. Both the HTTP server and the CLI start from here.
package app

import (
	"context"
	"fmt"
	"time"

	"gestao_compras/internal/adapter/persistence/repository"
	"gestao_compras/internal/config"
	"gestao_compras/internal/domain/access"
	"gestao_compras/internal/infrastructure/database"
	"gestao_compras/internal/infrastructure/realtime"
	"gestao_compras/internal/infrastructure/storage"
	"gestao_compras/internal/usecase"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type UseCases struct {
	Requests  usecase.IRequestUseCase
	Catalog   usecase.ICatalogUseCase
	Users     usecase.IUserUseCase
	Auth      usecase.IAuthUseCase
	Suppliers usecase.ISupplierUseCase
	PriceMaps usecase.IPriceMapUseCase
	Thermal   usecase.IThermalUseCase
	Dashboard usecase.IDashboardUseCase
	Reports   usecase.IReportUseCase
	Setup     usecase.ISetupUseCase
}

type App struct {
	Config   *config.Config
	Store    interfaces.ITableStore
	Notifier interfaces.IChangeNotifier
	UseCases UseCases

	closers []func()
}

// New connects to the configured backends. Nothing is read from the store
// yet; call Start for that.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	base, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	notifier, err := a.openNotifier(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Notifier = notifier
	a.Store = realtime.NewNotifyingStore(base, notifier)

	prefs, err := config.LoadPreferences(cfg.Business.PreferencesPath)
	if err != nil {
		a.Close()
		return nil, err
	}

	var reportStorage interfaces.IReportStorage
	if cfg.MinIO.Enabled {
		s, err := storage.NewMinioReportStorage(ctx, cfg.MinIO)
		if err != nil {
			a.Close()
			return nil, err
		}
		reportStorage = s
	}

	delivered := cfg.Business.DeliveredStatus
	catalog := usecase.NewCatalogUseCase(a.Store)
	users := usecase.NewUserUseCase(a.Store)
	requests := usecase.NewRequestUseCase(a.Store, catalog, access.NewPolicy(cfg.Business.FullVisibilitySectors), delivered)

	a.UseCases = UseCases{
		Requests:  requests,
		Catalog:   catalog,
		Users:     users,
		Auth:      usecase.NewAuthUseCase(users, cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.Issuer),
		Suppliers: usecase.NewSupplierUseCase(a.Store, requests, delivered),
		PriceMaps: usecase.NewPriceMapUseCase(a.Store),
		Thermal:   usecase.NewThermalUseCase(a.Store),
		Dashboard: usecase.NewDashboardUseCase(requests, catalog, prefs, delivered),
		Reports:   usecase.NewReportUseCase(requests, catalog, prefs, reportStorage, cfg.MinIO.URLExpiry),
		Setup: usecase.NewSetupUseCase(a.Store, cfg.Store.Driver, repository.SetupScript(cfg.Store.Driver, cfg.Store.TablePrefix),
			catalog, users, usecase.AdminSeed{
				Name:     cfg.Business.AdminName,
				Email:    cfg.Business.AdminEmail,
				Password: cfg.Business.AdminPassword,
			}),
	}
	return a, nil
}

// Start seeds an empty installation and subscribes every collection to
// change notifications. Missing tables are reported, not fatal: the setup
// endpoint stays available so the operator can fix them.
func (a *App) Start(ctx context.Context) {
	if err := a.UseCases.Setup.Bootstrap(ctx); err != nil {
		zap.L().Warn("[app] bootstrap skipped", zap.Error(err))
	}

	watchers := []interface {
		Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
	}{
		a.UseCases.Requests, a.UseCases.Catalog, a.UseCases.Users,
		a.UseCases.Suppliers, a.UseCases.PriceMaps, a.UseCases.Thermal,
	}
	for _, w := range watchers {
		cancel, err := w.Watch(ctx, a.Notifier)
		if err != nil {
			zap.L().Error("[app] failed to watch collection", zap.Error(err))
			continue
		}
		a.closers = append(a.closers, cancel)
	}
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openStore(ctx context.Context) (interfaces.ITableStore, error) {
	cfg := a.Config
	switch cfg.Store.Driver {
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		zap.L().Info("[app] using dynamodb store", zap.String("region", cfg.DynamoDB.Region))
		return repository.NewDynamoTableStore(ddb, cfg.Store.TablePrefix), nil
	case "postgres":
		db, err := database.ConnectPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, func() { _ = sqlDB.Close() })
		}
		zap.L().Info("[app] using postgres store", zap.String("host", cfg.Database.Host))
		return repository.NewPostgresTableStore(db, cfg.Store.TablePrefix), nil
	case "memory":
		zap.L().Warn("[app] using in-memory store, data is lost on exit")
		return repository.NewMemoryTableStore(interfaces.RequiredTables...), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func (a *App) openNotifier(ctx context.Context) (interfaces.IChangeNotifier, error) {
	cfg := a.Config.Redis
	if !cfg.Enabled {
		return realtime.NewHub(), nil
	}
	n, err := realtime.NewRedisNotifier(&redis.Options{Addr: cfg.Addr(), Password: cfg.Password, DB: cfg.DB}, cfg.Namespace)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := n.Ping(pingCtx); err != nil {
		_ = n.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Addr(), err)
	}
	a.closers = append(a.closers, func() { _ = n.Close() })
	zap.L().Info("[app] using redis change notifier", zap.String("addr", cfg.Addr()))
	return n, nil
}
