package usecase

//go:generate mockgen -source=setup_usecase.go -destination=../adapter/http/handlers/mocks/mock_setup_usecase.go -package=mocks

import (
	"context"

	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SetupStatus is the result of probing every required table.
//
// Missing tables block the service and come with the script that creates
// them. Errors holds any other failure per table, which is usually
// transient and not a setup problem.
type SetupStatus struct {
	Ready          bool              `json:"ready"`
	Driver         string            `json:"driver"`
	MissingTables  []string          `json:"missing_tables"`
	MissingColumns []string          `json:"missing_columns"`
	Errors         map[string]string `json:"errors"`
	Script         string            `json:"script,omitempty"`
}

// AdminSeed is the account created when the users table is empty.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

type ISetupUseCase interface {
	Check(ctx context.Context) SetupStatus
	Bootstrap(ctx context.Context) error
	Script() string
}

type SetupUseCase struct {
	store   interfaces.ITableStore
	driver  string
	script  string
	catalog ICatalogUseCase
	users   IUserUseCase
	admin   AdminSeed
}

var _ ISetupUseCase = (*SetupUseCase)(nil)

func NewSetupUseCase(store interfaces.ITableStore, driver, script string, catalog ICatalogUseCase, users IUserUseCase, admin AdminSeed) *SetupUseCase {
	return &SetupUseCase{store: store, driver: driver, script: script, catalog: catalog, users: users, admin: admin}
}

// Script returns the statements that create every required table.
func (u *SetupUseCase) Script() string { return u.script }

func (u *SetupUseCase) Check(ctx context.Context) SetupStatus {
	st := SetupStatus{
		Driver:         u.driver,
		MissingTables:  []string{},
		MissingColumns: []string{},
		Errors:         map[string]string{},
	}
	for _, table := range interfaces.RequiredTables {
		_, err := u.store.Select(ctx, table, nil)
		switch {
		case err == nil:
		case interfaces.IsMissingSchema(err):
			st.MissingTables = append(st.MissingTables, table)
		case interfaces.IsMissingColumn(err):
			st.MissingColumns = append(st.MissingColumns, table)
		default:
			st.Errors[table] = err.Error()
		}
	}
	st.Ready = len(st.MissingTables) == 0 && len(st.MissingColumns) == 0 && len(st.Errors) == 0
	if len(st.MissingTables) > 0 || len(st.MissingColumns) > 0 {
		st.Script = u.script
	}
	return st
}

// Bootstrap seeds the default catalog and the first administrator. It is
// safe to run on every start.
func (u *SetupUseCase) Bootstrap(ctx context.Context) error {
	if err := u.catalog.SeedDefaults(ctx); err != nil {
		return err
	}
	if u.admin.Email == "" {
		return nil
	}
	if err := u.users.SeedAdmin(ctx, u.admin.Name, u.admin.Email, u.admin.Password); err != nil {
		return err
	}
	zap.L().Info("[setup][usecase] bootstrap finished", zap.String("driver", u.driver))
	return nil
}
