package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_compras/internal/adapter/persistence/repository"
	"gestao_compras/internal/usecase/interfaces"
	mock_interfaces "gestao_compras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSetupUseCase_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("ready", func(t *testing.T) {
		store := newTestStore()
		uc := NewSetupUseCase(store, repository.DriverMemory, "", NewCatalogUseCase(store), NewUserUseCase(store), AdminSeed{})
		st := uc.Check(ctx)
		if !st.Ready || st.Script != "" {
			t.Fatalf("expected ready status, got %+v", st)
		}
	})

	t.Run("missing tables come with the script", func(t *testing.T) {
		store := repository.NewMemoryTableStore(interfaces.TableRequests)
		script := repository.SetupScript(repository.DriverPostgres, "")
		uc := NewSetupUseCase(store, repository.DriverPostgres, script, NewCatalogUseCase(store), NewUserUseCase(store), AdminSeed{})

		st := uc.Check(ctx)
		if st.Ready || len(st.MissingTables) != len(interfaces.RequiredTables)-1 || st.Script != script {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("classifies failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITableStore(ctrl)
		uc := NewSetupUseCase(store, repository.DriverDynamo, "script", nil, nil, AdminSeed{})

		store.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, table string, _ map[string]any) ([]map[string]any, error) {
				switch table {
				case interfaces.TableRequests:
					return nil, interfaces.NewStoreError(table, interfaces.CodeUndefinedColumn, errors.New("column missing"))
				case interfaces.TableUsers:
					return nil, errors.New("throttled")
				case interfaces.TableThermal:
					return nil, interfaces.NewStoreError(table, interfaces.CodeTableNotFoundREST, errors.New("not found"))
				}
				return []map[string]any{}, nil
			}).Times(len(interfaces.RequiredTables))

		st := uc.Check(ctx)
		if st.Ready {
			t.Fatalf("expected not ready")
		}
		if len(st.MissingColumns) != 1 || st.MissingColumns[0] != interfaces.TableRequests {
			t.Fatalf("unexpected missing columns: %+v", st.MissingColumns)
		}
		if len(st.MissingTables) != 1 || st.MissingTables[0] != interfaces.TableThermal {
			t.Fatalf("unexpected missing tables: %+v", st.MissingTables)
		}
		if st.Errors[interfaces.TableUsers] != "throttled" || st.Script != "script" {
			t.Fatalf("unexpected status: %+v", st)
		}
	})
}

func TestSetupUseCase_Bootstrap(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	catalog := NewCatalogUseCase(store)
	users := newUserUseCase(store)
	uc := NewSetupUseCase(store, repository.DriverMemory, "", catalog, users, AdminSeed{Name: "Administrador", Email: "admin@empresa.com", Password: "admin123"})

	for i := 0; i < 2; i++ {
		if err := uc.Bootstrap(ctx); err != nil {
			t.Fatalf("bootstrap %d: %v", i, err)
		}
	}

	statuses, _ := catalog.ListStatuses(ctx)
	list, _ := users.List(ctx)
	if len(statuses) != 5 || len(list) != 1 || !list[0].IsAdmin() {
		t.Fatalf("unexpected seed: %d statuses, users %+v", len(statuses), list)
	}
}
