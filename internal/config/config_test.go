package config

import (
	"os"
	"path/filepath"
	"testing"

	"gestao_compras/internal/domain/performance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "Entregue", cfg.Business.DeliveredStatus)
	assert.Equal(t, []string{"Gerente", "Diretor"}, cfg.Business.FullVisibilitySectors)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yml := "store:\n  driver: postgres\nbusiness:\n  delivered_status: Concluído\n  full_visibility_sectors: [Compras]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "Concluído", cfg.Business.DeliveredStatus)
	assert.Equal(t, []string{"Compras"}, cfg.Business.FullVisibilitySectors)
}

func TestValidate(t *testing.T) {
	cfg := Config{Store: StoreConfig{Driver: "sqlite"}, JWT: JWTConfig{Secret: "x"}, Business: BusinessConfig{DeliveredStatus: "Entregue"}}
	assert.Error(t, cfg.Validate())

	cfg.Store.Driver = "memory"
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Secret = " "
	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "compras", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=compras sslmode=disable", d.DSN())
}

func TestPreferences_LoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	store, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, performance.DefaultThresholds(), store.Get().SLA)

	p := store.Get()
	p.SLA = performance.Thresholds{Excellent: 3, Good: 7}
	p.ColumnWidths["orderNumber"] = 140
	require.NoError(t, store.Update(p))

	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, reloaded.Get().SLA.Excellent)
	assert.Equal(t, 140, reloaded.Get().ColumnWidths["orderNumber"])

	got := reloaded.Get()
	got.ColumnWidths["orderNumber"] = 1
	assert.Equal(t, 140, reloaded.Get().ColumnWidths["orderNumber"], "Get returns a copy")
}

func TestPreferences_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sla: [oops"), 0o644))
	_, err := LoadPreferences(path)
	assert.Error(t, err)
}
