package commands

import (
	"context"
	"sort"

	"gestao_compras/internal/app"
	"gestao_compras/internal/config"
	"gestao_compras/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every required table exists in the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return failure(cmd.ErrOrStderr(), "%v", err)
			}
			defer cleanup()

			st := a.UseCases.Setup.Check(cmd.Context())
			out := cmd.OutOrStdout()
			for _, t := range st.MissingTables {
				warning(out, "table %s is missing", t)
			}
			for _, t := range st.MissingColumns {
				warning(out, "table %s is missing columns", t)
			}
			tables := make([]string, 0, len(st.Errors))
			for t := range st.Errors {
				tables = append(tables, t)
			}
			sort.Strings(tables)
			for _, t := range tables {
				warning(out, "table %s: %s", t, st.Errors[t])
			}
			if !st.Ready {
				if st.Script != "" {
					warning(out, "run `compras setup-script` and apply its output")
				}
				return failure(cmd.ErrOrStderr(), "store %s is not ready", st.Driver)
			}
			success(out, "store %s is ready", st.Driver)
			return nil
		},
	}
}

// openApp loads the configuration with a quiet logger and connects to the store.
func openApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	flush, err := logger.Init("warn", "console")
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		flush()
		return nil, nil, err
	}
	return a, func() {
		a.Close()
		flush()
	}, nil
}
