package commands

import (
	"os"
	"path/filepath"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase"

	"github.com/spf13/cobra"
)

type exportFlags struct {
	from, to, columns, sector, out string
	history, upload                bool
}

func newExportCmd() *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the requests of a date range to an xlsx file",
		Example: `  compras export --from 2024-01-01 --to 2024-03-31 --history
  compras export --sector Compras --columns orderNumber,supplier,status --out compras.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return failure(cmd.ErrOrStderr(), "%v", err)
			}
			defer cleanup()

			res, err := a.UseCases.Reports.Export(cmd.Context(), exportActor(f.sector), f.options())
			if err != nil {
				return failure(cmd.ErrOrStderr(), "export failed: %v", err)
			}
			if f.upload {
				success(cmd.OutOrStdout(), "%d requests uploaded: %s", res.Rows, res.URL)
				return nil
			}

			path := f.out
			if path == "" {
				path = res.FileName
			}
			if err := os.WriteFile(path, res.Content, 0o644); err != nil {
				return failure(cmd.ErrOrStderr(), "failed to write %s: %v", path, err)
			}
			abs, _ := filepath.Abs(path)
			success(cmd.OutOrStdout(), "%d requests written to %s", res.Rows, abs)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "first request date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "last request date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.columns, "columns", "", "comma separated column ids, all active fields when empty")
	cmd.Flags().StringVar(&f.sector, "sector", "", "export only what a member of this sector sees")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file, defaults to the generated name")
	cmd.Flags().BoolVar(&f.history, "history", false, "add the history sheet")
	cmd.Flags().BoolVar(&f.upload, "upload", false, "upload to object storage instead of writing a file")
	return cmd
}

func (f exportFlags) options() usecase.ExportOptions {
	var cols []string
	for _, c := range strings.Split(f.columns, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return usecase.ExportOptions{From: f.from, To: f.to, Columns: cols, IncludeHistory: f.history, Upload: f.upload}
}

// exportActor is the identity the export runs as. Without a sector it sees
// every request.
func exportActor(sector string) entities.User {
	if sector == "" {
		return entities.User{Name: entities.SystemUser, Role: entities.RoleAdmin}
	}
	return entities.User{Name: entities.SystemUser, Role: entities.RoleUser, Sector: sector}
}
