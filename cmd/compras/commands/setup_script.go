package commands

import (
	"fmt"

	"gestao_compras/internal/adapter/persistence/repository"
	"gestao_compras/internal/config"

	"github.com/spf13/cobra"
)

func newSetupScriptCmd() *cobra.Command {
	var driver, prefix string
	cmd := &cobra.Command{
		Use:   "setup-script",
		Short: "Print the statements that create every required table",
		Long: `Print the SQL (postgres) or AWS CLI (dynamodb) statements that create
every table the service needs. Without --driver the configured store is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if driver == "" {
				cfg, err := config.Load()
				if err != nil {
					return failure(cmd.ErrOrStderr(), "failed to load config: %v", err)
				}
				driver = cfg.Store.Driver
				if !cmd.Flags().Changed("prefix") {
					prefix = cfg.Store.TablePrefix
				}
			}
			script := repository.SetupScript(driver, prefix)
			if script == "" {
				return failure(cmd.ErrOrStderr(), "no setup script for driver %q", driver)
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "store driver: postgres or dynamodb")
	cmd.Flags().StringVar(&prefix, "prefix", "", "table name prefix")
	return cmd
}
