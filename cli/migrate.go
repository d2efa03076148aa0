package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func migrateCommand(cfg *Config) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migration",
		Example: heredoc.Doc(`
			$ catalogindex migrate
			$ catalogindex migrate --down
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Preparing migration...")

			a, err := newApp(cmd.Context(), cfg, appOption{postgres: true})
			if err != nil {
				return err
			}
			defer a.Close()
			if a.pg == nil {
				return errDBDisabled
			}

			a.logger.Info("catalogindex is migrating", "version", Version)

			migrate := a.pg.Migrate
			if down {
				migrate = a.pg.MigrateDown
			}
			ver, err := migrate()
			if err != nil {
				return fmt.Errorf("problem with migration %w", err)
			}

			a.logger.Info("Migration Postgres done.", "schema_version", ver)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert the last migration")
	return cmd
}
