package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/table-buddy/internal/config"
	"github.com/m04kA/table-buddy/internal/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations require database.driver = %q", config.DriverPostgres)
			}

			db, err := openDB(context.Background(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				return migrations.Down(db, log)
			}
			return migrations.Up(db, log)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back the last migration instead")
	return cmd
}
