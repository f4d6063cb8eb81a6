package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storefrontGraphQL/internal/config"
	"storefrontGraphQL/internal/db"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the embedded SQLite schema migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sqliteConfig(v)
			if err != nil {
				return err
			}
			// Open applies pending migrations.
			d, err := db.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer d.Close()
			cmd.Printf("migrations applied to %s\n", cfg.Database.Path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sqliteConfig(v)
			if err != nil {
				return err
			}
			d, err := db.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := db.RollbackLast(d.DB); err != nil {
				return fmt.Errorf("rollback: %w", err)
			}
			cmd.Printf("last migration rolled back on %s\n", cfg.Database.Path)
			return nil
		},
	})
	return cmd
}

func sqliteConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Driver != config.DriverSQLite {
		return nil, fmt.Errorf("migrations are managed externally for %s", cfg.Database.Driver)
	}
	return cfg, nil
}
