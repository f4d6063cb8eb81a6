package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"storefrontGraphQL/internal/config"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"db-driver":       "db.driver",
	"db-path":         "db.path",
	"db-dsn":          "db.dsn",
	"http-address":    "http.address",
	"grpc-address":    "grpc.address",
	"graphiql":        "graphql.graphiql",
	"tasks-store":     "tasks.store",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"health-interval": "health.interval",
}

func newRootCmd() *cobra.Command {
	v := config.New()
	root := &cobra.Command{
		Use:          "server",
		Short:        "Serve the storefront GraphQL API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.String("db-driver", config.DriverSQLite, "Database driver: sqlite3 or mysql")
	flags.String("db-path", "app.db", "SQLite database file")
	flags.String("db-dsn", "", "MySQL data source name")
	flags.String("http-address", ":8080", "HTTP listen address")
	flags.String("grpc-address", ":50051", "gRPC health listen address, empty to disable")
	flags.Bool("graphiql", true, "Serve GraphiQL on GET /graphql")
	flags.String("tasks-store", config.TaskStoreMemory, "Task store: memory or sql")
	flags.String("log-level", "info", "Log level")
	flags.String("log-format", "json", "Log format: json or console")
	flags.Duration("health-interval", 10*time.Second, "Database health probe interval")
	bindFlags(v, flags)

	root.AddCommand(newMigrateCmd(v))
	return root
}

// bindFlags lets explicitly set flags override environment variables and defaults.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		_ = v.BindPFlag(key, f)
	}
}
