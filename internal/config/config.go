package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported values for DatabaseConfig.Driver and TasksConfig.Store.
const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"

	TaskStoreMemory = "memory"
	TaskStoreSQL    = "sql"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	GRPC     GRPCConfig
	GraphQL  GraphQLConfig
	Tasks    TasksConfig
	Log      LogConfig
	Health   HealthConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Driver       string // sqlite3 or mysql
	Path         string // SQLite database file path
	DSN          string // MySQL data source name
	MaxOpenConns int    // 0 picks a driver specific default
	MaxIdleConns int
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address string // HTTP listen address (e.g., ":8080")
}

// GRPCConfig contains gRPC health server settings. An empty address disables it.
type GRPCConfig struct {
	Address string
}

// GraphQLConfig contains schema execution settings.
type GraphQLConfig struct {
	GraphiQL       bool // serve the in-browser explorer on GET /graphql
	MaxParallelism int
}

// TasksConfig selects where tasks live.
type TasksConfig struct {
	Store string // memory or sql
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// HealthConfig controls the database health probe.
type HealthConfig struct {
	Interval time.Duration
}

// New returns a viper instance with defaults registered and environment lookup enabled.
// Keys use dots; the matching environment variable uses underscores (db.driver -> DB_DRIVER).
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "app.db")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.max_open_conns", 0)
	v.SetDefault("db.max_idle_conns", 2)
	v.SetDefault("http.address", ":8080")
	v.SetDefault("grpc.address", ":50051")
	v.SetDefault("graphql.graphiql", true)
	v.SetDefault("graphql.max_parallelism", 10)
	v.SetDefault("tasks.store", TaskStoreMemory)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("health.interval", 10*time.Second)
	return v
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	return LoadFrom(New())
}

// LoadFrom builds a Config from v (typically with command line flags bound) and validates it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:       strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
			Path:         v.GetString("db.path"),
			DSN:          v.GetString("db.dsn"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		HTTP: HTTPConfig{
			Address: v.GetString("http.address"),
		},
		GRPC: GRPCConfig{
			Address: v.GetString("grpc.address"),
		},
		GraphQL: GraphQLConfig{
			GraphiQL:       v.GetBool("graphql.graphiql"),
			MaxParallelism: v.GetInt("graphql.max_parallelism"),
		},
		Tasks: TasksConfig{
			Store: strings.ToLower(strings.TrimSpace(v.GetString("tasks.store"))),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Health: HealthConfig{
			Interval: v.GetDuration("health.interval"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
	case DriverMySQL:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN must be set when DB_DRIVER is %s", DriverMySQL)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Tasks.Store {
	case TaskStoreMemory, TaskStoreSQL:
	default:
		return fmt.Errorf("unsupported TASKS_STORE %q", c.Tasks.Store)
	}
	if c.HTTP.Address == "" {
		return fmt.Errorf("HTTP_ADDRESS must not be empty")
	}
	if c.GraphQL.MaxParallelism <= 0 {
		return fmt.Errorf("GRAPHQL_MAX_PARALLELISM must be positive, got %d", c.GraphQL.MaxParallelism)
	}
	if c.Health.Interval <= 0 {
		return fmt.Errorf("HEALTH_INTERVAL must be positive, got %s", c.Health.Interval)
	}
	return nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	dsn := ""
	if c.Database.DSN != "" {
		dsn = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{DB: %s %s %s, HTTP: %s, gRPC: %s, Tasks: %s}",
		c.Database.Driver, c.Database.Path, dsn, c.HTTP.Address, c.GRPC.Address, c.Tasks.Store)
}
