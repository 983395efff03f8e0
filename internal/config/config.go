package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken       string `validate:"required"`
	DiscordAppID       string `validate:"required"`
	DiscordGuildID     string // empty registers commands globally
	ForceCommandUpdate bool

	// Storage
	StoreDriver string `validate:"oneof=postgres memory"`
	DBUser      string `validate:"required_if=StoreDriver postgres"`
	DBPassword  string
	DBHost      string `validate:"required_if=StoreDriver postgres"`
	DBPort      string `validate:"required_if=StoreDriver postgres"`
	DBName      string `validate:"required_if=StoreDriver postgres"`
	DBMaxConns  int    `validate:"min=1"`

	// Codewars
	CodewarsBaseURL string        `validate:"required,url"`
	CodewarsTimeout time.Duration `validate:"gt=0"`

	// Leaderboard
	LeaderboardSize        int `validate:"min=1,max=25"`
	LeaderboardConcurrency int `validate:"min=1,max=32"`

	// Record cache
	UserCacheSize int           `validate:"min=0"`
	UserCacheTTL  time.Duration `validate:"gte=0"`

	// Ops HTTP server (health + metrics)
	OpsPort int `validate:"min=1,max=65535"`

	// Logging
	LogLevel    string
	LogFormat   string `validate:"oneof=json text"`
	Environment string
	Version     string
	ServiceName string
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID: getEnv("DISCORD_GUILD_ID", ""),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver)),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "honorbot"),
		CodewarsBaseURL: strings.TrimRight(
			getEnv("CODEWARS_BASE_URL", DefaultCodewarsBaseURL), "/"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
	}

	var err error
	if cfg.ForceCommandUpdate, err = getEnvBool("DISCORD_FORCE_COMMAND_UPDATE", false); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.CodewarsTimeout, err = getEnvDuration("CODEWARS_TIMEOUT", DefaultCodewarsTimeout); err != nil {
		return nil, err
	}
	if cfg.LeaderboardSize, err = getEnvInt("LEADERBOARD_SIZE", DefaultLeaderboardSize); err != nil {
		return nil, err
	}
	if cfg.LeaderboardConcurrency, err = getEnvInt("LEADERBOARD_CONCURRENCY", DefaultLeaderboardConcurrency); err != nil {
		return nil, err
	}
	if cfg.UserCacheSize, err = getEnvInt("USER_CACHE_SIZE", DefaultUserCacheSize); err != nil {
		return nil, err
	}
	if cfg.UserCacheTTL, err = getEnvDuration("USER_CACHE_TTL", DefaultUserCacheTTL); err != nil {
		return nil, err
	}
	if cfg.OpsPort, err = getEnvInt("OPS_PORT", DefaultOpsPort); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and reports every failing field at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// UsesPostgres reports whether the configured store is PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == StoreDriverPostgres
}

// AddSource reports whether log records should carry file/line info.
func (c *Config) AddSource() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
