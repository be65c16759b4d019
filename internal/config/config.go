package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider modes selectable through PROVIDER.
const (
	ProviderMock     = "mock"
	ProviderRemote   = "remote"
	ProviderPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

type ProviderConfig struct {
	Mode           string
	BaseURL        string
	APIKey         string
	BLZ            string
	RequestTimeout time.Duration
	Candidates     int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
	DetailCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("PROVIDER", ProviderMock)
	v.SetDefault("FILIALFINDER_BASE_URL", "https://filialfinder.sparkasse.de")
	v.SetDefault("FILIALFINDER_BLZ", "50050000")
	v.SetDefault("REQUEST_TIMEOUT_MS", 2500)
	v.SetDefault("FILIALFINDER_CANDIDATES", 100)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "branch_finder")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SEARCH_CACHE_TTL", 60)
	v.SetDefault("DETAIL_CACHE_TTL", 300)
}

// Load reads configuration from the environment, optionally layered over a .env file
// in the working directory.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:             v.GetString("API_HOST"),
			Port:             v.GetInt("API_PORT"),
			Env:              v.GetString("API_ENV"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Provider: ProviderConfig{
			Mode:           strings.ToLower(strings.TrimSpace(v.GetString("PROVIDER"))),
			BaseURL:        strings.TrimRight(v.GetString("FILIALFINDER_BASE_URL"), "/"),
			APIKey:         v.GetString("FILIALFINDER_API_KEY"),
			BLZ:            v.GetString("FILIALFINDER_BLZ"),
			RequestTimeout: time.Duration(v.GetInt("REQUEST_TIMEOUT_MS")) * time.Millisecond,
			Candidates:     v.GetInt("FILIALFINDER_CANDIDATES"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(v.GetInt("SEARCH_CACHE_TTL")) * time.Second,
			DetailCacheTTL: time.Duration(v.GetInt("DETAIL_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail far from where they were set.
func (c *Config) Validate() error {
	switch c.Provider.Mode {
	case ProviderMock, ProviderPostgres:
	case ProviderRemote:
		if c.Provider.BaseURL == "" {
			return fmt.Errorf("FILIALFINDER_BASE_URL is required for the remote provider")
		}
		if c.Provider.BLZ == "" {
			return fmt.Errorf("FILIALFINDER_BLZ is required for the remote provider")
		}
	default:
		return fmt.Errorf("unknown PROVIDER %q (want %s, %s or %s)",
			c.Provider.Mode, ProviderMock, ProviderRemote, ProviderPostgres)
	}

	if c.Provider.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_MS must be positive")
	}
	if c.Provider.Candidates <= 0 {
		return fmt.Errorf("FILIALFINDER_CANDIDATES must be positive")
	}

	return nil
}

// CORSOrigins splits CORS_ALLOW_ORIGINS into its comma-separated entries.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.Server.CORSAllowOrigins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// DSN is the libpq connection string. Connections identify themselves as
// branch-finder in pg_stat_activity.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=branch-finder",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
