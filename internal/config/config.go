package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Features FeatureConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	WSPort      string
}

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver     string
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type FeatureConfig struct {
	RecommendLimit int
	SeedDemoData   bool
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		v := opt(key)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return n
	}
	optBool := func(key string, def bool) bool {
		v := opt(key)
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return b
	}
	optDuration := func(key string) time.Duration {
		v := opt(key)
		if v == "" {
			return 0
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			invalid = append(invalid, key)
			return 0
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		WSPort:      optDefault("WS_PORT", "8081"),
	}

	cfg.Store = StoreConfig{
		Driver:     strings.ToLower(optDefault("STORE_DRIVER", DriverMemory)),
		SQLitePath: optDefault("SQLITE_PATH", "projectlink.db"),
	}
	switch cfg.Store.Driver {
	case DriverMemory, DriverRedis, DriverSQLite, DriverPostgres:
	default:
		invalid = append(invalid, "STORE_DRIVER")
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}
	if cfg.Store.Driver == DriverPostgres {
		req("DB_HOST")
		req("DB_PORT")
		req("DB_NAME")
		req("DB_USER")
	}

	cfg.Features = FeatureConfig{
		RecommendLimit: optInt("RECOMMEND_LIMIT", 3),
		SeedDemoData:   optBool("SEED_DEMO_DATA", true),
	}
	if cfg.Features.RecommendLimit <= 0 {
		cfg.Features.RecommendLimit = 3
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
