package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownDriver = errors.New("unknown store driver (must be memory, redis, postgres or sqlite)")
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port        string
	StoreDriver string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SQLitePath  string
	CacheSizeMB int

	Location *time.Location

	LogLevel string
	LogJSON  bool
	LogFile  string

	CORSOrigins        []string
	RateLimit          int
	ReevaluateInterval time.Duration
	AutosaveDelay      time.Duration
}

// Load reads the configuration from the environment. envFiles are loaded
// first when present; variables already set in the process win.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warnf("[CONFIG] could not read %s: %v", f, err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", DriverMemory),

		DBUser:     getEnv("DB_USER", "kanso_user"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "kanso_db"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		SQLitePath:  getEnv("SQLITE_PATH", "kanso-fit.db"),
		CacheSizeMB: getInt("CACHE_SIZE_MB", 8),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getBool("LOG_JSON", false),
		LogFile:  getEnv("LOG_FILE", ""),

		CORSOrigins:        getList("CORS_ORIGINS"),
		RateLimit:          getInt("RATE_LIMIT", 100),
		ReevaluateInterval: getDuration("REEVALUATE_INTERVAL", time.Hour),
		AutosaveDelay:      getDuration("AUTOSAVE_DELAY", 2*time.Second),
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverRedis, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
	}

	loc, err := loadLocation(getEnv("TZ_LOCATION", ""))
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	return cfg, nil
}

// PostgresDSN builds the connection string for the pgx stdlib driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ_LOCATION %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getList splits a comma separated variable, dropping blank elements.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("[CONFIG] %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("[CONFIG] %s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warnf("[CONFIG] %s=%q is not a positive duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}
