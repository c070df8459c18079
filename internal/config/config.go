package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv             = "dev"
	defaultPort            = "8080"
	defaultDBPath          = "./freight.db"
	defaultHistoryBackend  = BackendSQLite
	defaultHistoryFile     = "./history.msgpack"
	defaultHistoryCapacity = 50
	defaultRateFeedURL     = "https://api.frankfurter.app/latest"
	defaultRefreshInterval = time.Hour
	defaultFetchTimeout    = 10 * time.Second
	defaultFetchRetries    = 3
	defaultRateLimit       = "120-M"
	defaultLang            = "fr"
)

// History backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds application configuration sourced from environment variables and an optional .env file.
type Config struct {
	Env                 string
	Port                string
	DBPath              string
	HistoryBackend      string
	HistoryFile         string
	HistoryCapacity     int
	RateFeedURL         string
	RateRefreshInterval time.Duration
	RateFetchTimeout    time.Duration
	RateFetchRetries    int
	RateLimit           string
	DefaultLang         string
}

// IsDev reports whether the application runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}

// Load reads the configuration. Invalid values fall back to their default and are reported as warnings.
func Load() (Config, []string) {
	// Best-effort: production injects real environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("DB_PATH", defaultDBPath)
	v.SetDefault("HISTORY_BACKEND", defaultHistoryBackend)
	v.SetDefault("HISTORY_FILE", defaultHistoryFile)
	v.SetDefault("HISTORY_CAPACITY", defaultHistoryCapacity)
	v.SetDefault("RATE_FEED_URL", defaultRateFeedURL)
	v.SetDefault("RATE_REFRESH_INTERVAL", defaultRefreshInterval.String())
	v.SetDefault("RATE_FETCH_TIMEOUT", defaultFetchTimeout.String())
	v.SetDefault("RATE_FETCH_RETRIES", defaultFetchRetries)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("DEFAULT_LANG", defaultLang)
	v.AutomaticEnv()

	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	cfg := Config{
		Env:         strings.ToLower(v.GetString("APP_ENV")),
		Port:        v.GetString("PORT"),
		DBPath:      v.GetString("DB_PATH"),
		HistoryFile: v.GetString("HISTORY_FILE"),
		RateFeedURL: v.GetString("RATE_FEED_URL"),
		RateLimit:   strings.TrimSpace(v.GetString("RATE_LIMIT")),
	}

	cfg.HistoryBackend = strings.ToLower(v.GetString("HISTORY_BACKEND"))
	switch cfg.HistoryBackend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		warn("invalid HISTORY_BACKEND %q, using %s", cfg.HistoryBackend, defaultHistoryBackend)
		cfg.HistoryBackend = defaultHistoryBackend
	}

	cfg.HistoryCapacity = v.GetInt("HISTORY_CAPACITY")
	if cfg.HistoryCapacity <= 0 {
		warn("invalid HISTORY_CAPACITY %q, using %d", v.GetString("HISTORY_CAPACITY"), defaultHistoryCapacity)
		cfg.HistoryCapacity = defaultHistoryCapacity
	}

	cfg.RateRefreshInterval = duration(v, "RATE_REFRESH_INTERVAL", defaultRefreshInterval, true, warn)
	cfg.RateFetchTimeout = duration(v, "RATE_FETCH_TIMEOUT", defaultFetchTimeout, false, warn)

	cfg.RateFetchRetries = v.GetInt("RATE_FETCH_RETRIES")
	if cfg.RateFetchRetries < 0 {
		warn("invalid RATE_FETCH_RETRIES %q, using %d", v.GetString("RATE_FETCH_RETRIES"), defaultFetchRetries)
		cfg.RateFetchRetries = defaultFetchRetries
	}

	cfg.DefaultLang = strings.ToLower(v.GetString("DEFAULT_LANG"))
	switch cfg.DefaultLang {
	case "fr", "en", "es":
	default:
		warn("invalid DEFAULT_LANG %q, using %s", cfg.DefaultLang, defaultLang)
		cfg.DefaultLang = defaultLang
	}

	return cfg, warnings
}

func duration(v *viper.Viper, key string, def time.Duration, allowZero bool, warn func(string, ...any)) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		warn("invalid %s %q, using %s", key, raw, def)
		return def
	}
	return d
}
