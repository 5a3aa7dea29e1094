package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Parsing
	HeaderProbes       int      `env:"LEDGER_HEADER_PROBES"        envDefault:"3"`
	OutflowTokens      []string `env:"LEDGER_OUTFLOW_TOKENS"       envSeparator:","`
	NoTransactionWords []string `env:"LEDGER_NO_TRANSACTION_WORDS" envSeparator:","`
	HolderBoilerplate  []string `env:"LEDGER_HOLDER_BOILERPLATE"   envSeparator:","`
	IgnoreGlobs        []string `env:"LEDGER_IGNORE_GLOBS"         envSeparator:","`
	NoResultsMarker    string   `env:"LEDGER_NO_RESULTS_MARKER"`
	XLSCharset         string   `env:"LEDGER_XLS_CHARSET"          envDefault:"utf-8"`
	Workers            int      `env:"LEDGER_WORKERS"              envDefault:"1"`

	// Profiles (optional YAML overrides of the builtin set)
	ProfilesFile string `env:"LEDGER_PROFILES_FILE"`

	// File reads
	ReadRetries int `env:"LEDGER_READ_RETRIES" envDefault:"3"`

	// Parse cache (optional - leave empty to disable)
	RedisURL     string        `env:"LEDGER_REDIS_URL"`
	CacheTTL     time.Duration `env:"LEDGER_CACHE_TTL"     envDefault:"24h"`
	RedisTimeout time.Duration `env:"LEDGER_REDIS_TIMEOUT" envDefault:"5s"`

	// Logging
	LogLevel  string `env:"LEDGER_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LEDGER_LOG_FORMAT" envDefault:"console"`

	// Metrics textfile (optional)
	MetricsFile string `env:"LEDGER_METRICS_FILE"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// CacheEnabled reports whether parsed files should be cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
