package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	pkgdb "github.com/unowned-ai/confide/pkg/db"
	"github.com/unowned-ai/confide/pkg/persist"
)

// Prefix is prepended to every environment variable, e.g. CONFIDE_STORE.
const Prefix = "CONFIDE"

// Config holds all runtime settings. Values come from CONFIDE_* environment
// variables; CLI flags may override them afterwards.
type Config struct {
	Store      string `envconfig:"STORE" default:"sqlite"`
	DataPath   string `envconfig:"DATA_PATH" default:""`
	SQLiteWAL  bool   `envconfig:"SQLITE_WAL" default:"false"`
	SQLiteSync string `envconfig:"SQLITE_SYNC" default:"FULL"`

	OpenAIAPIKey  string        `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model         string        `envconfig:"MODEL" default:"gpt-3.5-turbo"`
	MaxTokens     int           `envconfig:"MAX_TOKENS" default:"500"`
	Temperature   float64       `envconfig:"TEMPERATURE" default:"0.8"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"60s"`

	RetryAttempts int           `envconfig:"RETRY_ATTEMPTS" default:"1"`
	RetryBase     time.Duration `envconfig:"RETRY_BASE" default:"500ms"`
	RetryMax      time.Duration `envconfig:"RETRY_MAX" default:"5s"`

	// QuoteURL points at a confide server; empty selects quotes locally.
	QuoteURL string `envconfig:"QUOTE_URL" default:""`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true"`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
}

// New parses the environment into a Config and validates it.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch persist.Kind(c.Store) {
	case persist.KindSQLite, persist.KindDiskv, persist.KindMemory:
	default:
		return fmt.Errorf("unsupported %s_STORE: %s", Prefix, c.Store)
	}
	if !pkgdb.ValidSyncMode(c.SQLiteSync) {
		return fmt.Errorf("unsupported %s_SQLITE_SYNC: %s", Prefix, c.SQLiteSync)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("%s_RETRY_ATTEMPTS must be >= 1, got %d", Prefix, c.RetryAttempts)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("%s_MAX_TOKENS must not be negative, got %d", Prefix, c.MaxTokens)
	}
	return nil
}
