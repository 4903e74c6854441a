package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/completion"
	"github.com/unowned-ai/confide/pkg/config"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/logging"
	"github.com/unowned-ai/confide/pkg/orchestrator"
	"github.com/unowned-ai/confide/pkg/persist"
	"github.com/unowned-ai/confide/pkg/quotes"
	"github.com/unowned-ai/confide/pkg/utils"
)

var (
	dataPath  string
	storeKind string
	walMode   bool
	syncMode  string
	logLevel  string
)

// loadConfig reads CONFIDE_* settings and applies any flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DataPath = dataPath
	}
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if flags.Changed("wal") {
		cfg.SQLiteWAL = walMode
	}
	if flags.Changed("sync") {
		cfg.SQLiteSync = syncMode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	dir, err := utils.ResolveAndEnsureDataDir(cfg.DataPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	cfg.DataPath = dir

	// stdout carries command output and the MCP stream.
	logger := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stderr)
	return cfg, logger, nil
}

func storeOptions(cfg *config.Config, logger zerolog.Logger) persist.Options {
	return persist.Options{
		Kind:     persist.Kind(cfg.Store),
		DataDir:  cfg.DataPath,
		WAL:      cfg.SQLiteWAL,
		SyncMode: cfg.SQLiteSync,
		Logger:   logger,
	}
}

// newCompletion builds OpenAI -> retry -> metrics. It returns nil without an API key.
func newCompletion(cfg *config.Config, logger zerolog.Logger) completion.Service {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	svc := completion.Service(completion.NewOpenAI(completion.OpenAIConfig{
		BaseURL:     cfg.OpenAIBaseURL,
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.HTTPTimeout,
	}))
	svc = completion.Retrying(svc, completion.RetryConfig{
		MaxAttempts: cfg.RetryAttempts,
		BaseBackoff: cfg.RetryBase,
		MaxInterval: cfg.RetryMax,
		Logger:      logger,
	})
	return completion.Instrumented(svc)
}

func newQuoteSource(cfg *config.Config) quotes.Source {
	if cfg.QuoteURL != "" {
		return quotes.NewRemote(cfg.QuoteURL, cfg.HTTPTimeout)
	}
	return quotes.MustSelector(quotes.DefaultPool)
}

// session is one opened diary plus the orchestrator driving it.
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
	store  *diary.Store
	orch   *orchestrator.Orchestrator
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	kv, err := persist.Open(storeOptions(cfg, logger))
	if err != nil {
		return nil, err
	}

	store, err := diary.Open(cmd.Context(), kv, diary.WithLogger(logger))
	if err != nil {
		kv.Close()
		return nil, err
	}

	orch := orchestrator.New(store, newCompletion(cfg, logger),
		orchestrator.WithQuoteSource(newQuoteSource(cfg)),
		orchestrator.WithLogger(logger),
	)
	logger.Debug().Str("store", cfg.Store).Str("data", cfg.DataPath).Msg("session opened")
	return &session{cfg: cfg, logger: logger, store: store, orch: orch}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
