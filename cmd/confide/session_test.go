package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/unowned-ai/confide/pkg/config"
	"github.com/unowned-ai/confide/pkg/persist"
	"github.com/unowned-ai/confide/pkg/quotes"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 6, 1, 21, 30, 0, 0, time.Local).UnixMilli()
	assert.Equal(t, "2024-06-01 21:30", formatTimestamp(ts))
}

func TestNewCompletionRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{RetryAttempts: 1}
	assert.Nil(t, newCompletion(cfg, zerolog.Nop()))

	cfg.OpenAIAPIKey = "sk-test"
	assert.NotNil(t, newCompletion(cfg, zerolog.Nop()))
}

func TestNewQuoteSource(t *testing.T) {
	cfg := &config.Config{}
	_, local := newQuoteSource(cfg).(*quotes.Selector)
	assert.True(t, local)

	cfg.QuoteURL = "http://localhost:8080"
	_, remote := newQuoteSource(cfg).(*quotes.Remote)
	assert.True(t, remote)
}

func TestStoreOptions(t *testing.T) {
	cfg := &config.Config{Store: "diskv", DataPath: "/tmp/confide", SQLiteWAL: true, SQLiteSync: "NORMAL"}
	opts := storeOptions(cfg, zerolog.Nop())
	assert.Equal(t, persist.KindDiskv, opts.Kind)
	assert.Equal(t, "/tmp/confide", opts.DataDir)
	assert.True(t, opts.WAL)
	assert.Equal(t, "NORMAL", opts.SyncMode)
}
