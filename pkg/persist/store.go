package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unowned-ai/confide/pkg/moods"
)

// StorageKey is the key the diary document is stored under in every backend.
const StorageKey = "mood-storage"

// DocumentVersion is written next to the state so older documents can be migrated.
const DocumentVersion = 0

var ErrUnsupportedVersion = errors.New("unsupported document version")

// Snapshot is the durable part of the diary state.
type Snapshot struct {
	Entries              []moods.MoodEntry   `json:"entries"`
	DailyQuotes          []moods.DailyQuote  `json:"dailyQuotes"`
	CurrentResponseStyle moods.ResponseStyle `json:"currentResponseStyle"`
}

// Store is a durable key/value backend holding one Snapshot.
type Store interface {
	// Load returns the stored snapshot. ok is false when nothing has been saved yet.
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

type document struct {
	State   Snapshot `json:"state"`
	Version int      `json:"version"`
}

// Encode renders snap as the stored JSON document.
func Encode(snap Snapshot) ([]byte, error) {
	if snap.Entries == nil {
		snap.Entries = []moods.MoodEntry{}
	}
	if snap.DailyQuotes == nil {
		snap.DailyQuotes = []moods.DailyQuote{}
	}
	return json.Marshal(document{State: snap, Version: DocumentVersion})
}

// Decode parses a stored JSON document.
func Decode(data []byte) (Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("decode %s document: %w", StorageKey, err)
	}
	if doc.Version != DocumentVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return doc.State, nil
}
