package diary

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/unowned-ai/confide/pkg/moods"
	"github.com/unowned-ai/confide/pkg/persist"
)

// State is a copy of everything the store holds.
type State struct {
	Entries              []moods.MoodEntry
	DailyQuotes          []moods.DailyQuote
	CurrentResponseStyle moods.ResponseStyle
	IsLoading            bool
}

// DateGroup holds the entries written on one calendar day.
type DateGroup struct {
	Date    string            `json:"date"`
	Entries []moods.MoodEntry `json:"entries"`
}

// MoodCount is the number of entries tagged with one mood.
type MoodCount struct {
	Mood  moods.MoodTag `json:"mood"`
	Count int           `json:"count"`
}

// Store owns the diary entries and daily quotes for one session. Every mutation
// is followed by a full save of the durable state.
type Store struct {
	mu sync.RWMutex

	entries   []moods.MoodEntry
	quotes    []moods.DailyQuote
	style     moods.ResponseStyle
	isLoading bool

	kv     persist.Store
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open seeds a Store from kv. It is the only place Load is called.
func Open(ctx context.Context, kv persist.Store, opts ...Option) (*Store, error) {
	s := &Store{
		style:  moods.DefaultStyle(),
		kv:     kv,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, ok, err := kv.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load diary: %w", err)
	}
	if !ok {
		s.logger.Debug().Msg("no stored diary, starting empty")
		return s, nil
	}

	s.entries = snap.Entries
	s.quotes = snap.DailyQuotes
	if moods.IsCatalogStyle(snap.CurrentResponseStyle) {
		s.style = snap.CurrentResponseStyle
	} else {
		s.logger.Warn().Str("style", string(snap.CurrentResponseStyle.Value)).Msg("stored response style is not in the catalog, using default")
	}
	s.logger.Debug().Int("entries", len(s.entries)).Int("quotes", len(s.quotes)).Msg("diary loaded")
	return s, nil
}

// snapshotLocked copies the durable state. Callers hold s.mu.
func (s *Store) snapshotLocked() persist.Snapshot {
	return persist.Snapshot{
		Entries:              append([]moods.MoodEntry(nil), s.entries...),
		DailyQuotes:          append([]moods.DailyQuote(nil), s.quotes...),
		CurrentResponseStyle: s.style,
	}
}

// saveLocked writes the durable state. Callers hold s.mu.
func (s *Store) saveLocked(op string) error {
	if err := s.kv.Save(context.Background(), s.snapshotLocked()); err != nil {
		s.logger.Warn().Err(err).Str("op", op).Msg("diary save failed")
		return &PersistenceWarning{Op: op, Err: err}
	}
	return nil
}

// AddEntry puts e at the front of the diary. The caller guarantees e.ID is new.
func (s *Store) AddEntry(e moods.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]moods.MoodEntry{e}, s.entries...)
	return s.saveLocked("add entry")
}

// RemoveEntry deletes the entry with the given id. Unknown ids are ignored.
func (s *Store) RemoveEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return s.saveLocked("remove entry")
}

// SetResponseStyle replaces the current response style.
func (s *Store) SetResponseStyle(style moods.ResponseStyle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !moods.IsCatalogStyle(style) {
		s.logger.Warn().Str("style", string(style.Value)).Msg("setting a response style that is not in the catalog")
	}
	s.style = style
	return s.saveLocked("set response style")
}

// AddDailyQuote stores q unless a quote for the same date already exists, in which
// case the earlier quote is kept and nothing changes.
func (s *Store) AddDailyQuote(q moods.DailyQuote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.quotes {
		if existing.Date == q.Date {
			return s.saveLocked("add daily quote")
		}
	}
	s.quotes = append([]moods.DailyQuote{q}, s.quotes...)
	return s.saveLocked("add daily quote")
}

// ToggleQuoteLike flips the liked flag of the quote with the given id.
func (s *Store) ToggleQuoteLike(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes[i].Liked = !s.quotes[i].Liked
		}
	}
	return s.saveLocked("toggle quote like")
}

// SetLoading sets the in-flight request flag. It is never persisted.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = loading
}

// BeginLoading sets the loading flag if it is not already set and reports
// whether it did.
func (s *Store) BeginLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isLoading {
		return false
	}
	s.isLoading = true
	return true
}

// Loading reports whether a request is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// ResponseStyle returns the current response style.
func (s *Store) ResponseStyle() moods.ResponseStyle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// Entries returns all entries, most recent first.
func (s *Store) Entries() []moods.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]moods.MoodEntry(nil), s.entries...)
}

// DailyQuotes returns all stored daily quotes, newest first.
func (s *Store) DailyQuotes() []moods.DailyQuote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]moods.DailyQuote(nil), s.quotes...)
}

// State returns a copy of the whole state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snapshotLocked()
	return State{
		Entries:              snap.Entries,
		DailyQuotes:          snap.DailyQuotes,
		CurrentResponseStyle: snap.CurrentResponseStyle,
		IsLoading:            s.isLoading,
	}
}

// Entry returns the entry with the given id.
func (s *Store) Entry(id string) (moods.MoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return moods.MoodEntry{}, false
}

// QuoteForDate returns the stored quote for date.
func (s *Store) QuoteForDate(date string) (moods.DailyQuote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotes {
		if q.Date == date {
			return q, true
		}
	}
	return moods.DailyQuote{}, false
}

// LikedQuotes returns the liked quotes, newest first.
func (s *Store) LikedQuotes() []moods.DailyQuote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var liked []moods.DailyQuote
	for _, q := range s.quotes {
		if q.Liked {
			liked = append(liked, q)
		}
	}
	return liked
}

// EntriesByDate returns the entries for date in store order.
func (s *Store) EntriesByDate(date string) []moods.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []moods.MoodEntry
	for _, e := range s.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// EntriesGroupedByDate groups entries by day, newest day first and newest entry
// first inside a day. A non-empty mood keeps only entries with that mood.
func (s *Store) EntriesGroupedByDate(mood moods.MoodValue) []DateGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDate := make(map[string][]moods.MoodEntry)
	for _, e := range s.entries {
		if mood != "" && e.Mood.Value != mood {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	groups := make([]DateGroup, 0, len(byDate))
	for date, entries := range byDate {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp > entries[j].Timestamp
		})
		groups = append(groups, DateGroup{Date: date, Entries: entries})
	}
	// YYYY-MM-DD is zero padded, so string order is calendar order.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// MoodCounts tallies entries per mood in catalog order.
func (s *Store) MoodCounts() []MoodCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[moods.MoodValue]int)
	for _, e := range s.entries {
		counts[e.Mood.Value]++
	}
	catalog := moods.Moods()
	out := make([]MoodCount, 0, len(catalog))
	for _, m := range catalog {
		out = append(out, MoodCount{Mood: m, Count: counts[m.Value]})
	}
	return out
}

// Close writes the durable state one last time and closes the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saveErr := s.saveLocked("close")
	if err := s.kv.Close(); err != nil {
		return err
	}
	return saveErr
}
