package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/unowned-ai/confide/pkg/completion"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
	"github.com/unowned-ai/confide/pkg/quotes"
)

// Orchestrator turns user input into diary entries by way of the completion service.
type Orchestrator struct {
	store  *diary.Store
	svc    completion.Service
	quotes quotes.Source
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithIDGenerator replaces the uuid based entry id generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *Orchestrator) {
		o.newID = newID
	}
}

// WithQuoteSource replaces the built-in quote selector.
func WithQuoteSource(src quotes.Source) Option {
	return func(o *Orchestrator) {
		o.quotes = src
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// New creates an Orchestrator writing to store. svc may be nil when only quote
// and store operations are needed.
func New(store *diary.Store, svc completion.Service, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:  store,
		svc:    svc,
		quotes: quotes.MustSelector(quotes.DefaultPool),
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Store returns the diary the orchestrator writes to.
func (o *Orchestrator) Store() *diary.Store {
	return o.store
}

// Submit validates content, asks for a reply and records a new diary entry.
// A nil mood means a complex, mixed feeling.
//
// When the entry was created but could not be saved, the entry is returned
// together with a *diary.PersistenceWarning.
func (o *Orchestrator) Submit(ctx context.Context, content string, mood *moods.MoodTag, style moods.ResponseStyle) (moods.MoodEntry, error) {
	if err := moods.ValidateContent(content); err != nil {
		return moods.MoodEntry{}, &ValidationError{Err: err}
	}

	effective := moods.DefaultMood()
	if mood != nil {
		effective = *mood
	}

	reply, err := o.reply(ctx, content, effective, style)
	if err != nil {
		return moods.MoodEntry{}, err
	}

	created := o.now()
	entry := moods.MoodEntry{
		ID:            o.newID(),
		Content:       content,
		Mood:          effective,
		AIResponse:    reply,
		ResponseStyle: style,
		Timestamp:     created.UnixMilli(),
		Date:          moods.FormatDate(created),
	}
	if err := o.store.AddEntry(entry); err != nil {
		return entry, err
	}
	o.logger.Debug().Str("id", entry.ID).Str("mood", string(entry.Mood.Value)).Msg("entry recorded")
	return entry, nil
}

// Regenerate asks for a new reply to an existing entry in style. The returned
// copy keeps the id, timestamp, date, content and mood; the diary is not touched.
func (o *Orchestrator) Regenerate(ctx context.Context, existing moods.MoodEntry, style moods.ResponseStyle) (moods.MoodEntry, error) {
	reply, err := o.reply(ctx, existing.Content, existing.Mood, style)
	if err != nil {
		return moods.MoodEntry{}, err
	}
	updated := existing
	updated.AIResponse = reply
	updated.ResponseStyle = style
	return updated, nil
}

// reply runs one completion round-trip while holding the loading flag.
func (o *Orchestrator) reply(ctx context.Context, content string, mood moods.MoodTag, style moods.ResponseStyle) (string, error) {
	if o.svc == nil {
		return "", &ServiceError{Err: ErrNoCompletion}
	}
	if !o.store.BeginLoading() {
		return "", ErrBusy
	}
	defer o.store.SetLoading(false)

	req, known := BuildRequest(content, mood, style.Value)
	if !known {
		o.logger.Warn().Str("style", string(style.Value)).Msg("unknown response style, using friend")
	}

	text, err := o.svc.Complete(ctx, req)
	if err != nil {
		o.logger.Warn().Err(err).Msg("completion failed")
		return "", &ServiceError{Err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// QuoteOfTheDay returns today's quote, fetching and storing it on first use.
func (o *Orchestrator) QuoteOfTheDay(ctx context.Context) (moods.DailyQuote, error) {
	today := moods.FormatDate(o.now())
	if q, ok := o.store.QuoteForDate(today); ok {
		return q, nil
	}

	q, err := o.quotes.QuoteForDate(ctx, today)
	if err != nil {
		return moods.DailyQuote{}, err
	}
	q.Date = today

	// Store errors are persistence warnings; the quote is in memory either way.
	err = o.store.AddDailyQuote(q)
	stored, _ := o.store.QuoteForDate(today)
	return stored, err
}
