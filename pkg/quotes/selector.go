package quotes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unowned-ai/confide/pkg/moods"
)

var (
	ErrEmptyPool   = errors.New("quote pool is empty")
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
)

// Source provides the quote for a calendar day.
type Source interface {
	QuoteForDate(ctx context.Context, date string) (moods.DailyQuote, error)
}

// Selector deterministically maps a calendar day onto a fixed quote pool.
type Selector struct {
	pool []Quote
}

// NewSelector copies pool into a new Selector.
func NewSelector(pool []Quote) (*Selector, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	p := make([]Quote, len(pool))
	copy(p, pool)
	return &Selector{pool: p}, nil
}

// MustSelector is like NewSelector but panics on an empty pool.
func MustSelector(pool []Quote) *Selector {
	s, err := NewSelector(pool)
	if err != nil {
		panic(err)
	}
	return s
}

// PoolSize returns the number of quotes the selector chooses from.
func (s *Selector) PoolSize() int {
	return len(s.pool)
}

// Index returns the pool position for date: the date's digits read as one integer
// (2024-06-01 -> 20240601) modulo the pool size.
func (s *Selector) Index(date string) (int, error) {
	if _, err := time.Parse(moods.DateLayout, date); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(date, "-", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return int(n % int64(len(s.pool))), nil
}

// SelectForDate returns the quote for date wrapped as a fresh, unliked DailyQuote.
func (s *Selector) SelectForDate(date string) (moods.DailyQuote, error) {
	idx, err := s.Index(date)
	if err != nil {
		return moods.DailyQuote{}, err
	}
	q := s.pool[idx]
	return moods.DailyQuote{
		ID:      uuid.NewString(),
		Content: q.Content,
		Author:  q.Author,
		Date:    date,
		Liked:   false,
	}, nil
}

// QuoteForDate implements Source.
func (s *Selector) QuoteForDate(_ context.Context, date string) (moods.DailyQuote, error) {
	return s.SelectForDate(date)
}
