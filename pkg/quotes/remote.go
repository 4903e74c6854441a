package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/unowned-ai/confide/pkg/moods"
)

// Remote fetches the daily quote from a confide HTTP server.
type Remote struct {
	client *resty.Client
}

type errorBody struct {
	Error string `json:"error"`
}

// NewRemote creates a Remote source for the server at baseURL.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	return &Remote{client: c}
}

// QuoteForDate implements Source.
func (r *Remote) QuoteForDate(ctx context.Context, date string) (moods.DailyQuote, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("date", date).
		Get("/api/daily-quote")
	if err != nil {
		return moods.DailyQuote{}, fmt.Errorf("daily quote request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		var eb errorBody
		if json.Unmarshal(resp.Body(), &eb) == nil && eb.Error != "" {
			return moods.DailyQuote{}, fmt.Errorf("daily quote status %d: %s", resp.StatusCode(), eb.Error)
		}
		return moods.DailyQuote{}, fmt.Errorf("daily quote status %d", resp.StatusCode())
	}

	var q moods.DailyQuote
	if err := json.Unmarshal(resp.Body(), &q); err != nil {
		return moods.DailyQuote{}, fmt.Errorf("decode daily quote: %w", err)
	}
	if q.Date == "" {
		q.Date = date
	}
	return q, nil
}
