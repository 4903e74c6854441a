package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unowned-ai/confide/pkg/completion"
	"github.com/unowned-ai/confide/pkg/moods"
	"github.com/unowned-ai/confide/pkg/quotes"
)

func newTestServer(svc completion.Service) *Server {
	return New(svc, quotes.MustSelector(quotes.DefaultPool), WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	}))
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAIResponse(t *testing.T) {
	var got completion.Request
	s := newTestServer(completion.Func(func(ctx context.Context, req completion.Request) (string, error) {
		got = req
		return "慢慢来。", nil
	}))

	rec := do(t, s, http.MethodPost, "/api/ai-response",
		`{"content":"好累","mood":{"emoji":"😴","label":"疲惫","value":"tired"},"style":"zen"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body aiResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "慢慢来。", body.Response)
	assert.Equal(t, "好累", got.UserMessage)
	assert.Contains(t, got.SystemInstruction, "疲惫 😴")
}

func TestAIResponseMissingParameters(t *testing.T) {
	s := newTestServer(completion.Func(func(ctx context.Context, req completion.Request) (string, error) {
		t.Fatal("service must not be called")
		return "", nil
	}))

	for _, body := range []string{`{}`, `{"content":"x","style":"zen"}`, `{"content":"x","mood":{"value":"sad"}}`, `not json`} {
		rec := do(t, s, http.MethodPost, "/api/ai-response", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestAIResponseFailures(t *testing.T) {
	cases := []struct {
		name    string
		svc     completion.Service
		message string
	}{
		{"not configured", nil, "not configured"},
		{"service error", completion.Func(func(ctx context.Context, req completion.Request) (string, error) {
			return "", errors.New("quota exceeded")
		}), "quota exceeded"},
		{"empty reply", completion.Func(func(ctx context.Context, req completion.Request) (string, error) {
			return "", nil
		}), "empty response"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newTestServer(tc.svc), http.MethodPost, "/api/ai-response",
				`{"content":"x","mood":{"emoji":"😔","label":"悲伤","value":"sad"},"style":"friend"}`)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tc.message)
		})
	}
}

func TestDailyQuote(t *testing.T) {
	s := newTestServer(nil)

	rec := do(t, s, http.MethodGet, "/api/daily-quote", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var q moods.DailyQuote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "2024-01-01", q.Date)
	assert.Equal(t, "世界以痛吻我，要我报之以歌。", q.Content)
	assert.False(t, q.Liked)

	rec = do(t, s, http.MethodGet, "/api/daily-quote?date=2024-01-02", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, quotes.DefaultPool[2].Content, q.Content)

	rec = do(t, s, http.MethodGet, "/api/daily-quote?date=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoteQuoteAgainstServer(t *testing.T) {
	srv := httptest.NewServer(newTestServer(nil).Handler())
	defer srv.Close()

	q, err := quotes.NewRemote(srv.URL, time.Second).QuoteForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "泰戈尔", q.Author)
}
