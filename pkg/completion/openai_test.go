package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *OpenAI {
	return NewOpenAI(OpenAIConfig{
		BaseURL:     url,
		APIKey:      "sk-test",
		Model:       "test-model",
		MaxTokens:   500,
		Temperature: 0.8,
		Timeout:     time.Second,
	})
}

func TestOpenAIComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		assert.Equal(t, 500, body.MaxTokens)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "be kind", body.Messages[0].Content)
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, "rough day", body.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  抱抱你  "}}]}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Complete(context.Background(), Request{SystemInstruction: "be kind", UserMessage: "rough day"})
	require.NoError(t, err)
	assert.Equal(t, "抱抱你", text)
}

func TestOpenAINoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Complete(context.Background(), Request{UserMessage: "x"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestOpenAIAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), Request{UserMessage: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "quota exceeded", apiErr.Message)
	assert.True(t, apiErr.Temporary())
}

func TestOpenAIMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), Request{UserMessage: "x"})
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestOpenAIMissingKey(t *testing.T) {
	var called int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&called, 1)
	}))
	defer srv.Close()

	_, err := NewOpenAI(OpenAIConfig{BaseURL: srv.URL}).Complete(context.Background(), Request{UserMessage: "x"})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Zero(t, atomic.LoadInt32(&called))
}
