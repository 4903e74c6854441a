package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/unowned-ai/confide/pkg/completion"
	"github.com/unowned-ai/confide/pkg/moods"
	"github.com/unowned-ai/confide/pkg/orchestrator"
	"github.com/unowned-ai/confide/pkg/quotes"
)

// Server exposes reply generation and the daily quote over HTTP.
type Server struct {
	router *mux.Router
	svc    completion.Service
	quotes quotes.Source
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces time.Now for the default quote date.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New builds the router. svc may be nil, in which case reply requests fail with 500.
func New(svc completion.Service, src quotes.Source, opts ...Option) *Server {
	s := &Server{
		router: mux.NewRouter(),
		svc:    svc,
		quotes: src,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.HandleFunc("/api/ai-response", s.handleAIResponse).Methods(http.MethodPost)
	s.router.HandleFunc("/api/daily-quote", s.handleDailyQuote).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type aiResponseRequest struct {
	Content string           `json:"content"`
	Mood    *moods.MoodTag   `json:"mood"`
	Style   moods.StyleValue `json:"style"`
}

type aiResponseBody struct {
	Response string `json:"response"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleAIResponse(w http.ResponseWriter, r *http.Request) {
	var req aiResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" || req.Mood == nil || req.Style == "" {
		writeError(w, http.StatusBadRequest, "missing required parameters")
		return
	}
	if s.svc == nil {
		writeError(w, http.StatusInternalServerError, "completion service is not configured")
		return
	}

	creq, known := orchestrator.BuildRequest(req.Content, *req.Mood, req.Style)
	if !known {
		s.logger.Warn().Str("style", string(req.Style)).Msg("unknown response style, using friend")
	}

	text, err := s.svc.Complete(r.Context(), creq)
	if err != nil {
		s.logger.Error().Err(err).Msg("ai response failed")
		writeError(w, http.StatusInternalServerError, (&orchestrator.ServiceError{Err: err}).Error())
		return
	}
	if text == "" {
		writeError(w, http.StatusInternalServerError, orchestrator.ErrEmptyResponse.Error())
		return
	}
	writeJSON(w, http.StatusOK, aiResponseBody{Response: text})
}

func (s *Server) handleDailyQuote(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = moods.FormatDate(s.now())
	}

	q, err := s.quotes.QuoteForDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, quotes.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error().Err(err).Msg("daily quote failed")
		writeError(w, http.StatusInternalServerError, "failed to get daily quote")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
