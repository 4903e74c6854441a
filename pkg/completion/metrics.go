package completion

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "confide",
			Subsystem: "completion",
			Name:      "requests_total",
			Help:      "Completion calls by outcome (ok, empty, error).",
		},
		[]string{"outcome"},
	)

	requestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "confide",
			Subsystem: "completion",
			Name:      "duration_seconds",
			Help:      "Latency of completion calls, including retries.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		},
	)
)

type instrumented struct {
	next Service
}

// Instrumented records call counts and latency for next.
func Instrumented(next Service) Service {
	return &instrumented{next: next}
}

func (i *instrumented) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := i.next.Complete(ctx, req)
	requestDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		requestsTotal.WithLabelValues("error").Inc()
	case text == "":
		requestsTotal.WithLabelValues("empty").Inc()
	default:
		requestsTotal.WithLabelValues("ok").Inc()
	}
	return text, err
}
