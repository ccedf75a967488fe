// Package metrics exports gameplay counters in the Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/niwa/internal/core"
)

const namespace = "niwa"

// Recorder holds the gameplay metrics. A nil *Recorder is valid and
// records nothing, so callers never need to check whether metrics are on.
type Recorder struct {
	registry *prometheus.Registry

	sessions prometheus.Counter
	active   prometheus.Gauge
	moves    *prometheus.CounterVec
	casts    *prometheus.CounterVec
	cleared  *prometheus.CounterVec
}

// New creates a Recorder with its own registry. Go runtime and process
// collectors are registered alongside the game metrics.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Game sessions started.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Game sessions currently running.",
		}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Movement commands by result.",
		}, []string{"result"}),
		casts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "casts_total",
			Help:      "Casts by outcome.",
		}, []string{"outcome"}),
		cleared: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_cleared_total",
			Help:      "Rooms cleared, by level.",
		}, []string{"level"}),
	}

	r.registry.MustRegister(
		r.sessions, r.active, r.moves, r.casts, r.cleared,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// SessionStarted counts a new session and marks it active.
func (r *Recorder) SessionStarted() {
	if r == nil {
		return
	}
	r.sessions.Inc()
	r.active.Inc()
}

// SessionEnded marks a session as finished.
func (r *Recorder) SessionEnded() {
	if r == nil {
		return
	}
	r.active.Dec()
}

// Observe records step events.
func (r *Recorder) Observe(events ...core.Event) {
	if r == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventMoved:
			r.moves.WithLabelValues("accepted").Inc()
		case core.EventMoveRejected:
			r.moves.WithLabelValues("rejected").Inc()
		case core.EventCast:
			r.casts.WithLabelValues(e.Detail).Inc()
		case core.EventCleared:
			r.cleared.WithLabelValues(e.Detail).Inc()
		}
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler returns the HTTP handler serving the metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("Stopping metrics server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
