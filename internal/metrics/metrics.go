// Package metrics exposes click counters for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/petems/autoclicker/internal/clicker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Recorder tracks clicks, failures, toggles and sampled delays.
type Recorder struct {
	clicks      prometheus.Counter
	clickErrors prometheus.Counter
	toggles     *prometheus.CounterVec
	delay       prometheus.Histogram
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		clicks: f.NewCounter(prometheus.CounterOpts{
			Name: "autoclicker_clicks_total",
			Help: "The total number of synthetic left clicks issued",
		}),
		clickErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "autoclicker_click_errors_total",
			Help: "The total number of clicks the OS rejected",
		}),
		toggles: f.NewCounterVec(prometheus.CounterOpts{
			Name: "autoclicker_toggles_total",
			Help: "The total number of state changes, by new state",
		}, []string{"state"}),
		delay: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "autoclicker_click_delay_seconds",
			Help:    "The sampled pause between two clicks",
			Buckets: prometheus.LinearBuckets(0.020, 0.002, 6),
		}),
	}
}

// Hooks returns click loop hooks feeding the recorder.
func (r *Recorder) Hooks() clicker.Hooks {
	return clicker.Hooks{
		Clicked: func(_ time.Time, err error) {
			if err != nil {
				r.clickErrors.Inc()
				return
			}
			r.clicks.Inc()
		},
		Delay: func(d time.Duration) {
			r.delay.Observe(d.Seconds())
		},
	}
}

// SetIdle counts a switch to idle.
func (r *Recorder) SetIdle() {
	r.toggles.WithLabelValues(clicker.Idle.String()).Inc()
}

// SetClicking counts a switch to clicking.
func (r *Recorder) SetClicking() {
	r.toggles.WithLabelValues(clicker.Clicking.String()).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Metrics server shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Str("path", "/metrics").Msg("Starting metrics server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
