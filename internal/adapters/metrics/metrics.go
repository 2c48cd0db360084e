// Package metrics counts applied plan actions with Prometheus collectors.
package metrics

import (
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Namespace prefixes every metric name.
const Namespace = "pkgr"

// Recorder implements ports.ActionListener on its own registry.
type Recorder struct {
	registry *prometheus.Registry
	now      func() time.Time

	actions  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge

	mu      sync.Mutex
	started map[domain.IdentityKey]time.Time
}

var _ ports.ActionListener = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces the time source used for action durations.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// New creates a Recorder with a fresh registry.
func New(opts ...Option) *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	r := &Recorder{
		registry: registry,
		now:      time.Now,
		started:  make(map[domain.IdentityKey]time.Time),

		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "actions_total",
			Help:      "Total number of completed plan actions",
		}, []string{"kind"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "action_duration_seconds",
			Help:      "Time between an action's pre and post notification",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		}, []string{"kind"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "actions_in_flight",
			Help:      "Actions that were announced but have not completed",
		}),
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// OnAction updates the collectors for event.
func (r *Recorder) OnAction(event domain.ActionEvent) {
	key := event.Identity.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Kind.IsPre() {
		r.started[key] = r.now()
		r.inFlight.Inc()
		return
	}

	kind := "install"
	if event.Kind == domain.EventUninstalled {
		kind = "uninstall"
	}
	r.actions.WithLabelValues(kind).Inc()

	if start, ok := r.started[key]; ok {
		r.duration.WithLabelValues(kind).Observe(r.now().Sub(start).Seconds())
		delete(r.started, key)
		r.inFlight.Dec()
	}
}

// WriteText writes all collected metrics in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.Wrap(err, "failed to write metrics")
		}
	}
	return nil
}
