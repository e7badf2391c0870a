// Package metrics exposes reload activity as Prometheus collectors.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/relink/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "relink"

// Metrics implements ports.Metrics with Prometheus collectors.
type Metrics struct {
	polls          *prometheus.CounterVec
	changes        *prometheus.CounterVec
	reloads        *prometheus.CounterVec
	reloadFailures *prometheus.CounterVec
	reloadDuration *prometheus.HistogramVec
	watching       *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

var _ ports.Metrics = (*Metrics)(nil)

// New creates the collectors and registers them with reg.
// Collectors already present in reg are reused.
func New(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "polls_total",
			Help:      "Number of modification-time polls per program.",
		}, []string{"program"}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "changes_total",
			Help:      "Number of polls that detected a changed source file.",
		}, []string{"program"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "reloads_total",
			Help:      "Number of program (re)load attempts.",
		}, []string{"program"}),
		reloadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "reload_failures_total",
			Help:      "Number of program (re)loads that failed to compile or link.",
		}, []string{"program"}),
		reloadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "reload_duration_seconds",
			Help:      "Time spent compiling and linking a program.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"program"}),
		watching: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "watching",
			Help:      "Whether a program is subscribed to host ticks (1) or not (0).",
		}, []string{"program"}),
		gatherer: reg,
	}

	var err error
	if m.polls, err = register(reg, m.polls); err != nil {
		return nil, err
	}
	if m.changes, err = register(reg, m.changes); err != nil {
		return nil, err
	}
	if m.reloads, err = register(reg, m.reloads); err != nil {
		return nil, err
	}
	if m.reloadFailures, err = register(reg, m.reloadFailures); err != nil {
		return nil, err
	}
	if m.reloadDuration, err = register(reg, m.reloadDuration); err != nil {
		return nil, err
	}
	if m.watching, err = register(reg, m.watching); err != nil {
		return nil, err
	}

	return m, nil
}

// ObservePoll records one poll of a program's source files.
func (m *Metrics) ObservePoll(program string, changed bool) {
	m.polls.WithLabelValues(program).Inc()
	if changed {
		m.changes.WithLabelValues(program).Inc()
	}
}

// ObserveReload records one (re)load attempt and its outcome.
func (m *Metrics) ObserveReload(program string, elapsed time.Duration, err error) {
	m.reloads.WithLabelValues(program).Inc()
	m.reloadDuration.WithLabelValues(program).Observe(elapsed.Seconds())
	if err != nil {
		m.reloadFailures.WithLabelValues(program).Inc()
	}
}

// SetWatching records whether a program is subscribed to host ticks.
func (m *Metrics) SetWatching(program string, watching bool) {
	v := 0.0
	if watching {
		v = 1
	}
	m.watching.WithLabelValues(program).Set(v)
}

// register adds c to reg, returning the collector already registered under
// the same descriptor when there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, zerr.Wrap(err, "failed to register collector")
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
