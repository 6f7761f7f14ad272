// Package metrics exposes Prometheus instruments for touch operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace prefixes every metric name.
	Namespace = "touchstamp"

	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the touch counters and gauges.
type Metrics struct {
	touchesTotal  *prometheus.CounterVec
	lastTouch     *prometheus.GaugeVec
	touchDuration *prometheus.HistogramVec
}

// New creates the instruments and registers them on reg. A nil reg means
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		touchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "touches_total",
				Help:      "Total number of touch attempts",
			},
			[]string{"target", "status"},
		),
		lastTouch: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "last_touch_timestamp_seconds",
				Help:      "Unix time of the last successful touch",
			},
			[]string{"target"},
		),
		touchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "touch_duration_seconds",
				Help:      "Duration of touch operations",
				Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"target"},
		),
	}

	reg.MustRegister(m.touchesTotal, m.lastTouch, m.touchDuration)

	return m
}

// Observe records one touch of target that started at start and finished
// with err.
func (m *Metrics) Observe(target string, start time.Time, err error) {
	m.touchDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	if err != nil {
		m.touchesTotal.WithLabelValues(target, StatusError).Inc()
		return
	}
	m.touchesTotal.WithLabelValues(target, StatusOK).Inc()
	m.lastTouch.WithLabelValues(target).SetToCurrentTime()
}

// Handler serves metrics gathered from g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
