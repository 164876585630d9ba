// Package metrics exposes Prometheus collectors for the portfolio server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "portfolio"

// Metrics groups the collectors the server updates.
type Metrics struct {
	PageViews          *prometheus.CounterVec
	ContactSubmissions *prometheus.CounterVec
	HeroStreams        *prometheus.GaugeVec
	HeroFrames         *prometheus.CounterVec
}

// MustNew registers the collectors with reg, panicking on duplicate
// registration. Tests pass a fresh prometheus.NewRegistry().
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		PageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_views_total",
				Help:      "Tracked page views by path.",
			},
			[]string{"path"},
		),
		ContactSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "contact",
				Name:      "submissions_total",
				Help:      "Contact form submissions by outcome.",
			},
			[]string{"outcome"},
		),
		HeroStreams: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "hero",
				Name:      "active_streams",
				Help:      "Open typewriter streams by transport.",
			},
			[]string{"transport"},
		),
		HeroFrames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "hero",
				Name:      "frames_sent_total",
				Help:      "Typewriter frames written to clients by transport.",
			},
			[]string{"transport"},
		),
	}

	reg.MustRegister(m.PageViews, m.ContactSubmissions, m.HeroStreams, m.HeroFrames)
	return m
}

// Contact submission outcomes.
const (
	OutcomeSent     = "sent"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeDisabled = "disabled"
)

func (m *Metrics) ObserveContact(outcome string) {
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePageView(path string) {
	m.PageViews.WithLabelValues(path).Inc()
}

// StreamOpened increments the active gauge and returns the matching close func.
func (m *Metrics) StreamOpened(transport string) func() {
	g := m.HeroStreams.WithLabelValues(transport)
	g.Inc()
	return g.Dec
}

func (m *Metrics) FrameSent(transport string) {
	m.HeroFrames.WithLabelValues(transport).Inc()
}
