package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the helper onboarding module. All
// methods are nil-safe so services can run without metrics in tests.
type Metrics struct {
	// Onboarding outcomes by result ("success" or a failure code)
	OnboardingOutcome *prometheus.CounterVec

	// Passwords set through the setup flow
	PasswordsSet prometheus.Counter

	// Email confirmations by result
	EmailConfirmations *prometheus.CounterVec

	// Welcome notification deliveries by result
	NotificationsSent *prometheus.CounterVec

	// Overall onboarding latency including persistence and notification
	OnboardLatency prometheus.Histogram
}

// New creates a new Metrics instance with all onboarding metrics registered.
func New() *Metrics {
	return &Metrics{
		OnboardingOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "helperhub_onboarding_outcomes_total",
			Help: "Total onboarding outcomes by result",
		}, []string{"result"}), // result: "success" or the failure code

		PasswordsSet: promauto.NewCounter(prometheus.CounterOpts{
			Name: "helperhub_passwords_set_total",
			Help: "Total passwords set through the setup token flow",
		}),

		EmailConfirmations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "helperhub_email_confirmations_total",
			Help: "Total email confirmation attempts by result",
		}, []string{"result"}),

		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "helperhub_notifications_sent_total",
			Help: "Total welcome notification deliveries by result",
		}, []string{"result"}), // result: "sent" or "failed"

		OnboardLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "helperhub_onboard_duration_seconds",
			Help:    "Duration of the full onboarding use case",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementOnboardingOutcome records an onboarding result.
func (m *Metrics) IncrementOnboardingOutcome(result string) {
	if m != nil {
		m.OnboardingOutcome.WithLabelValues(result).Inc()
	}
}

// IncrementPasswordsSet records a completed password setup.
func (m *Metrics) IncrementPasswordsSet() {
	if m != nil {
		m.PasswordsSet.Inc()
	}
}

// IncrementEmailConfirmation records an email confirmation attempt.
func (m *Metrics) IncrementEmailConfirmation(result string) {
	if m != nil {
		m.EmailConfirmations.WithLabelValues(result).Inc()
	}
}

// IncrementNotification records a welcome notification delivery attempt.
func (m *Metrics) IncrementNotification(result string) {
	if m != nil {
		m.NotificationsSent.WithLabelValues(result).Inc()
	}
}

// ObserveOnboardLatency records the total onboarding duration.
func (m *Metrics) ObserveOnboardLatency(d time.Duration) {
	if m != nil {
		m.OnboardLatency.Observe(d.Seconds())
	}
}
