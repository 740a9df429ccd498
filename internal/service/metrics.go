package service

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	LoginAttempts  *prometheus.CounterVec
	TokensIssued   *prometheus.CounterVec
	VerifyDuration prometheus.Histogram
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_attempts_total",
				Help: "Total login attempts by outcome.",
			},
			[]string{"outcome"},
		),
		TokensIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_tokens_issued_total",
				Help: "Total tokens issued by type.",
			},
			[]string{"type"},
		),
		VerifyDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "auth_password_verify_duration_seconds",
				Help:    "Password verification duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	registry.MustRegister(m.LoginAttempts, m.TokensIssued, m.VerifyDuration)
	return m
}
