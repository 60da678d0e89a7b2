package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks donation and registration activity.
type Metrics struct {
	DonationsRecorded prometheus.Counter
	DonationsFailed   *prometheus.CounterVec
	AmountRaised      prometheus.Counter
	UsersRegistered   *prometheus.CounterVec
	DonationDuration  prometheus.Histogram
}

// New registers the metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		DonationsRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "charity_donations_recorded_total",
			Help: "Total number of donations committed with a tax receipt",
		}),
		DonationsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_donations_failed_total",
			Help: "Total number of donations rejected or rolled back",
		}, []string{"reason"}),
		AmountRaised: f.NewCounter(prometheus.CounterOpts{
			Name: "charity_amount_raised_total",
			Help: "Sum of committed donation amounts",
		}),
		UsersRegistered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_users_registered_total",
			Help: "Total number of registered users",
		}, []string{"role"}),
		DonationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "charity_donation_duration_seconds",
			Help:    "Duration of the donation transaction",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// DonationRecorded counts a committed donation of amount.
func (m *Metrics) DonationRecorded(amount float64, start time.Time) {
	m.DonationsRecorded.Inc()
	m.AmountRaised.Add(amount)
	m.DonationDuration.Observe(time.Since(start).Seconds())
}

// DonationFailed counts a donation that was not committed.
func (m *Metrics) DonationFailed(reason string) {
	m.DonationsFailed.WithLabelValues(reason).Inc()
}

func (m *Metrics) UserRegistered(role string) {
	m.UsersRegistered.WithLabelValues(role).Inc()
}
