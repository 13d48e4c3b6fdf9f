package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricRankingsTotal   = "weathereats_rankings_total"
	MetricRankingDuration = "weathereats_ranking_duration_seconds"
	MetricRankingVenues   = "weathereats_ranking_venues"
	MetricCatalogVenues   = "weathereats_catalog_venues_loaded"
)

// Ranking outcome labels.
const (
	OutcomeRanked   = "ranked"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// RankingMetrics contains Prometheus collectors for the ranking path.
type RankingMetrics struct {
	rankings      *prometheus.CounterVec
	duration      prometheus.Histogram
	venues        prometheus.Histogram
	catalogVenues prometheus.Gauge
}

// NewRankingMetrics creates the collectors without registering them.
func NewRankingMetrics() *RankingMetrics {
	return &RankingMetrics{
		rankings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingsTotal,
				Help: "Total number of ranking requests by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricRankingDuration,
			Help:    "Time spent classifying, scoring and sorting venues",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		venues: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricRankingVenues,
			Help:    "Number of candidate venues per ranking request",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
		}),
		catalogVenues: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricCatalogVenues,
			Help: "Number of venues upserted by the last catalog load",
		}),
	}
}

// Register registers all collectors with reg.
func (m *RankingMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.rankings, m.duration, m.venues, m.catalogVenues} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *RankingMetrics) observeRanking(outcome string, seconds float64, venues int) {
	if m == nil {
		return
	}
	m.rankings.WithLabelValues(outcome).Inc()
	m.duration.Observe(seconds)
	m.venues.Observe(float64(venues))
}

func (m *RankingMetrics) setCatalogVenues(n int) {
	if m == nil {
		return
	}
	m.catalogVenues.Set(float64(n))
}
