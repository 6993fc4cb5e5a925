package salesextract

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
)

// File outcome labels.
const (
	StatusSuccess           = "success"
	StatusParseFailure      = "parse_failure"
	StatusExtractionFailure = "extraction_failure"
)

// Metrics holds the extraction counters.
type Metrics struct {
	Files       *prometheus.CounterVec
	FieldsFound *prometheus.CounterVec
	Duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salesextract",
			Name:      "files_total",
			Help:      "Processed files by outcome.",
		}, []string{"status"}),
		FieldsFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salesextract",
			Name:      "fields_found_total",
			Help:      "Fields located in successfully processed files.",
		}, []string{"field"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salesextract",
			Name:      "file_duration_seconds",
			Help:      "Time spent decoding and scanning one file.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Files, m.FieldsFound, m.Duration)
	}
	return m
}

func (m *Metrics) observe(status string, seconds float64) {
	if m == nil {
		return
	}
	m.Files.WithLabelValues(status).Inc()
	m.Duration.Observe(seconds)
}

func (m *Metrics) recordFields(rec models.StoreRecord) {
	if m == nil {
		return
	}
	found := map[string]bool{
		"store_number":      rec.StoreNumber != "",
		"month":             rec.Month != "",
		"net_sales":         !rec.NetSalesWithDonations.IsZero(),
		"transaction_count": rec.TransactionCount != 0,
		"dairy_queen":       !rec.DairyQueen.IsZero(),
		"dq_food":           !rec.DQFood.IsZero(),
		"beverages":         !rec.Beverages.IsZero(),
		"breakfast":         !rec.Breakfast.IsZero(),
		"cakes":             !rec.Cakes.IsZero(),
		"oj_beverages":      !rec.OJBeverages.IsZero(),
	}
	for field, ok := range found {
		if ok {
			m.FieldsFound.WithLabelValues(field).Inc()
		}
	}
}
