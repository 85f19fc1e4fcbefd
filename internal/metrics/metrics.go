// Package metrics records quote activity in Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"motor-premium/core/types"
)

// Config controls metric registration
type Config struct {
	Enabled   bool   `json:"enabled" koanf:"enabled"`
	Namespace string `json:"namespace" koanf:"namespace"`
}

// Recorder receives quote outcomes
type Recorder interface {
	RecordQuote(q types.PremiumQuote)
	RecordRejection(reason string)
}

// NopRecorder discards everything
type NopRecorder struct{}

// RecordQuote implements Recorder
func (NopRecorder) RecordQuote(types.PremiumQuote) {}

// RecordRejection implements Recorder
func (NopRecorder) RecordRejection(string) {}

// PromRecorder records quotes in Prometheus metrics
type PromRecorder struct {
	quotes     *prometheus.CounterVec
	floors     prometheus.Counter
	rejections *prometheus.CounterVec
	totals     *prometheus.HistogramVec
}

// NewPromRecorder registers quote metrics on reg. If reg is nil, the
// default registerer is used. Collectors already registered are reused.
func NewPromRecorder(reg prometheus.Registerer, namespace string) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Total number of premium quotes computed",
	}, []string{"usage", "rate_source"})
	floors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_floor_applied_total",
		Help:      "Quotes whose hull fee was raised to the minimum fee",
	})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_rejections_total",
		Help:      "Quote requests rejected, by reason",
	}, []string{"reason"})
	totals := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_grand_total_vnd",
		Help:      "Grand total of computed quotes in VND",
		Buckets:   prometheus.ExponentialBuckets(1_000_000, 2, 12),
	}, []string{"usage"})

	var err error
	if quotes, err = register(reg, quotes); err != nil {
		return nil, err
	}
	if floors, err = register(reg, floors); err != nil {
		return nil, err
	}
	if rejections, err = register(reg, rejections); err != nil {
		return nil, err
	}
	if totals, err = register(reg, totals); err != nil {
		return nil, err
	}
	return &PromRecorder{quotes: quotes, floors: floors, rejections: rejections, totals: totals}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(C), nil
		}
		return c, err
	}
	return c, nil
}

// RecordQuote implements Recorder
func (r *PromRecorder) RecordQuote(q types.PremiumQuote) {
	source := "tariff"
	if q.Rate.IsCustom {
		source = "custom"
	}
	r.quotes.WithLabelValues(q.Usage.String(), source).Inc()
	if q.FloorApplied {
		r.floors.Inc()
	}
	r.totals.WithLabelValues(q.Usage.String()).Observe(float64(q.GrandTotal))
}

// RecordRejection implements Recorder
func (r *PromRecorder) RecordRejection(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	r.rejections.WithLabelValues(reason).Inc()
}
