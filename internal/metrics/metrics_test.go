package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-premium/core/types"
)

func TestPromRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg, "mp")
	require.NoError(t, err)

	rec.RecordQuote(types.PremiumQuote{
		Usage:        types.UsagePrivatePassenger,
		FloorApplied: true,
		GrandTotal:   5_500_000,
	})
	rec.RecordQuote(types.PremiumQuote{
		Usage:      types.UsageTractor,
		Rate:       types.EffectiveRate{Rate: decimal.NewFromInt(2), IsCustom: true},
		GrandTotal: 40_000_000,
	})
	rec.RecordRejection("tier")
	rec.RecordRejection("")

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.quotes.WithLabelValues("private_passenger", "tariff")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.quotes.WithLabelValues("tractor", "custom")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.floors))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.rejections.WithLabelValues("tier")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.rejections.WithLabelValues("unknown")))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.totals))
}

func TestNewPromRecorderReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg, "mp")
	require.NoError(t, err)
	second, err := NewPromRecorder(reg, "mp")
	require.NoError(t, err)

	first.RecordRejection("value")
	second.RecordRejection("value")
	assert.Equal(t, 2.0, testutil.ToFloat64(first.rejections.WithLabelValues("value")))
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	r.RecordQuote(types.PremiumQuote{})
	r.RecordRejection("value")
}
