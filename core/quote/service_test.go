package quote

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"motor-premium/core/tariff"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
	"motor-premium/internal/metrics"
)

var issueTime = time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)

func sequentialIDs() func() uuid.UUID {
	var n atomic.Uint32
	return func() uuid.UUID {
		var id uuid.UUID
		v := n.Add(1)
		id[12], id[13], id[14], id[15] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
		return id
	}
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return issueTime }),
		WithIDs(sequentialIDs()),
	}
	return NewService(tariff.NewStore(tariff.MustDefaultSnapshot()), append(base, opts...)...)
}

func carRequest() Request {
	return Request{
		Value:            300_000_000,
		RegistrationDate: "10/01/2024",
		Seats:            5,
		Usage:            "private_passenger",
		Tier:             "basic",
		Liability:        true,
	}
}

func TestRequestInputs(t *testing.T) {
	req := carRequest()
	req.Engine = "Electric"
	req.BatteryValue = 50_000_000
	req.Tier = "Premium"
	req.CustomRate = "1.25"
	req.RenewalPercent = "-2.5"
	req.AccidentPackage = " nntx-10m "

	profile, sel, err := req.Inputs()
	require.NoError(t, err)
	assert.Equal(t, types.EngineElectric, profile.Engine)
	require.NotNil(t, profile.RegistrationDate)
	assert.Equal(t, time.January, profile.RegistrationDate.Month())
	assert.Equal(t, types.TierPremium, sel.Tier)
	require.NotNil(t, sel.CustomRate)
	assert.Equal(t, "1.25", sel.CustomRate.String())
	assert.Equal(t, "-2.5", sel.RenewalPercent.String())
	assert.Equal(t, "nntx-10m", sel.AccidentPackage)
}

func TestRequestInputsDefaults(t *testing.T) {
	profile, sel, err := Request{Value: 1, ManufactureYear: 2020, Usage: "Rental_Taxi"}.Inputs()
	require.NoError(t, err)
	assert.Equal(t, types.TierBasic, sel.Tier)
	assert.Equal(t, types.EngineCombustion, profile.Engine)
	assert.Equal(t, types.UsageRentalTaxi, profile.Usage)
	assert.Nil(t, sel.CustomRate)
	assert.True(t, sel.RenewalPercent.IsZero())

	profile, _, err = Request{Value: 1, ManufactureYear: 2020, Usage: "airship"}.Inputs()
	require.NoError(t, err)
	assert.Equal(t, types.UsageUnknown, profile.Usage)
}

func TestRequestInputsRejectsMalformedFields(t *testing.T) {
	cases := map[string]func(r *Request){
		"registration_date": func(r *Request) { r.RegistrationDate = "2024/13/45" },
		"engine":            func(r *Request) { r.Engine = "steam" },
		"tier":              func(r *Request) { r.Tier = "platinum" },
		"custom_rate":       func(r *Request) { r.CustomRate = "cheap" },
		"renewal_percent":   func(r *Request) { r.RenewalPercent = "5%" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			req := carRequest()
			mutate(&req)
			_, _, err := req.Inputs()
			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, field, e.Field)
		})
	}
}

func TestQuoteRequest(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.QuoteRequest(context.Background(), carRequest())
	require.NoError(t, err)

	assert.Equal(t, "00000000-0000-0000-0000-000000000001", rec.ID.String())
	assert.Equal(t, issueTime, rec.IssuedAt)
	assert.Equal(t, string(tariff.MustDefaultSnapshot().ID), rec.SnapshotID)

	q := rec.Quote
	assert.Equal(t, int64(5_500_000), q.HullFee)
	assert.True(t, q.FloorApplied)
	assert.Equal(t, int64(437_000), q.LiabilityFee)
	assert.Equal(t, int64(5_937_000), q.GrandTotal)
}

func TestQuoteUsesCurrentSnapshot(t *testing.T) {
	store := tariff.NewStore(tariff.MustDefaultSnapshot())
	svc := NewService(store, WithClock(func() time.Time { return issueTime }))

	before, err := svc.QuoteRequest(context.Background(), carRequest())
	require.NoError(t, err)

	tables := tariff.Default()
	tables.Liability[types.LiabilityPrivateUnder6] = 480_700
	next, err := tariff.NewSnapshot(tables, "test", issueTime)
	require.NoError(t, err)
	store.Swap(next)

	after, err := svc.QuoteRequest(context.Background(), carRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(437_000), before.Quote.LiabilityFee)
	assert.Equal(t, int64(480_700), after.Quote.LiabilityFee)
	assert.Equal(t, string(next.ID), after.SnapshotID)
}

func TestQuoteIsIdempotent(t *testing.T) {
	svc := newTestService(t, WithIDs(func() uuid.UUID { return uuid.Nil }))

	a, err := svc.QuoteRequest(context.Background(), carRequest())
	require.NoError(t, err)
	b, err := svc.QuoteRequest(context.Background(), carRequest())
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestQuoteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestService(t).QuoteRequest(ctx, carRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchIsolatesFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPromRecorder(reg, "test")
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	svc := newTestService(t, WithRecorder(rec), WithLogger(zap.New(core)))

	badValue := carRequest()
	badValue.Value = -5
	badTier := carRequest()
	badTier.ManufactureYear = 2010
	badTier.RegistrationDate = ""
	badTier.Tier = "premium"
	custom := carRequest()
	custom.Value = 1_200_000_000
	custom.CustomRate = "0.9"
	custom.Liability = false

	reqs := []Request{carRequest(), badValue, custom, badTier}
	results, err := svc.Batch(context.Background(), reqs, 3)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	require.NoError(t, results[0].Err)
	assert.Equal(t, int64(5_937_000), results[0].Record.Quote.GrandTotal)

	assert.True(t, errors.IsValidation(results[1].Err))
	assert.Nil(t, results[1].Record)

	require.NoError(t, results[2].Err)
	assert.True(t, results[2].Record.Quote.Rate.IsCustom)
	assert.Equal(t, int64(10_800_000), results[2].Record.Quote.GrandTotal)

	var e *errors.Error
	require.ErrorAs(t, results[3].Err, &e)
	assert.Equal(t, "tier", e.Field)

	expected := `
# HELP test_quote_rejections_total Quote requests rejected, by reason
# TYPE test_quote_rejections_total counter
test_quote_rejections_total{reason="tier"} 1
test_quote_rejections_total{reason="value"} 1
# HELP test_quotes_total Total number of premium quotes computed
# TYPE test_quotes_total counter
test_quotes_total{rate_source="custom",usage="private_passenger"} 1
test_quotes_total{rate_source="tariff",usage="private_passenger"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_quote_rejections_total", "test_quotes_total"))

	assert.Equal(t, 2, logs.FilterMessage("quote rejected").Len())
}

func TestBatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := newTestService(t).Batch(ctx, []Request{carRequest(), carRequest()}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 2)
}

func TestBatchEmpty(t *testing.T) {
	results, err := newTestService(t).Batch(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
