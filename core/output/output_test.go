package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-premium/core/quote"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

func sampleRecord() *quote.Record {
	band := types.ValueUnder500M
	rates := types.TierRates{types.RateOf(1.5), types.RateOf(1.6), types.RateOf(1.7), types.RateOf(1.8), types.RateOf(1.9)}
	return &quote.Record{
		ID:         uuid.MustParse("6f1c2a9e-0000-4000-8000-000000000001"),
		SnapshotID: "tariff-0123456789abcdef",
		Quote: types.PremiumQuote{
			Usage: types.UsagePrivatePassenger,
			Classification: types.Classification{
				AgeYears:  1,
				Age:       types.AgeUnder3,
				Value:     &band,
				Liability: types.LiabilityPrivateUnder6,
			},
			TierRates:           rates,
			SurchargedTierRates: rates,
			Tier:                types.TierBasic,
			Rate:                types.EffectiveRate{Rate: decimal.RequireFromString("1.5")},
			HullRate:            decimal.RequireFromString("1.5"),
			InsurableValue:      300_000_000,
			HullFee:             5_500_000,
			FloorApplied:        true,
			LiabilityCovered:    true,
			LiabilityFee:        437_000,
			Deductible:          500_000,
			GrandTotal:          5_937_000,
		},
	}
}

func TestNewFormatter(t *testing.T) {
	f, err := New("JSON", false)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f.Format())

	f, err = New("cli", true)
	require.NoError(t, err)
	assert.Equal(t, FormatCLI, f.Format())

	_, err = New("html", false)
	assert.True(t, errors.IsValidation(err))
}

func TestCLIRenderQuote(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CLIFormatter{NoColor: true}.RenderQuote(&buf, sampleRecord()))
	out := buf.String()

	assert.Contains(t, out, "6f1c2a9e-0000-4000-8000-000000000001")
	assert.Contains(t, out, "value band under_500m")
	assert.Contains(t, out, "Hull damage (minimum fee)")
	assert.Contains(t, out, "Third-party liability")
	assert.Contains(t, out, "GRAND TOTAL")
	assert.Contains(t, out, "* │ 0 basic")
	assert.NotContains(t, out, "With battery")
	assert.NotContains(t, out, "\033[")
}

func TestTierRatesTableShowsBatteryColumn(t *testing.T) {
	rec := sampleRecord()
	rates := rec.Quote.TierRates
	rates[types.TierPremium] = types.NoRate()
	rates[types.TierExtended] = types.NoRate()

	var buf bytes.Buffer
	TierRatesTable(rates, rates.Add(decimal.RequireFromString("0.1")), types.TierStandard).Render(&buf, true)
	out := buf.String()

	assert.Contains(t, out, "With battery")
	assert.Contains(t, out, "1.7%")
	assert.Contains(t, out, "BS01, BS02, BS03")
	assert.Contains(t, out, "-")
}

func TestRenderBatch(t *testing.T) {
	results := []quote.Result{
		{Index: 0, Record: sampleRecord()},
		{Index: 1, Err: errors.Validation("value", "must be positive, got %d", -1)},
	}

	var buf bytes.Buffer
	require.NoError(t, JSONFormatter{}.RenderBatch(&buf, results))
	var report struct {
		Items []struct {
			Error string `json:"error"`
		} `json:"items"`
		Quoted   int   `json:"quoted"`
		Rejected int   `json:"rejected"`
		Total    int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.Items, 2)
	assert.Empty(t, report.Items[0].Error)
	assert.Contains(t, report.Items[1].Error, "must be positive")
	assert.Equal(t, 1, report.Quoted)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, int64(5_937_000), report.Total)

	buf.Reset()
	require.NoError(t, CLIFormatter{NoColor: true}.RenderBatch(&buf, results))
	assert.Contains(t, buf.String(), "rejected")
	assert.Contains(t, buf.String(), "#1: [INPUT_ERROR] value: must be positive, got -1")
	assert.Contains(t, buf.String(), "1 quoted, 1 rejected")
}

func TestTableAlignment(t *testing.T) {
	table := NewTable("Item", "Amount").AlignRight(1)
	table.AddRow("hull", "5")
	table.AddRow("liability", "437000")

	var buf bytes.Buffer
	table.Render(&buf, true)
	assert.Equal(t, "Item      │ Amount\n──────────┼───────\nhull      │      5\nliability │ 437000\n", buf.String())
}

var ansi = regexp.MustCompile("\033\\[[0-9;]*m")

func TestTableAlignmentIgnoresColorCodes(t *testing.T) {
	build := func(p painter) *Table {
		table := NewTable("#", "Status", "Grand total").AlignRight(0, 2)
		table.AddRow("0", p.paint(green, "quoted"), "5937000")
		table.AddRow("1", p.paint(red, "rejected"), "")
		return table
	}

	var plain, colored bytes.Buffer
	build(painter(true)).Render(&plain, true)
	build(painter(false)).Render(&colored, false)

	assert.Contains(t, colored.String(), green)
	assert.Equal(t, plain.String(), ansi.ReplaceAllString(colored.String(), ""))
	assert.Equal(t, 8, visibleWidth(painter(false).paint(red, "rejected")))
}
