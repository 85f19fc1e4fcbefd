package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-premium/core/tariff"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

func TestLookupRatesPrivatePassenger(t *testing.T) {
	band := types.ValueUnder500M
	rates := LookupRates(tariff.DefaultHull(), types.UsagePrivatePassenger, types.AgeUnder3, &band)

	want := []float64{1.50, 1.60, 1.70, 1.80, 1.90}
	require.Len(t, rates, types.TierCount)
	for i, w := range want {
		assert.True(t, rates[i].Equal(types.RateOf(w)), "tier %d: %s", i, rates[i])
	}
}

func TestLookupRatesOldVehicleHasNoPremiumOrExtended(t *testing.T) {
	band := types.ValueOver1B
	rates := LookupRates(tariff.DefaultHull(), types.UsagePrivatePassenger, types.AgeOver10, &band)

	assert.True(t, rates[types.TierAdvanced].IsPresent())
	assert.False(t, rates[types.TierPremium].IsPresent())
	assert.False(t, rates[types.TierExtended].IsPresent())
}

func TestLookupRatesFlatSchedules(t *testing.T) {
	rates := LookupRates(tariff.DefaultHull(), types.UsageDumpTrailer, types.Age3To6, nil)
	assert.True(t, rates[types.TierBasic].Equal(types.RateOf(2.70)))
	assert.False(t, rates[types.TierPremium].IsPresent())

	rates = LookupRates(tariff.DefaultHull(), types.UsageCommercialCargo, types.AgeUnder3, nil)
	assert.True(t, rates[types.TierExtended].Equal(types.RateOf(2.25)))
}

func TestLookupRatesAbsentNotZero(t *testing.T) {
	hull := tariff.DefaultHull()

	for _, rates := range []types.TierRates{
		LookupRates(hull, types.UsageUnknown, types.AgeUnder3, nil),
		LookupRates(hull, types.UsageCategory("hovercraft"), types.Age3To6, nil),
		// banded schedule without a value band
		LookupRates(hull, types.UsagePrivatePassenger, types.AgeUnder3, nil),
	} {
		for i, r := range rates {
			assert.False(t, r.IsPresent(), "tier %d", i)
		}
	}
}

func TestApplyOverride(t *testing.T) {
	custom, err := NewCustomRate(decimal.RequireFromString("0.9"))
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, custom.Kind())

	eff, err := ApplyOverride(types.RateOf(1.2), &custom)
	require.NoError(t, err)
	assert.True(t, eff.IsCustom)
	assert.True(t, eff.Rate.Equal(decimal.RequireFromString("0.9")))

	eff, err = ApplyOverride(types.RateOf(1.2), nil)
	require.NoError(t, err)
	assert.False(t, eff.IsCustom)
	assert.True(t, eff.Rate.Equal(decimal.RequireFromString("1.2")))

	eff, err = ApplyOverride(types.NoRate(), &custom)
	require.NoError(t, err)
	assert.True(t, eff.IsCustom)

	_, err = ApplyOverride(types.NoRate(), nil)
	assert.True(t, IsTierUnavailable(err))
	assert.True(t, errors.IsValidation(err))

	tariffSource := TariffRate(decimal.NewFromInt(2))
	_, err = ApplyOverride(types.RateOf(1.2), &tariffSource)
	assert.True(t, errors.IsValidation(err))
}

func TestTierUnavailableErrorsAreNotShared(t *testing.T) {
	_, first := ApplyOverride(types.NoRate(), nil)
	_, second := ApplyOverride(types.NoRate(), nil)

	var a, b *errors.Error
	require.ErrorAs(t, first, &a)
	require.ErrorAs(t, second, &b)
	assert.NotSame(t, a, b)

	a.WithContext("tier", "premium")
	assert.Nil(t, b.Context)
	assert.Equal(t, "tier", b.Field)
	assert.True(t, IsTierUnavailable(second))
}

func TestNewCustomRateBounds(t *testing.T) {
	accepted := []string{"0.11", "1", "9.99", "10"}
	for _, s := range accepted {
		_, err := NewCustomRate(decimal.RequireFromString(s))
		assert.NoError(t, err, s)
	}
	rejected := []string{"-0.5", "0", "0.1", "10.001", "25"}
	for _, s := range rejected {
		_, err := NewCustomRate(decimal.RequireFromString(s))
		assert.True(t, errors.IsValidation(err), s)
	}
}
