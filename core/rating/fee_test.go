package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"motor-premium/core/tariff"
	"motor-premium/core/types"
)

func TestComposeHullFeeFloor(t *testing.T) {
	rate := decimal.NewFromInt(1)

	private := ComposeHullFee(rate, 300_000_000, 0, types.EngineCombustion, types.UsagePrivatePassenger)
	assert.Equal(t, int64(5_500_000), private.Fee)
	assert.True(t, private.FloorApplied)

	commercial := ComposeHullFee(rate, 300_000_000, 0, types.EngineCombustion, types.UsageRentalTaxi)
	assert.Equal(t, int64(3_000_000), commercial.Fee)
	assert.False(t, commercial.FloorApplied)

	// the floor covers values strictly below 500M only
	atCeiling := ComposeHullFee(rate, tariff.MinimumFeeValueCeiling, 0, types.EngineCombustion, types.UsagePrivatePassenger)
	assert.Equal(t, int64(5_000_000), atCeiling.Fee)
	assert.False(t, atCeiling.FloorApplied)
}

func TestComposeHullFeeFloorUsesVehicleValue(t *testing.T) {
	// 450M car with a 100M battery: insured 550M, floor still considered
	fee := ComposeHullFee(decimal.RequireFromString("0.8"), 450_000_000, 100_000_000, types.EngineElectric, types.UsagePrivatePassenger)
	assert.Equal(t, int64(550_000_000), fee.InsurableValue)
	assert.Equal(t, int64(5_500_000), fee.Fee)
	assert.True(t, fee.FloorApplied)
}

func TestComposeHullFeeRoundsHalfUp(t *testing.T) {
	// 1,001 * 50% = 500.5
	fee := ComposeHullFee(decimal.NewFromInt(50), 1_001, 0, types.EngineCombustion, types.UsageRentalTaxi)
	assert.Equal(t, int64(501), fee.Fee)

	// 333,333 * 1.5% = 4,999.995
	fee = ComposeHullFee(decimal.RequireFromString("1.5"), 333_333, 0, types.EngineCombustion, types.UsageRentalTaxi)
	assert.Equal(t, int64(5_000), fee.Fee)

	// 1,234,567 * 1.1% = 13,580.237
	fee = ComposeHullFee(decimal.RequireFromString("1.1"), 1_234_567, 0, types.EngineCombustion, types.UsageRentalTaxi)
	assert.Equal(t, int64(13_580), fee.Fee)
}

func TestRenewalAdjustment(t *testing.T) {
	assert.Zero(t, RenewalAdjustment(700_000_000, decimal.Zero))
	assert.Equal(t, int64(-35_000_000), RenewalAdjustment(700_000_000, decimal.NewFromInt(-5)))
	assert.Equal(t, int64(14_000_000), RenewalAdjustment(700_000_000, decimal.NewFromInt(2)))
	// halves round away from zero in both directions
	assert.Equal(t, int64(501), RenewalAdjustment(1_001, decimal.NewFromInt(50)))
	assert.Equal(t, int64(-501), RenewalAdjustment(1_001, decimal.NewFromInt(-50)))
}

func TestComposeTotal(t *testing.T) {
	liability := int64(437_000)
	accident := int64(50_000)

	assert.Equal(t, int64(5_500_000), ComposeTotal(5_500_000, nil, nil, 0))
	assert.Equal(t, int64(5_937_000), ComposeTotal(5_500_000, &liability, nil, 0))
	assert.Equal(t, int64(5_987_000), ComposeTotal(5_500_000, &liability, &accident, 0))
	assert.Equal(t, int64(5_887_000), ComposeTotal(5_500_000, &liability, &accident, -100_000))
}

func TestDeductible(t *testing.T) {
	assert.Equal(t, int64(500_000), Deductible(types.UsagePrivatePickup))
	assert.Equal(t, int64(1_000_000), Deductible(types.UsageDumpTrailer))
}
