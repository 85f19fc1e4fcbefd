// Package rating - Fee composition
package rating

import (
	"github.com/shopspring/decimal"

	"motor-premium/core/determinism"
	"motor-premium/core/tariff"
	"motor-premium/core/types"
)

// HullFee is the result of pricing hull damage cover
type HullFee struct {
	// Fee is the annual hull premium in VND
	Fee int64 `json:"fee"`

	// FloorApplied is set when the minimum fee replaced the computed one
	FloorApplied bool `json:"floor_applied"`

	// InsurableValue is the vehicle value plus any insured battery value
	InsurableValue int64 `json:"insurable_value"`

	// Rate is the percentage applied to InsurableValue
	Rate decimal.Decimal `json:"rate"`

	// BatterySurcharge is set when the battery surcharge was added to Rate
	BatterySurcharge bool `json:"battery_surcharge"`
}

// InsurableValue is the vehicle value, plus the battery value for a hybrid
// or electric vehicle that declares one
func InsurableValue(vehicleValue, batteryValue int64, engine types.EngineType) int64 {
	if engine.HasTractionBattery() && batteryValue > 0 {
		return vehicleValue + batteryValue
	}
	return vehicleValue
}

// BatterySurchargeApplies reports whether the battery surcharge is added
func BatterySurchargeApplies(batteryValue int64, engine types.EngineType) bool {
	return engine.HasTractionBattery() && batteryValue > 0
}

// FloorApplies reports whether the minimum hull fee rule covers the vehicle.
// It never covers a commercial category.
func FloorApplies(vehicleValue int64, usage types.UsageCategory) bool {
	return usage.IsPrivatePassenger() && vehicleValue < tariff.MinimumFeeValueCeiling
}

// ComposeHullFee prices hull cover at rate percent.
//
// The battery surcharge is added on top of rate whenever a traction battery
// is insured, even if rate already carries the extended tier surcharge.
// The fee is rounded half-up to whole VND, then raised to the minimum fee
// when the floor rule applies.
func ComposeHullFee(rate decimal.Decimal, vehicleValue, batteryValue int64, engine types.EngineType, usage types.UsageCategory) HullFee {
	out := HullFee{
		InsurableValue: InsurableValue(vehicleValue, batteryValue, engine),
		Rate:           rate,
	}
	if BatterySurchargeApplies(batteryValue, engine) {
		out.Rate = rate.Add(tariff.ExtendedSurcharge())
		out.BatterySurcharge = true
	}

	out.Fee = determinism.Percent(out.InsurableValue, out.Rate)

	if FloorApplies(vehicleValue, usage) && out.Fee < tariff.MinimumHullFee {
		out.Fee = tariff.MinimumHullFee
		out.FloorApplied = true
	}
	return out
}

// RenewalAdjustment is insurableValue * percent / 100, rounded half away
// from zero. Negative percentages are discounts.
func RenewalAdjustment(insurableValue int64, percent decimal.Decimal) int64 {
	if percent.IsZero() {
		return 0
	}
	return determinism.Percent(insurableValue, percent)
}

// ComposeTotal sums the hull fee, the selected optional fees and the
// renewal adjustment. A nil fee is a cover that was not selected.
func ComposeTotal(hullFee int64, liabilityFee, accidentFee *int64, renewalAdjustment int64) int64 {
	total := hullFee + renewalAdjustment
	if liabilityFee != nil {
		total += *liabilityFee
	}
	if accidentFee != nil {
		total += *accidentFee
	}
	return total
}

// Deductible returns the per-claim deductible of a category
func Deductible(usage types.UsageCategory) int64 {
	if usage.IsCommercial() {
		return tariff.DeductibleCommercial
	}
	return tariff.DeductiblePrivate
}
