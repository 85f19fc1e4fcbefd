// Package rating turns a classified vehicle into premiums: it resolves the
// tier rates from the hull matrix, applies agent overrides, composes the hull
// fee and aggregates the itemized quote. Everything here is a pure function
// of its inputs and the tariff tables.
package rating

import (
	"motor-premium/core/tariff"
	"motor-premium/core/types"
)

// LookupRates returns the rates of all five tiers. Tiers 0..3 come from the
// hull table; tier 4 is tier 3 plus the extended surcharge and is absent
// whenever tier 3 is. Unknown categories and missing rows yield absent
// rates, never zeros.
func LookupRates(hull tariff.HullTable, usage types.UsageCategory, age types.AgeBucket, value *types.ValueBucket) types.TierRates {
	var rates types.TierRates

	schedule, ok := hull[usage]
	if !ok {
		return rates
	}
	row, ok := schedule.Row(age, value)
	if !ok {
		return rates
	}

	copy(rates[:types.BaseTierCount], row[:])
	rates[types.TierExtended] = row[types.TierPremium].Add(tariff.ExtendedSurcharge())
	return rates
}
