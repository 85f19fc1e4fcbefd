// Package tariff - Third-party liability fees
package tariff

import "motor-premium/core/types"

// LiabilityTable maps a liability category to its fixed annual fee in VND
// (before VAT)
type LiabilityTable map[types.LiabilityCategory]int64

// Fee returns the fee of a category. Undefined categories have no fee.
func (t LiabilityTable) Fee(category types.LiabilityCategory) (int64, bool) {
	if !category.IsDefined() {
		return 0, false
	}
	fee, ok := t[category]
	return fee, ok
}

// DefaultLiability returns the built-in compulsory liability schedule
func DefaultLiability() LiabilityTable {
	return LiabilityTable{
		types.LiabilityPrivateUnder6:  437_000,
		types.LiabilityPrivate6To11:   794_000,
		types.LiabilityPrivate12To24:  1_270_000,
		types.LiabilityPrivateOver24:  1_825_000,
		types.LiabilityPickupPrivate:  437_000,
		types.LiabilityPickupBusiness: 933_000,

		types.LiabilityCommercialUnder6: 756_000,
		types.LiabilityCommercial6:      929_000,
		types.LiabilityCommercial7:      1_080_000,
		types.LiabilityCommercial8:      1_253_000,
		types.LiabilityCommercial9:      1_404_000,
		types.LiabilityCommercial10:     1_512_000,
		types.LiabilityCommercial11:     1_656_000,
		types.LiabilityCommercial12:     1_822_000,
		types.LiabilityCommercial13:     2_049_000,
		types.LiabilityCommercial14:     2_221_000,
		types.LiabilityCommercial15:     2_394_000,
		types.LiabilityCommercial16:     3_054_000,
		types.LiabilityCommercial17To24: 4_632_000,
		types.LiabilityCommercialOver24: 4_813_000,

		types.LiabilityCargoUnder3T: 853_000,
		types.LiabilityCargo3To8T:   1_660_000,
		types.LiabilityCargo8To15T:  2_746_000,
		types.LiabilityCargoOver15T: 3_200_000,
	}
}
