// Package tariff holds the reference tables of the motor tariff: the hull
// rate matrix, the third-party liability fee table and the passenger
// accident price list. Tables are immutable once built; a Store swaps whole
// snapshots so in-flight quotes never observe a partial update.
package tariff

import "github.com/shopspring/decimal"

var extendedSurcharge = decimal.RequireFromString("0.10")

// ExtendedSurcharge is added, in percentage points, to the premium tier
// rate to price the extended tier. The same amount is added again when a
// traction battery is insured with the hull.
func ExtendedSurcharge() decimal.Decimal {
	return extendedSurcharge
}

// Minimum hull fee rule for private passenger cars valued under 500M VND
const (
	MinimumHullFee         int64 = 5_500_000
	MinimumFeeValueCeiling int64 = 500_000_000
)

// Deductibles per claim in VND
const (
	DeductiblePrivate    int64 = 500_000
	DeductibleCommercial int64 = 1_000_000
)

// Valid hull rate range in percent: (0, 10]
var (
	minHullRateExclusive = decimal.Zero
	maxHullRate          = decimal.NewFromInt(10)
)
