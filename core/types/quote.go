// Package types - Quote output
package types

import "github.com/shopspring/decimal"

// Classification holds the tariff lookup keys derived from a profile
type Classification struct {
	// AgeYears is the vehicle age in whole years
	AgeYears int `json:"age_years"`

	// Age is the age band
	Age AgeBucket `json:"age_bucket"`

	// Value is the value band, set for private passenger cars only
	Value *ValueBucket `json:"value_bucket,omitempty"`

	// Liability is the liability fee key
	Liability LiabilityCategory `json:"liability_category"`
}

// PremiumQuote is the itemized premium for one vehicle. It is built once per
// request and never mutated afterwards.
type PremiumQuote struct {
	Usage          UsageCategory  `json:"usage"`
	Engine         EngineType     `json:"engine"`
	Classification Classification `json:"classification"`

	// TierRates are the tariff rates of tiers 0..4
	TierRates TierRates `json:"tier_rates"`

	// SurchargedTierRates add the battery surcharge when it applies and
	// equal TierRates otherwise
	SurchargedTierRates TierRates `json:"surcharged_tier_rates"`

	Tier PackageTier `json:"tier"`

	// Rate is the rate the hull fee used before the battery surcharge
	Rate EffectiveRate `json:"rate"`

	// HullRate is the rate applied to the insured value
	HullRate decimal.Decimal `json:"hull_rate"`

	// InsurableValue is the vehicle value plus any insured battery value
	InsurableValue int64 `json:"insurable_value"`

	HullFee      int64 `json:"hull_fee"`
	FloorApplied bool  `json:"floor_applied"`

	// LiabilityCovered is false when liability was not selected or the
	// vehicle has no liability category
	LiabilityCovered bool  `json:"liability_covered"`
	LiabilityFee     int64 `json:"liability_fee"`

	AccidentPackage string `json:"accident_package,omitempty"`
	AccidentFee     int64  `json:"accident_fee"`

	RenewalPercent    decimal.Decimal `json:"renewal_percent"`
	RenewalAdjustment int64           `json:"renewal_adjustment"`

	Deductible int64 `json:"deductible"`
	GrandTotal int64 `json:"grand_total"`
}
