// Package types - Classification keys
package types

import "fmt"

// AgeBucket is the vehicle age band used to index a tariff row
type AgeBucket int

const (
	AgeUnder3 AgeBucket = iota
	Age3To6
	Age6To10
	// AgeOver10 covers every vehicle aged 10 full years or more
	AgeOver10
)

// AgeBucketCount is the number of age bands in every tariff schedule
const AgeBucketCount = 4

// AgeBucketFor returns the band for an age in whole years
func AgeBucketFor(years int) AgeBucket {
	switch {
	case years < 3:
		return AgeUnder3
	case years < 6:
		return Age3To6
	case years < 10:
		return Age6To10
	default:
		return AgeOver10
	}
}

var ageBucketNames = [AgeBucketCount]string{"under_3", "3_to_6", "6_to_10", "over_10"}

// String returns the tariff key of the band
func (a AgeBucket) String() string {
	if a < 0 || int(a) >= AgeBucketCount {
		return fmt.Sprintf("age_bucket(%d)", int(a))
	}
	return ageBucketNames[a]
}

// ParseAgeBucket maps a tariff key back to its band
func ParseAgeBucket(s string) (AgeBucket, bool) {
	for i, name := range ageBucketNames {
		if name == s {
			return AgeBucket(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (a AgeBucket) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ValueBucket is the declared-value band of a private passenger car
type ValueBucket int

const (
	ValueUnder500M ValueBucket = iota
	Value500MTo700M
	Value700MTo1B
	ValueOver1B
)

// ValueBucketCount is the number of value bands
const ValueBucketCount = 4

// Band thresholds in VND. Each threshold belongs to the band above it.
const (
	ValueThreshold500M int64 = 500_000_000
	ValueThreshold700M int64 = 700_000_000
	ValueThreshold1B   int64 = 1_000_000_000
)

// ValueBucketFor returns the band for a declared value
func ValueBucketFor(value int64) ValueBucket {
	switch {
	case value < ValueThreshold500M:
		return ValueUnder500M
	case value < ValueThreshold700M:
		return Value500MTo700M
	case value < ValueThreshold1B:
		return Value700MTo1B
	default:
		return ValueOver1B
	}
}

var valueBucketNames = [ValueBucketCount]string{"under_500m", "500m_to_700m", "700m_to_1b", "over_1b"}

// String returns the tariff key of the band
func (v ValueBucket) String() string {
	if v < 0 || int(v) >= ValueBucketCount {
		return fmt.Sprintf("value_bucket(%d)", int(v))
	}
	return valueBucketNames[v]
}

// ParseValueBucket maps a tariff key back to its band
func ParseValueBucket(s string) (ValueBucket, bool) {
	for i, name := range valueBucketNames {
		if name == s {
			return ValueBucket(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (v ValueBucket) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// LiabilityCategory keys the fixed third-party liability (TNDS) fee
type LiabilityCategory string

const (
	LiabilityPrivateUnder6  LiabilityCategory = "passenger_private_under_6"
	LiabilityPrivate6To11   LiabilityCategory = "passenger_private_6_11"
	LiabilityPrivate12To24  LiabilityCategory = "passenger_private_12_24"
	LiabilityPrivateOver24  LiabilityCategory = "passenger_private_over_24"
	LiabilityPickupPrivate  LiabilityCategory = "pickup_khong_kd"
	LiabilityPickupBusiness LiabilityCategory = "pickup_kd"

	LiabilityCommercialUnder6 LiabilityCategory = "passenger_commercial_under_6"
	LiabilityCommercial6      LiabilityCategory = "passenger_commercial_6"
	LiabilityCommercial7      LiabilityCategory = "passenger_commercial_7"
	LiabilityCommercial8      LiabilityCategory = "passenger_commercial_8"
	LiabilityCommercial9      LiabilityCategory = "passenger_commercial_9"
	LiabilityCommercial10     LiabilityCategory = "passenger_commercial_10"
	LiabilityCommercial11     LiabilityCategory = "passenger_commercial_11"
	LiabilityCommercial12     LiabilityCategory = "passenger_commercial_12"
	LiabilityCommercial13     LiabilityCategory = "passenger_commercial_13"
	LiabilityCommercial14     LiabilityCategory = "passenger_commercial_14"
	LiabilityCommercial15     LiabilityCategory = "passenger_commercial_15"
	LiabilityCommercial16     LiabilityCategory = "passenger_commercial_16"
	LiabilityCommercial17To24 LiabilityCategory = "passenger_commercial_17_24"
	LiabilityCommercialOver24 LiabilityCategory = "passenger_commercial_over_24"

	LiabilityCargoUnder3T LiabilityCategory = "cargo_under_3t"
	LiabilityCargo3To8T   LiabilityCategory = "cargo_3_8t"
	LiabilityCargo8To15T  LiabilityCategory = "cargo_8_15t"
	LiabilityCargoOver15T LiabilityCategory = "cargo_over_15t"

	// LiabilityUndefined is assigned to vehicles the fee table does not cover
	LiabilityUndefined LiabilityCategory = "undefined"
)

// LiabilityCommercialBySeats indexes the per-seat commercial bands, 6..16 seats
var LiabilityCommercialBySeats = map[int]LiabilityCategory{
	6:  LiabilityCommercial6,
	7:  LiabilityCommercial7,
	8:  LiabilityCommercial8,
	9:  LiabilityCommercial9,
	10: LiabilityCommercial10,
	11: LiabilityCommercial11,
	12: LiabilityCommercial12,
	13: LiabilityCommercial13,
	14: LiabilityCommercial14,
	15: LiabilityCommercial15,
	16: LiabilityCommercial16,
}

// String returns the string representation
func (l LiabilityCategory) String() string {
	return string(l)
}

// LiabilityCategories lists every category the fee table must price
var LiabilityCategories = []LiabilityCategory{
	LiabilityPrivateUnder6, LiabilityPrivate6To11, LiabilityPrivate12To24, LiabilityPrivateOver24,
	LiabilityPickupPrivate, LiabilityPickupBusiness,
	LiabilityCommercialUnder6,
	LiabilityCommercial6, LiabilityCommercial7, LiabilityCommercial8, LiabilityCommercial9,
	LiabilityCommercial10, LiabilityCommercial11, LiabilityCommercial12, LiabilityCommercial13,
	LiabilityCommercial14, LiabilityCommercial15, LiabilityCommercial16,
	LiabilityCommercial17To24, LiabilityCommercialOver24,
	LiabilityCargoUnder3T, LiabilityCargo3To8T, LiabilityCargo8To15T, LiabilityCargoOver15T,
}

// IsDefined reports whether the category is one of the tariff's keys
func (l LiabilityCategory) IsDefined() bool {
	for _, c := range LiabilityCategories {
		if c == l {
			return true
		}
	}
	return false
}
