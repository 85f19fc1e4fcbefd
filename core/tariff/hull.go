// Package tariff - Hull damage rate matrix
package tariff

import (
	"encoding/json"

	"motor-premium/core/types"
)

// HullSchedule is the rate grid of one usage category. A banded schedule
// splits rows by declared value before age; a flat one keys on age only.
type HullSchedule struct {
	banded  bool
	byValue [types.ValueBucketCount][types.AgeBucketCount]types.RateRow
	flat    [types.AgeBucketCount]types.RateRow
}

// Flat builds a schedule keyed on age only
func Flat(rows [types.AgeBucketCount]types.RateRow) HullSchedule {
	return HullSchedule{flat: rows}
}

// Banded builds a schedule keyed on value band, then age
func Banded(rows [types.ValueBucketCount][types.AgeBucketCount]types.RateRow) HullSchedule {
	return HullSchedule{banded: true, byValue: rows}
}

// IsBanded reports whether the schedule needs a value band
func (s HullSchedule) IsBanded() bool {
	return s.banded
}

// Row returns the rate row for the keys. A banded schedule without a value
// band has no row.
func (s HullSchedule) Row(age types.AgeBucket, value *types.ValueBucket) (types.RateRow, bool) {
	if age < 0 || int(age) >= types.AgeBucketCount {
		return types.RateRow{}, false
	}
	if !s.banded {
		return s.flat[age], true
	}
	if value == nil || *value < 0 || int(*value) >= types.ValueBucketCount {
		return types.RateRow{}, false
	}
	return s.byValue[*value][age], true
}

// rows visits every rate row in the schedule
func (s HullSchedule) rows(fn func(types.RateRow)) {
	if s.banded {
		for _, band := range s.byValue {
			for _, row := range band {
				fn(row)
			}
		}
		return
	}
	for _, row := range s.flat {
		fn(row)
	}
}

type ageRowsJSON map[string]types.RateRow

func ageRows(rows [types.AgeBucketCount]types.RateRow) ageRowsJSON {
	out := make(ageRowsJSON, types.AgeBucketCount)
	for i, row := range rows {
		out[types.AgeBucket(i).String()] = row
	}
	return out
}

// MarshalJSON renders the schedule with tariff key names
func (s HullSchedule) MarshalJSON() ([]byte, error) {
	if !s.banded {
		return json.Marshal(struct {
			Ages ageRowsJSON `json:"ages"`
		}{ageRows(s.flat)})
	}
	bands := make(map[string]ageRowsJSON, types.ValueBucketCount)
	for i, rows := range s.byValue {
		bands[types.ValueBucket(i).String()] = ageRows(rows)
	}
	return json.Marshal(struct {
		ValueBands map[string]ageRowsJSON `json:"value_bands"`
	}{bands})
}

// HullTable maps each usage category to its schedule. A category missing
// from the table rates as all-absent.
type HullTable map[types.UsageCategory]HullSchedule

// DefaultHull returns the built-in hull rate matrix (percent of insured
// value per year, tiers basic..premium). Vehicles aged 10 years or more
// are never offered the premium tier; some heavy categories lose it earlier.
func DefaultHull() HullTable {
	r := types.Rates
	x := types.RatesNoPremium

	return HullTable{
		types.UsagePrivatePassenger: Banded([types.ValueBucketCount][types.AgeBucketCount]types.RateRow{
			types.ValueUnder500M: {
				r(1.50, 1.60, 1.70, 1.80),
				r(1.60, 1.70, 1.80, 1.90),
				r(1.75, 1.85, 1.95, 2.05),
				x(1.90, 2.00, 2.10),
			},
			types.Value500MTo700M: {
				r(1.40, 1.50, 1.60, 1.70),
				r(1.50, 1.60, 1.70, 1.80),
				r(1.65, 1.75, 1.85, 1.95),
				x(1.80, 1.90, 2.00),
			},
			types.Value700MTo1B: {
				r(1.30, 1.40, 1.50, 1.60),
				r(1.40, 1.50, 1.60, 1.70),
				r(1.55, 1.65, 1.75, 1.85),
				x(1.70, 1.80, 1.90),
			},
			types.ValueOver1B: {
				r(1.20, 1.30, 1.40, 1.50),
				r(1.30, 1.40, 1.50, 1.60),
				r(1.45, 1.55, 1.65, 1.75),
				x(1.60, 1.70, 1.80),
			},
		}),
		types.UsagePrivateCargo: Flat([types.AgeBucketCount]types.RateRow{
			r(1.55, 1.65, 1.75, 1.85),
			r(1.65, 1.75, 1.85, 1.95),
			r(1.80, 1.90, 2.00, 2.10),
			x(1.95, 2.05, 2.15),
		}),
		types.UsagePrivatePickup: Flat([types.AgeBucketCount]types.RateRow{
			r(1.50, 1.60, 1.70, 1.80),
			r(1.60, 1.70, 1.80, 1.90),
			r(1.75, 1.85, 1.95, 2.05),
			x(1.90, 2.00, 2.10),
		}),
		types.UsageCommercialCargo: Flat([types.AgeBucketCount]types.RateRow{
			r(1.85, 1.95, 2.05, 2.15),
			r(1.95, 2.05, 2.15, 2.25),
			r(2.10, 2.20, 2.30, 2.40),
			x(2.30, 2.40, 2.50),
		}),
		types.UsageTractor: Flat([types.AgeBucketCount]types.RateRow{
			r(2.20, 2.30, 2.40, 2.50),
			r(2.35, 2.45, 2.55, 2.65),
			x(2.55, 2.65, 2.75),
			x(2.80, 2.90, 3.00),
		}),
		types.UsageIntercityCoach: Flat([types.AgeBucketCount]types.RateRow{
			r(1.70, 1.80, 1.90, 2.00),
			r(1.80, 1.90, 2.00, 2.10),
			r(1.95, 2.05, 2.15, 2.25),
			x(2.15, 2.25, 2.35),
		}),
		types.UsageRideHailing: Flat([types.AgeBucketCount]types.RateRow{
			r(2.00, 2.10, 2.20, 2.30),
			r(2.15, 2.25, 2.35, 2.45),
			r(2.35, 2.45, 2.55, 2.65),
			x(2.60, 2.70, 2.80),
		}),
		types.UsageRentalTaxi: Flat([types.AgeBucketCount]types.RateRow{
			r(2.40, 2.50, 2.60, 2.70),
			r(2.55, 2.65, 2.75, 2.85),
			r(2.75, 2.85, 2.95, 3.05),
			x(3.00, 3.10, 3.20),
		}),
		types.UsageContractCoach: Flat([types.AgeBucketCount]types.RateRow{
			r(1.65, 1.75, 1.85, 1.95),
			r(1.75, 1.85, 1.95, 2.05),
			r(1.90, 2.00, 2.10, 2.20),
			x(2.10, 2.20, 2.30),
		}),
		types.UsagePublicBus: Flat([types.AgeBucketCount]types.RateRow{
			r(1.60, 1.70, 1.80, 1.90),
			r(1.70, 1.80, 1.90, 2.00),
			r(1.85, 1.95, 2.05, 2.15),
			x(2.05, 2.15, 2.25),
		}),
		types.UsageCommercialPickup: Flat([types.AgeBucketCount]types.RateRow{
			r(1.75, 1.85, 1.95, 2.05),
			r(1.85, 1.95, 2.05, 2.15),
			r(2.00, 2.10, 2.20, 2.30),
			x(2.20, 2.30, 2.40),
		}),
		types.UsageSpecialPurpose: Flat([types.AgeBucketCount]types.RateRow{
			r(1.45, 1.55, 1.65, 1.75),
			r(1.55, 1.65, 1.75, 1.85),
			x(1.70, 1.80, 1.90),
			x(1.90, 2.00, 2.10),
		}),
		types.UsageDumpTrailer: Flat([types.AgeBucketCount]types.RateRow{
			r(2.50, 2.60, 2.70, 2.80),
			x(2.70, 2.80, 2.90),
			x(2.95, 3.05, 3.15),
			x(3.25, 3.35, 3.45),
		}),
	}
}
