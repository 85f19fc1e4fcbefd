// Package tariff - Table bundle and validation
package tariff

import (
	"fmt"

	"motor-premium/core/determinism"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

// Tables bundles the reference tables a quote is rated against.
// Tables are treated as immutable after construction.
type Tables struct {
	Hull      HullTable         `json:"hull"`
	Liability LiabilityTable    `json:"liability"`
	Accident  AccidentPriceList `json:"accident"`
}

// Default returns the built-in tariff
func Default() Tables {
	return Tables{
		Hull:      DefaultHull(),
		Liability: DefaultLiability(),
		Accident:  DefaultAccidentPrices(),
	}
}

// Validate checks the tables are complete and in range: a hull schedule
// for every usage category, banded for private passenger cars only, every
// present rate in (0, 10], and a non-negative fee for every liability
// category
func (t Tables) Validate() error {
	for _, usage := range types.UsageCategories {
		schedule, ok := t.Hull[usage]
		if !ok {
			return errors.Validation("hull", "no schedule for %s", usage)
		}
		if schedule.IsBanded() != usage.IsPrivatePassenger() {
			return errors.Validation("hull", "%s schedule has the wrong value banding", usage)
		}
	}
	for _, category := range types.LiabilityCategories {
		if _, ok := t.Liability[category]; !ok {
			return errors.Validation("liability", "no fee for %s", category)
		}
	}

	for _, usage := range determinism.SortedKeys(t.Hull) {
		if !usage.IsValid() {
			return errors.Validation("hull", "unknown usage category %q", usage)
		}
		var bad error
		t.Hull[usage].rows(func(row types.RateRow) {
			for tier, rate := range row {
				v, ok := rate.Get()
				if !ok || bad != nil {
					continue
				}
				if v.LessThanOrEqual(minHullRateExclusive) || v.GreaterThan(maxHullRate) {
					bad = errors.Validation("hull", "%s tier %d rate %s outside (0, 10]", usage, tier, v)
				}
			}
		})
		if bad != nil {
			return bad
		}
	}
	for _, category := range determinism.SortedKeys(t.Liability) {
		if !category.IsDefined() {
			return errors.Validation("liability", "fee given for undefined category %q", category)
		}
		if t.Liability[category] < 0 {
			return errors.Validation("liability", "%s fee is negative", category)
		}
	}
	for _, id := range determinism.SortedKeys(t.Accident) {
		pkg := t.Accident[id]
		if pkg.PrivatePerSeat < 0 || pkg.CommercialPerSeat < 0 || pkg.SumInsuredPerSeat < 0 {
			return errors.Validation("accident", "package %s has a negative amount", id)
		}
	}
	return nil
}

// Summary is a short human readable description of the table sizes
func (t Tables) Summary() string {
	return fmt.Sprintf("%d hull schedules, %d liability fees, %d accident packages",
		len(t.Hull), len(t.Liability), len(t.Accident))
}
