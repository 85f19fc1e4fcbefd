// Package types - Tariff rates and package tiers
package types

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// OptionalRate is a hull rate in percent that may be absent.
// An absent rate means the tier is not offered for the vehicle; it is never
// the same thing as a zero rate.
type OptionalRate struct {
	value   decimal.Decimal
	present bool
}

// SomeRate returns a present rate
func SomeRate(rate decimal.Decimal) OptionalRate {
	return OptionalRate{value: rate, present: true}
}

// RateOf returns a present rate from a tariff literal such as 1.45
func RateOf(percent float64) OptionalRate {
	return SomeRate(decimal.NewFromFloat(percent))
}

// NoRate returns an absent rate
func NoRate() OptionalRate {
	return OptionalRate{}
}

// Get returns the rate and whether it is present
func (r OptionalRate) Get() (decimal.Decimal, bool) {
	return r.value, r.present
}

// IsPresent reports whether the tier is offered
func (r OptionalRate) IsPresent() bool {
	return r.present
}

// Add returns r plus delta; an absent rate stays absent
func (r OptionalRate) Add(delta decimal.Decimal) OptionalRate {
	if !r.present {
		return r
	}
	return SomeRate(r.value.Add(delta))
}

// Equal compares presence and value
func (r OptionalRate) Equal(other OptionalRate) bool {
	if r.present != other.present {
		return false
	}
	return !r.present || r.value.Equal(other.value)
}

// String renders the rate as a percentage, or "-" when absent
func (r OptionalRate) String() string {
	if !r.present {
		return "-"
	}
	return r.value.String() + "%"
}

// MarshalJSON renders a present rate as a JSON number and an absent one as null
func (r OptionalRate) MarshalJSON() ([]byte, error) {
	if !r.present {
		return []byte("null"), nil
	}
	return []byte(r.value.String()), nil
}

// UnmarshalJSON accepts null, a number or a quoted number
func (r *OptionalRate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = NoRate()
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid rate %s: %w", data, err)
	}
	*r = SomeRate(d)
	return nil
}

// BaseTierCount is the number of tiers stored in the tariff
const BaseTierCount = 4

// TierCount is the number of tiers offered, including the derived extended tier
const TierCount = 5

// RateRow is one tariff cell: the base rates of tiers 0..3
type RateRow [BaseTierCount]OptionalRate

// TierRates holds the rates of all five tiers
type TierRates [TierCount]OptionalRate

// Row builds a rate row from tariff literals; nil marks an absent tier
func Row(rates ...*float64) RateRow {
	var row RateRow
	for i := 0; i < BaseTierCount && i < len(rates); i++ {
		if rates[i] != nil {
			row[i] = RateOf(*rates[i])
		}
	}
	return row
}

// Rates builds a fully present rate row
func Rates(r0, r1, r2, r3 float64) RateRow {
	return RateRow{RateOf(r0), RateOf(r1), RateOf(r2), RateOf(r3)}
}

// RatesNoPremium builds a row whose premium tier (index 3) is not offered
func RatesNoPremium(r0, r1, r2 float64) RateRow {
	return RateRow{RateOf(r0), RateOf(r1), RateOf(r2), NoRate()}
}

// Add returns every present rate plus delta
func (t TierRates) Add(delta decimal.Decimal) TierRates {
	var out TierRates
	for i, r := range t {
		out[i] = r.Add(delta)
	}
	return out
}

// PackageTier selects one of the five hull coverage bundles
type PackageTier int

const (
	TierBasic PackageTier = iota
	TierStandard
	TierAdvanced
	TierPremium
	// TierExtended is priced as TierPremium plus a fixed surcharge
	TierExtended
)

var tierNames = [TierCount]string{"basic", "standard", "advanced", "premium", "extended"}

// tierRiders lists the optional clauses added at each tier, cumulatively
var tierRiders = [TierCount][]string{
	nil,
	{"BS01 new-for-old parts replacement"},
	{"BS01 new-for-old parts replacement", "BS02 choice of repair garage"},
	{"BS01 new-for-old parts replacement", "BS02 choice of repair garage", "BS03 theft of parts"},
	{"BS01 new-for-old parts replacement", "BS02 choice of repair garage", "BS03 theft of parts", "BS04 engine water damage"},
}

// IsValid checks the tier index
func (t PackageTier) IsValid() bool {
	return t >= TierBasic && t <= TierExtended
}

// String returns the tier name
func (t PackageTier) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Riders returns the clauses the tier adds over basic hull cover
func (t PackageTier) Riders() []string {
	if !t.IsValid() {
		return nil
	}
	return append([]string(nil), tierRiders[t]...)
}

// ParsePackageTier accepts a tier name or its index 0..4
func ParsePackageTier(s string) (PackageTier, bool) {
	for i, name := range tierNames {
		if name == s || fmt.Sprint(i) == s {
			return PackageTier(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (t PackageTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *PackageTier) UnmarshalText(text []byte) error {
	tier, ok := ParsePackageTier(string(text))
	if !ok {
		return fmt.Errorf("unknown package tier %q", text)
	}
	*t = tier
	return nil
}

// EffectiveRate is the hull rate a fee was computed with
type EffectiveRate struct {
	Rate     decimal.Decimal `json:"rate"`
	IsCustom bool            `json:"is_custom"`
}
