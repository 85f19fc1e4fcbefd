// Package rating - Agent rate overrides
package rating

import (
	stderrors "errors"

	"github.com/shopspring/decimal"

	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

// Accepted custom rate range in percent: (0.1, 10.0]
var (
	minCustomRateExclusive = decimal.RequireFromString("0.1")
	maxCustomRate          = decimal.NewFromInt(10)
)

// SourceKind tells where a hull rate came from
type SourceKind int

const (
	SourceTariff SourceKind = iota
	SourceCustom
)

// String returns the source name
func (k SourceKind) String() string {
	if k == SourceCustom {
		return "custom"
	}
	return "tariff"
}

// RateSource is a hull rate tagged with its origin. The zero value is not
// a valid source; build one with TariffRate or NewCustomRate.
type RateSource struct {
	kind SourceKind
	rate decimal.Decimal
}

// TariffRate tags a rate read from the hull table
func TariffRate(rate decimal.Decimal) RateSource {
	return RateSource{kind: SourceTariff, rate: rate}
}

// NewCustomRate validates an agent-negotiated rate. Out-of-range rates are
// rejected, never clamped.
func NewCustomRate(rate decimal.Decimal) (RateSource, error) {
	if rate.LessThanOrEqual(minCustomRateExclusive) || rate.GreaterThan(maxCustomRate) {
		return RateSource{}, errors.Validation("custom_rate", "must be within (0.1, 10], got %s", rate)
	}
	return RateSource{kind: SourceCustom, rate: rate}, nil
}

// Kind returns the origin of the rate
func (s RateSource) Kind() SourceKind {
	return s.kind
}

// Rate returns the rate in percent
func (s RateSource) Rate() decimal.Decimal {
	return s.rate
}

// Effective converts the source to the rate recorded on a quote
func (s RateSource) Effective() types.EffectiveRate {
	return types.EffectiveRate{Rate: s.rate, IsCustom: s.kind == SourceCustom}
}

// errTierUnavailable is the cause of every error for a tier priced
// without a tariff rate or a custom rate
var errTierUnavailable = stderrors.New("package tier is not offered for this vehicle")

// IsTierUnavailable reports whether err rejects a tier with no tariff rate
func IsTierUnavailable(err error) bool {
	return stderrors.Is(err, errTierUnavailable)
}

func tierUnavailable() *errors.Error {
	e := errors.Wrap(errors.TypeInput, "no tariff rate", errTierUnavailable)
	e.Field = "tier"
	return e
}

// ApplyOverride picks the rate a hull fee is computed with. A custom rate
// fully replaces the tariff rate, including an absent one. Without a custom
// rate an absent tariff rate is a validation error on the tier.
func ApplyOverride(base types.OptionalRate, custom *RateSource) (types.EffectiveRate, error) {
	if custom != nil {
		if custom.kind != SourceCustom {
			return types.EffectiveRate{}, errors.Validation("custom_rate", "override must be a custom rate")
		}
		return custom.Effective(), nil
	}
	rate, ok := base.Get()
	if !ok {
		return types.EffectiveRate{}, tierUnavailable()
	}
	return TariffRate(rate).Effective(), nil
}
