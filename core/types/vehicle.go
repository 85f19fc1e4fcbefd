// Package types - Quote inputs
package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"motor-premium/internal/errors"
)

// Registration date layouts accepted on input, ISO first
var registrationLayouts = []string{"2006-01-02", "02/01/2006"}

// ParseRegistrationDate parses an ISO (2006-01-02) or Vietnamese
// (02/01/2006) date. An empty string yields nil.
func ParseRegistrationDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range registrationLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.Validation("registration_date", "unparseable date %q", s)
}

// VehicleProfile describes the insured vehicle. It is built per quote
// request and never mutated by the engine.
type VehicleProfile struct {
	// Value is the declared vehicle value in VND
	Value int64 `json:"value"`

	// RegistrationDate anchors the age when known
	RegistrationDate *time.Time `json:"registration_date,omitempty"`

	// ManufactureYear is used for the age when no registration date is known
	ManufactureYear int `json:"manufacture_year,omitempty"`

	// Seats is the registered seat count
	Seats int `json:"seats"`

	// CargoWeightKg is the payload for cargo, tractor and trailer categories
	CargoWeightKg int64 `json:"cargo_weight_kg,omitempty"`

	// Usage is the declared use of the vehicle
	Usage UsageCategory `json:"usage"`

	// Engine is the powertrain type
	Engine EngineType `json:"engine"`

	// BatteryValue is the separately declared traction battery value in VND
	BatteryValue int64 `json:"battery_value,omitempty"`
}

// MaxDeclaredValue caps the vehicle and battery values in VND. Their sum
// times any accepted rate stays far inside int64.
const MaxDeclaredValue int64 = 1_000_000_000_000_000

// Validate rejects malformed profiles. An unknown usage category is not
// an error.
func (p VehicleProfile) Validate() error {
	if p.Value <= 0 {
		return errors.Validation("value", "must be positive, got %d", p.Value)
	}
	if p.Value > MaxDeclaredValue {
		return errors.Validation("value", "must not exceed %d, got %d", MaxDeclaredValue, p.Value)
	}
	if p.BatteryValue < 0 {
		return errors.Validation("battery_value", "must not be negative, got %d", p.BatteryValue)
	}
	if p.BatteryValue > MaxDeclaredValue {
		return errors.Validation("battery_value", "must not exceed %d, got %d", MaxDeclaredValue, p.BatteryValue)
	}
	if p.Seats < 0 {
		return errors.Validation("seats", "must not be negative, got %d", p.Seats)
	}
	if p.CargoWeightKg < 0 {
		return errors.Validation("cargo_weight_kg", "must not be negative, got %d", p.CargoWeightKg)
	}
	switch p.Engine {
	case EngineCombustion, EngineHybrid, EngineElectric:
	default:
		return errors.Validation("engine", "unknown engine type %q", p.Engine)
	}
	if p.RegistrationDate == nil && p.ManufactureYear <= 0 {
		return errors.Validation("manufacture_year", "required when no registration date is given")
	}
	return nil
}

// InsuresBattery reports whether the battery value joins the insured sum
func (p VehicleProfile) InsuresBattery() bool {
	return p.Engine.HasTractionBattery() && p.BatteryValue > 0
}

// Renewal percentage bounds, inclusive
var (
	minRenewalPercent = decimal.NewFromInt(-100)
	maxRenewalPercent = decimal.NewFromInt(100)
)

// CoverageSelections are the buyer's and agent's choices for one quote
type CoverageSelections struct {
	// Tier is the hull package
	Tier PackageTier `json:"tier"`

	// CustomRate is an agent-negotiated hull rate in percent. When set it
	// replaces the tariff rate of the selected tier.
	CustomRate *decimal.Decimal `json:"custom_rate,omitempty"`

	// Liability adds compulsory third-party liability cover
	Liability bool `json:"liability"`

	// AccidentPackage is the passenger-accident package id, empty for none
	AccidentPackage string `json:"accident_package,omitempty"`

	// RenewalPercent is a discount (negative) or surcharge (positive)
	// applied to the insured value on renewal
	RenewalPercent decimal.Decimal `json:"renewal_percent"`
}

// Validate rejects malformed selections. The custom rate range is checked
// by the override layer.
func (s CoverageSelections) Validate() error {
	if !s.Tier.IsValid() {
		return errors.Validation("tier", "unknown package tier %d", int(s.Tier))
	}
	if s.RenewalPercent.LessThan(minRenewalPercent) || s.RenewalPercent.GreaterThan(maxRenewalPercent) {
		return errors.Validation("renewal_percent", "must be within [-100, 100], got %s", s.RenewalPercent)
	}
	return nil
}
