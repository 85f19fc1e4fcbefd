// Package quote serves premium quotes to the process: it rates requests
// against the current tariff snapshot, stamps each quote with a record id
// and reports outcomes to logs and metrics.
package quote

import (
	"strings"

	"github.com/shopspring/decimal"

	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

// Request is the wire form of a quote request, as read from flags or a
// batch file
type Request struct {
	Value            int64  `json:"value" yaml:"value"`
	RegistrationDate string `json:"registration_date,omitempty" yaml:"registration_date,omitempty"`
	ManufactureYear  int    `json:"manufacture_year,omitempty" yaml:"manufacture_year,omitempty"`
	Seats            int    `json:"seats" yaml:"seats"`
	CargoWeightKg    int64  `json:"cargo_weight_kg,omitempty" yaml:"cargo_weight_kg,omitempty"`
	Usage            string `json:"usage" yaml:"usage"`
	Engine           string `json:"engine,omitempty" yaml:"engine,omitempty"`
	BatteryValue     int64  `json:"battery_value,omitempty" yaml:"battery_value,omitempty"`

	Tier            string `json:"tier,omitempty" yaml:"tier,omitempty"`
	CustomRate      string `json:"custom_rate,omitempty" yaml:"custom_rate,omitempty"`
	Liability       bool   `json:"liability,omitempty" yaml:"liability,omitempty"`
	AccidentPackage string `json:"accident_package,omitempty" yaml:"accident_package,omitempty"`
	RenewalPercent  string `json:"renewal_percent,omitempty" yaml:"renewal_percent,omitempty"`
}

// Inputs converts the request to engine inputs. Text fields that do not
// parse are validation errors; an unknown usage category is not.
func (r Request) Inputs() (types.VehicleProfile, types.CoverageSelections, error) {
	var (
		profile    types.VehicleProfile
		selections types.CoverageSelections
	)

	reg, err := types.ParseRegistrationDate(r.RegistrationDate)
	if err != nil {
		return profile, selections, err
	}
	engine, ok := types.ParseEngineType(r.Engine)
	if !ok {
		return profile, selections, errors.Validation("engine", "unknown engine type %q", r.Engine)
	}

	profile = types.VehicleProfile{
		Value:            r.Value,
		RegistrationDate: reg,
		ManufactureYear:  r.ManufactureYear,
		Seats:            r.Seats,
		CargoWeightKg:    r.CargoWeightKg,
		Usage:            types.ParseUsageCategory(r.Usage),
		Engine:           engine,
		BatteryValue:     r.BatteryValue,
	}

	selections.Tier = types.TierBasic
	if tier := strings.TrimSpace(r.Tier); tier != "" {
		t, ok := types.ParsePackageTier(strings.ToLower(tier))
		if !ok {
			return profile, selections, errors.Validation("tier", "unknown package tier %q", r.Tier)
		}
		selections.Tier = t
	}
	if s := strings.TrimSpace(r.CustomRate); s != "" {
		rate, err := decimal.NewFromString(s)
		if err != nil {
			return profile, selections, errors.Validation("custom_rate", "not a number: %q", r.CustomRate)
		}
		selections.CustomRate = &rate
	}
	if s := strings.TrimSpace(r.RenewalPercent); s != "" {
		pct, err := decimal.NewFromString(s)
		if err != nil {
			return profile, selections, errors.Validation("renewal_percent", "not a number: %q", r.RenewalPercent)
		}
		selections.RenewalPercent = pct
	}
	selections.Liability = r.Liability
	selections.AccidentPackage = strings.TrimSpace(r.AccidentPackage)
	return profile, selections, nil
}
