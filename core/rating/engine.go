// Package rating - Quote engine
package rating

import (
	"time"

	"motor-premium/core/classify"
	"motor-premium/core/tariff"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

// Engine computes premium quotes against one set of tariff tables.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	tables   tariff.Tables
	accident tariff.AccidentFeeLookup
	now      func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock vehicle ages are measured against
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithAccidentLookup replaces the passenger-accident price list of the
// tables with an external one
func WithAccidentLookup(lookup tariff.AccidentFeeLookup) Option {
	return func(e *Engine) {
		e.accident = lookup
	}
}

// NewEngine creates an engine rating against tables
func NewEngine(tables tariff.Tables, opts ...Option) *Engine {
	e := &Engine{
		tables:   tables,
		accident: tables.Accident,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rates classifies profile and returns its five tier rates
func (e *Engine) Rates(profile types.VehicleProfile) (types.Classification, types.TierRates) {
	c := classify.Classify(profile, e.now())
	return c, LookupRates(e.tables.Hull, profile.Usage, c.Age, c.Value)
}

// ComputeQuote prices profile under selections. Equal inputs on the same
// day always give equal quotes.
func (e *Engine) ComputeQuote(profile types.VehicleProfile, selections types.CoverageSelections) (types.PremiumQuote, error) {
	if err := profile.Validate(); err != nil {
		return types.PremiumQuote{}, err
	}
	if err := selections.Validate(); err != nil {
		return types.PremiumQuote{}, err
	}

	var custom *RateSource
	if selections.CustomRate != nil {
		src, err := NewCustomRate(*selections.CustomRate)
		if err != nil {
			return types.PremiumQuote{}, err
		}
		custom = &src
	}

	class, rates := e.Rates(profile)

	effective, err := ApplyOverride(rates[selections.Tier], custom)
	if err != nil {
		if IsTierUnavailable(err) {
			return types.PremiumQuote{}, errors.Validation("tier", "%s is not offered for %s aged %d years",
				selections.Tier, profile.Usage, class.AgeYears).
				WithContext("tier", selections.Tier.String())
		}
		return types.PremiumQuote{}, err
	}

	hull := ComposeHullFee(effective.Rate, profile.Value, profile.BatteryValue, profile.Engine, profile.Usage)

	surcharged := rates
	if hull.BatterySurcharge {
		surcharged = rates.Add(tariff.ExtendedSurcharge())
	}

	q := types.PremiumQuote{
		Usage:               profile.Usage,
		Engine:              profile.Engine,
		Classification:      class,
		TierRates:           rates,
		SurchargedTierRates: surcharged,
		Tier:                selections.Tier,
		Rate:                effective,
		HullRate:            hull.Rate,
		InsurableValue:      hull.InsurableValue,
		HullFee:             hull.Fee,
		FloorApplied:        hull.FloorApplied,
		RenewalPercent:      selections.RenewalPercent,
		Deductible:          Deductible(profile.Usage),
	}

	var liabilityFee, accidentFee *int64
	if selections.Liability {
		if fee, ok := e.tables.Liability.Fee(class.Liability); ok {
			q.LiabilityCovered = true
			q.LiabilityFee = fee
			liabilityFee = &fee
		}
	}
	if selections.AccidentPackage != "" {
		fee, ok := e.accident.AccidentFee(selections.AccidentPackage, profile.Seats, profile.Usage)
		if !ok {
			return types.PremiumQuote{}, errors.Validation("accident_package", "unknown package %q", selections.AccidentPackage)
		}
		q.AccidentPackage = selections.AccidentPackage
		q.AccidentFee = fee
		accidentFee = &fee
	}

	q.RenewalAdjustment = RenewalAdjustment(hull.InsurableValue, selections.RenewalPercent)
	q.GrandTotal = ComposeTotal(hull.Fee, liabilityFee, accidentFee, q.RenewalAdjustment)
	return q, nil
}
