// Package classify derives the tariff lookup keys of a vehicle: its age band,
// its value band (private passenger cars only) and its liability category.
// Classification never fails; vehicles the tariff does not cover classify
// to LiabilityUndefined.
package classify

import (
	"time"

	"motor-premium/core/types"
)

// Weight bracket limits in kilograms. 3t and 8t belong to the 3-8t
// bracket, 15t to the 8-15t bracket.
const (
	weight3T  int64 = 3_000
	weight8T  int64 = 8_000
	weight15T int64 = 15_000
)

// Classify returns the lookup keys of profile as of the given day
func Classify(profile types.VehicleProfile, asOf time.Time) types.Classification {
	years := AgeAt(profile, asOf)
	c := types.Classification{
		AgeYears:  years,
		Age:       types.AgeBucketFor(years),
		Liability: LiabilityCategory(profile),
	}
	if profile.Usage.IsPrivatePassenger() {
		v := types.ValueBucketFor(profile.Value)
		c.Value = &v
	}
	return c
}

// AgeAt returns the age in whole years. With a registration date a year
// only counts once its anniversary day is reached; otherwise the age is the
// difference of calendar years. Never negative.
func AgeAt(profile types.VehicleProfile, asOf time.Time) int {
	var years int
	if reg := profile.RegistrationDate; reg != nil {
		years = asOf.Year() - reg.Year()
		if asOf.Month() < reg.Month() || (asOf.Month() == reg.Month() && asOf.Day() < reg.Day()) {
			years--
		}
	} else {
		years = asOf.Year() - profile.ManufactureYear
	}
	if years < 0 {
		return 0
	}
	return years
}

// LiabilityCategory selects the liability fee key from usage, seats and
// cargo weight
func LiabilityCategory(profile types.VehicleProfile) types.LiabilityCategory {
	usage := profile.Usage
	switch {
	case !usage.IsValid():
		return types.LiabilityUndefined
	case usage.IsPickup():
		if usage.IsCommercial() {
			return types.LiabilityPickupBusiness
		}
		return types.LiabilityPickupPrivate
	case usage.IsWeightRated():
		return weightCategory(profile.CargoWeightKg)
	case usage.IsCommercial():
		return commercialSeatCategory(profile.Seats)
	default:
		return privateSeatCategory(profile.Seats)
	}
}

func weightCategory(kg int64) types.LiabilityCategory {
	switch {
	case kg < weight3T:
		return types.LiabilityCargoUnder3T
	case kg <= weight8T:
		return types.LiabilityCargo3To8T
	case kg <= weight15T:
		return types.LiabilityCargo8To15T
	default:
		return types.LiabilityCargoOver15T
	}
}

func privateSeatCategory(seats int) types.LiabilityCategory {
	switch {
	case seats < 6:
		return types.LiabilityPrivateUnder6
	case seats <= 11:
		return types.LiabilityPrivate6To11
	case seats <= 24:
		return types.LiabilityPrivate12To24
	default:
		return types.LiabilityPrivateOver24
	}
}

func commercialSeatCategory(seats int) types.LiabilityCategory {
	if seats < 6 {
		return types.LiabilityCommercialUnder6
	}
	if c, ok := types.LiabilityCommercialBySeats[seats]; ok {
		return c
	}
	if seats <= 24 {
		return types.LiabilityCommercial17To24
	}
	return types.LiabilityCommercialOver24
}
