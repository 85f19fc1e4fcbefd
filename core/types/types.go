// Package types defines the domain types shared by the rating engine,
// the tariff tables and the quote service.
// This package contains NO rating logic - only type definitions and
// input validation.
package types

import "strings"

// UsageCategory is the declared use of the vehicle. It selects both the
// hull tariff schedule and the deductible.
type UsageCategory string

const (
	UsagePrivatePassenger UsageCategory = "private_passenger"
	UsagePrivateCargo     UsageCategory = "private_cargo"
	UsagePrivatePickup    UsageCategory = "private_pickup"
	UsageCommercialCargo  UsageCategory = "commercial_cargo"
	UsageTractor          UsageCategory = "tractor"
	UsageIntercityCoach   UsageCategory = "intercity_coach"
	UsageRideHailing      UsageCategory = "ride_hailing"
	UsageRentalTaxi       UsageCategory = "rental_taxi"
	UsageContractCoach    UsageCategory = "contract_coach"
	UsagePublicBus        UsageCategory = "public_bus"
	UsageCommercialPickup UsageCategory = "commercial_pickup"
	UsageSpecialPurpose   UsageCategory = "special_purpose"
	UsageDumpTrailer      UsageCategory = "dump_trailer"

	// UsageUnknown is any category the tariff does not define. It is rated
	// as an all-absent rate row, not rejected.
	UsageUnknown UsageCategory = "unknown"
)

// UsageCategories lists every defined category in tariff order
var UsageCategories = []UsageCategory{
	UsagePrivatePassenger,
	UsagePrivateCargo,
	UsagePrivatePickup,
	UsageCommercialCargo,
	UsageTractor,
	UsageIntercityCoach,
	UsageRideHailing,
	UsageRentalTaxi,
	UsageContractCoach,
	UsagePublicBus,
	UsageCommercialPickup,
	UsageSpecialPurpose,
	UsageDumpTrailer,
}

// ParseUsageCategory maps a category name to its value. Unrecognized names
// map to UsageUnknown.
func ParseUsageCategory(s string) UsageCategory {
	c := UsageCategory(strings.ToLower(strings.TrimSpace(s)))
	if c.IsValid() {
		return c
	}
	return UsageUnknown
}

// String returns the string representation of the category
func (c UsageCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one the tariff defines
func (c UsageCategory) IsValid() bool {
	switch c {
	case UsagePrivatePassenger, UsagePrivateCargo, UsagePrivatePickup,
		UsageCommercialCargo, UsageTractor, UsageIntercityCoach,
		UsageRideHailing, UsageRentalTaxi, UsageContractCoach,
		UsagePublicBus, UsageCommercialPickup, UsageSpecialPurpose,
		UsageDumpTrailer:
		return true
	default:
		return false
	}
}

// IsCommercial reports whether the vehicle is used for business
// (kinh doanh vận tải)
func (c UsageCategory) IsCommercial() bool {
	switch c {
	case UsageCommercialCargo, UsageTractor, UsageIntercityCoach,
		UsageRideHailing, UsageRentalTaxi, UsageContractCoach,
		UsagePublicBus, UsageCommercialPickup, UsageSpecialPurpose,
		UsageDumpTrailer:
		return true
	default:
		return false
	}
}

// IsPrivatePassenger reports whether the category is the value-banded one
func (c UsageCategory) IsPrivatePassenger() bool {
	return c == UsagePrivatePassenger
}

// IsPickup reports whether the vehicle carries both people and goods
func (c UsageCategory) IsPickup() bool {
	return c == UsagePrivatePickup || c == UsageCommercialPickup
}

// IsWeightRated reports whether liability is keyed on cargo weight
func (c UsageCategory) IsWeightRated() bool {
	switch c {
	case UsagePrivateCargo, UsageCommercialCargo, UsageTractor, UsageDumpTrailer:
		return true
	default:
		return false
	}
}

// EngineType is the powertrain of the vehicle
type EngineType string

const (
	EngineCombustion EngineType = "combustion"
	EngineHybrid     EngineType = "hybrid"
	EngineElectric   EngineType = "electric"
)

// ParseEngineType maps an engine name to its value. An empty name is
// treated as combustion.
func ParseEngineType(s string) (EngineType, bool) {
	switch e := EngineType(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EngineCombustion, true
	case EngineCombustion, EngineHybrid, EngineElectric:
		return e, true
	default:
		return "", false
	}
}

// String returns the string representation
func (e EngineType) String() string {
	return string(e)
}

// HasTractionBattery reports whether the battery may be insured with the hull
func (e EngineType) HasTractionBattery() bool {
	return e == EngineHybrid || e == EngineElectric
}
