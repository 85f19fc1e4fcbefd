// Package tariff - Passenger accident price list
package tariff

import "motor-premium/core/types"

// AccidentFeeLookup prices a passenger-accident (NNTX) package. The price
// list behind it is maintained outside the engine.
type AccidentFeeLookup interface {
	AccidentFee(packageID string, seats int, usage types.UsageCategory) (int64, bool)
}

// AccidentPackage is one entry of the price list
type AccidentPackage struct {
	// SumInsuredPerSeat is the benefit per seat in VND
	SumInsuredPerSeat int64 `json:"sum_insured_per_seat"`

	// PrivatePerSeat is the annual premium per seat for private use
	PrivatePerSeat int64 `json:"private_per_seat"`

	// CommercialPerSeat is the annual premium per seat for business use
	CommercialPerSeat int64 `json:"commercial_per_seat"`
}

// AccidentPriceList is the in-process AccidentFeeLookup
type AccidentPriceList map[string]AccidentPackage

// AccidentFee returns the per-seat price times the seat count
func (l AccidentPriceList) AccidentFee(packageID string, seats int, usage types.UsageCategory) (int64, bool) {
	pkg, ok := l[packageID]
	if !ok || seats < 0 {
		return 0, false
	}
	perSeat := pkg.PrivatePerSeat
	if usage.IsCommercial() {
		perSeat = pkg.CommercialPerSeat
	}
	return perSeat * int64(seats), true
}

// DefaultAccidentPrices returns the built-in NNTX packages
func DefaultAccidentPrices() AccidentPriceList {
	return AccidentPriceList{
		"nntx-10m":  {SumInsuredPerSeat: 10_000_000, PrivatePerSeat: 10_000, CommercialPerSeat: 15_000},
		"nntx-20m":  {SumInsuredPerSeat: 20_000_000, PrivatePerSeat: 20_000, CommercialPerSeat: 30_000},
		"nntx-50m":  {SumInsuredPerSeat: 50_000_000, PrivatePerSeat: 50_000, CommercialPerSeat: 75_000},
		"nntx-100m": {SumInsuredPerSeat: 100_000_000, PrivatePerSeat: 100_000, CommercialPerSeat: 150_000},
	}
}
