// Package pricing computes rental charges. All functions are pure so a
// contract's total can be recomputed from its persisted line items alone.
package pricing

import (
	"time"

	"car-rental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// RentalDays returns the whole-day span between two yyyy-mm-dd dates.
// Missing, unparseable or inverted inputs yield 0 so a total is always
// well-defined.
func RentalDays(startDate, endDate string) int32 {
	if startDate == "" || endDate == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}
	days := int32(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// EffectiveDailyRate resolves the rate for a car line: the caller-supplied
// override wins, then the car's catalog rate, then 0.
func EffectiveDailyRate(override *float64, catalogRate float64) float64 {
	if override != nil {
		return *override
	}
	return catalogRate
}

// CarCharge is the per-car charge for a rental span.
func CarCharge(days int32, dailyRate float64) float64 {
	return float64(days) * dailyRate
}

// SurchargeCharge is the charge for one surcharge line, using the snapshot
// unit price taken at contract creation.
func SurchargeCharge(unitPrice float64, quantity int32) float64 {
	return unitPrice * float64(quantity)
}

// ContractTotal sums all car and surcharge charges.
func ContractTotal(cars []domain.ContractCar, surcharges []domain.ContractSurcharge) float64 {
	var total float64
	for _, cc := range cars {
		total += cc.Amount
	}
	for _, cs := range surcharges {
		total += SurchargeCharge(cs.UnitPrice, cs.Quantity)
	}
	return total
}
