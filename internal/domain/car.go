package domain

// CarStatus is free text like ContractStatus. While a car is under contract
// its status is driven by contract transitions only.
type CarStatus string

const (
	CarStatusReady       CarStatus = "Ready"
	CarStatusRenting     CarStatus = "Renting"
	CarStatusMaintenance CarStatus = "Maintenance"
)

type Car struct {
	ID           int32     `json:"id"`
	LicensePlate string    `json:"license_plate"`
	DailyRate    float64   `json:"daily_rate"`
	HourlyRate   float64   `json:"hourly_rate"`
	Status       CarStatus `json:"status"`
}
