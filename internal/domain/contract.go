package domain

// ContractStatus is stored as free text. The constants below are the
// canonical values the lifecycle engine writes; any other value is kept
// verbatim as a custom status with no side effects.
type ContractStatus string

const (
	ContractStatusRenting   ContractStatus = "Renting"
	ContractStatusCompleted ContractStatus = "Completed"
	ContractStatusCanceled  ContractStatus = "Canceled"
	ContractStatusOverdue   ContractStatus = "Overdue"
)

type Contract struct {
	ID          int32          `json:"id"`
	CustomerID  int32          `json:"customer_id"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
	TotalAmount float64        `json:"total_amount"`
	Status      ContractStatus `json:"status"`
	Notes       string         `json:"notes,omitempty"`

	// Line items owned by the contract, cascade-deleted with it.
	Cars       []ContractCar       `json:"cars"`
	Surcharges []ContractSurcharge `json:"surcharges"`
}

// ContractCar binds one contract to one car. DailyRate and Amount are
// snapshots taken at creation time so the total stays reproducible from
// the persisted rows alone. Return fields are filled when the car comes back.
type ContractCar struct {
	ID            int32   `json:"id"`
	ContractID    int32   `json:"contract_id"`
	CarID         int32   `json:"car_id"`
	DailyRate     float64 `json:"daily_rate"`
	Amount        float64 `json:"amount"`
	ReturnMileage *int32  `json:"return_mileage,omitempty"`
	CarCondition  string  `json:"car_condition,omitempty"`
}

// ContractSurcharge carries a unit-price snapshot copied from the catalog
// at creation time, never re-read afterwards. Composite key (contract,
// surcharge).
type ContractSurcharge struct {
	ContractID  int32   `json:"contract_id"`
	SurchargeID int32   `json:"surcharge_id"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int32   `json:"quantity"`
}
