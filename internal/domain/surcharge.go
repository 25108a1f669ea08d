package domain

// Surcharge is the catalog entry. Contract lines snapshot its price at
// creation time, so edits here never affect existing contracts.
type Surcharge struct {
	ID            int32   `json:"id"`
	SurchargeName string  `json:"surcharge_name"`
	UnitPrice     float64 `json:"unit_price"`
	Description   string  `json:"description,omitempty"`
}
