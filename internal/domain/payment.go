package domain

// ContractPayment is an append-only log entry. Rows are inserted, never
// updated or deleted.
type ContractPayment struct {
	ID            int32   `json:"id"`
	ContractID    int32   `json:"contract_id"`
	Reference     string  `json:"reference"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}
