package domain

// DeliveryReceipt records the physical handover of the cars to the customer.
// Append-only.
type DeliveryReceipt struct {
	ID                     int32  `json:"id"`
	ContractID             int32  `json:"contract_id"`
	Reference              string `json:"reference"`
	DeliveryEmployeeID     *int32 `json:"delivery_employee_id,omitempty"`
	ReceiverEmployeeID     *int32 `json:"receiver_employee_id,omitempty"`
	DeliveryDate           string `json:"delivery_date,omitempty"`
	CarConditionAtDelivery string `json:"car_condition_at_delivery,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

// ReturnReceipt is the operational proof that the cars came back. Append-only;
// the at-most-one guarantee on the status-update path is look-before-insert,
// not a unique constraint.
type ReturnReceipt struct {
	ID                 int32  `json:"id"`
	ContractID         int32  `json:"contract_id"`
	Reference          string `json:"reference"`
	ReceiverEmployeeID *int32 `json:"receiver_employee_id,omitempty"`
	ReceiverBranchID   *int32 `json:"receiver_branch_id,omitempty"`
	ReturnDate         string `json:"return_date,omitempty"`
	Notes              string `json:"notes,omitempty"`
}
