package domain

type Employee struct {
	ID        int32   `json:"id"`
	FullName  string  `json:"full_name"`
	BirthDate string  `json:"birth_date,omitempty"`
	Gender    string  `json:"gender,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Address   string  `json:"address,omitempty"`
	Salary    float64 `json:"salary,omitempty"`
	BranchID  *int32  `json:"branch_id,omitempty"`
	IsDeleted bool    `json:"is_deleted"`
}
