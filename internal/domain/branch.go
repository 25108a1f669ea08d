package domain

type Branch struct {
	ID         int32  `json:"id"`
	BranchName string `json:"branch_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}
