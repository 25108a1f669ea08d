package domain

type Customer struct {
	ID               int32  `json:"id"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	CitizenID        string `json:"citizen_id,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`
	IsDeleted        bool   `json:"is_deleted"`
}
