package model

import "time"

// Patient is a registered clinic patient. HN and CitizenID are free-form
// strings chosen by clinic staff; the store does not enforce their
// uniqueness. HN is immutable by convention once assigned.
type Patient struct {
	ID                PatientID `json:"id"`
	HN                string    `json:"hn"`
	CitizenID         string    `json:"citizen_id"`
	Title             string    `json:"title"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	BirthDate         *Date     `json:"birth_date,omitempty"`
	Age               *uint32   `json:"age,omitempty"`
	BloodGroup        string    `json:"blood_group"`
	UnderlyingDisease string    `json:"underlying_disease"`
	DrugAllergy       string    `json:"drug_allergy"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	CreatedAt         time.Time `json:"created_at"`
}

// FullName joins title, first and last name for display.
func (p *Patient) FullName() string {
	name := p.Title + p.FirstName
	if p.LastName != "" {
		name += " " + p.LastName
	}
	return name
}

type CreatePatientRequest struct {
	HN                string  `json:"hn" binding:"required"`
	CitizenID         string  `json:"citizen_id"`
	Title             string  `json:"title"`
	FirstName         string  `json:"first_name" binding:"required"`
	LastName          string  `json:"last_name"`
	BirthDate         *Date   `json:"birth_date"`
	Age               *uint32 `json:"age"`
	BloodGroup        string  `json:"blood_group"`
	UnderlyingDisease string  `json:"underlying_disease"`
	DrugAllergy       string  `json:"drug_allergy"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
}

type UpdatePatientRequest struct {
	CitizenID         *string `json:"citizen_id"`
	Title             *string `json:"title"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	BirthDate         *Date   `json:"birth_date"`
	Age               *uint32 `json:"age"`
	BloodGroup        *string `json:"blood_group"`
	UnderlyingDisease *string `json:"underlying_disease"`
	DrugAllergy       *string `json:"drug_allergy"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
}
