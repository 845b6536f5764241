package models

import "time"

// Lead is a captured prospect's contact record. Leads are append-only:
// the id is assigned at capture time and never reused, and a stored lead
// is never updated or deleted.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CapturedAt time.Time `json:"captured_at"`
}

// SubmitLeadRequest carries the gate form fields. All fields are required
// to be non-empty; format validation is left to the presentation layer.
type SubmitLeadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate checks the non-empty contract.
func (r *SubmitLeadRequest) Validate() error {
	if r.Name == "" {
		return errFieldRequired("name")
	}
	if r.Email == "" {
		return errFieldRequired("email")
	}
	if r.Phone == "" {
		return errFieldRequired("phone")
	}
	return nil
}

type errFieldRequired string

func (e errFieldRequired) Error() string {
	return string(e) + " is required"
}
