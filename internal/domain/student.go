package domain

import (
	"time"

	"github.com/google/uuid"
)

// Student is a row of the students table in the record store.
// The id is assigned by the store on insert; roll_number is unique and
// human-assigned.
type Student struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Branch     string    `json:"branch"`
	Year       string    `json:"year"`
	RollNumber string    `json:"roll_number"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// NewStudent carries the five required fields for a student insert.
type NewStudent struct {
	Name       string `json:"name"`
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	RollNumber string `json:"roll_number"`
	Email      string `json:"email"`
}
