package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is a row of the attendance table. One row is written per
// successful recognition and is immutable afterwards.
type AttendanceRecord struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAttendance carries the fields for an attendance insert. The store
// assigns id and created_at.
type NewAttendance struct {
	StudentID  uuid.UUID `json:"student_id"`
	Confidence float64   `json:"confidence"`
}

// AttendanceWithStudent is a row of the attendance_with_student view:
// attendance joined with the matched student, most recent first.
type AttendanceWithStudent struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name"`
	Branch     string    `json:"branch"`
	Year       string    `json:"year"`
	RollNumber string    `json:"roll_number"`
	Email      string    `json:"email"`
}
