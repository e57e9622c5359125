package store

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/facemark/facemark/internal/domain"
)

const (
	attendancePath     = "/rest/v1/attendance"
	attendanceViewPath = "/rest/v1/attendance_with_student"
)

// DefaultAttendanceLimit bounds attendance listings when the caller does not
// supply a limit.
const DefaultAttendanceLimit = 50

// CreateAttendance inserts one attendance row for a recognized student.
// The store assigns the id and the creation timestamp.
func (c *Client) CreateAttendance(ctx context.Context, studentID uuid.UUID, confidence float64) ([]domain.AttendanceRecord, error) {
	body := domain.NewAttendance{
		StudentID:  studentID,
		Confidence: confidence,
	}

	var created []domain.AttendanceRecord
	if err := c.doRequest(ctx, http.MethodPost, attendancePath, body, nil, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// ListAttendance returns attendance rows joined with student data, most
// recent first, bounded by limit. Non-positive limits fall back to
// DefaultAttendanceLimit.
func (c *Client) ListAttendance(ctx context.Context, limit int) ([]domain.AttendanceWithStudent, error) {
	if limit <= 0 {
		limit = DefaultAttendanceLimit
	}

	query := url.Values{}
	query.Set("select", "*")
	query.Set("limit", strconv.Itoa(limit))

	var records []domain.AttendanceWithStudent
	if err := c.doRequest(ctx, http.MethodGet, attendanceViewPath, nil, query, &records); err != nil {
		return nil, err
	}
	return records, nil
}
