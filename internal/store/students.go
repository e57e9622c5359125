package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/facemark/facemark/internal/domain"
)

const studentsPath = "/rest/v1/students"

// ListStudents returns every student record.
func (c *Client) ListStudents(ctx context.Context) ([]domain.Student, error) {
	query := url.Values{}
	query.Set("select", "*")

	var students []domain.Student
	if err := c.doRequest(ctx, http.MethodGet, studentsPath, nil, query, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// StudentByID fetches students filtered by id. The store performs the
// filtering; the result is empty when no row matches.
func (c *Client) StudentByID(ctx context.Context, id uuid.UUID) ([]domain.Student, error) {
	query := url.Values{}
	query.Set("id", "eq."+id.String())
	query.Set("select", "*")

	var students []domain.Student
	if err := c.doRequest(ctx, http.MethodGet, studentsPath, nil, query, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// StudentByRollNumber fetches students filtered by roll number.
func (c *Client) StudentByRollNumber(ctx context.Context, rollNumber string) ([]domain.Student, error) {
	query := url.Values{}
	query.Set("roll_number", "eq."+rollNumber)
	query.Set("select", "*")

	var students []domain.Student
	if err := c.doRequest(ctx, http.MethodGet, studentsPath, nil, query, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateStudent inserts a student and returns the stored representation.
func (c *Client) CreateStudent(ctx context.Context, s domain.NewStudent) ([]domain.Student, error) {
	var created []domain.Student
	if err := c.doRequest(ctx, http.MethodPost, studentsPath, s, nil, &created); err != nil {
		return nil, err
	}
	return created, nil
}
