package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facemark/facemark/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	}, testLogger())
}

func TestClient_SendsSupabaseHeaders(t *testing.T) {
	var gotHeaders http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListStudents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotHeaders.Get("apikey"))
	assert.Equal(t, "Bearer test-key", gotHeaders.Get("Authorization"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "return=representation", gotHeaders.Get("Prefer"))
}

func TestClient_StudentByRollNumber(t *testing.T) {
	studentID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/students", r.URL.Path)
		assert.Equal(t, "eq.21CS045", r.URL.Query().Get("roll_number"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))

		_ = json.NewEncoder(w).Encode([]domain.Student{
			{ID: studentID, Name: "Priya Sharma", RollNumber: "21CS045"},
		})
	})

	students, err := client.StudentByRollNumber(context.Background(), "21CS045")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, studentID, students[0].ID)
	assert.Equal(t, "Priya Sharma", students[0].Name)
}

func TestClient_StudentByRollNumber_NoRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	students, err := client.StudentByRollNumber(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestClient_StudentByID(t *testing.T) {
	id := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq."+id.String(), r.URL.Query().Get("id"))
		_ = json.NewEncoder(w).Encode([]domain.Student{{ID: id}})
	})

	students, err := client.StudentByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, students, 1)
}

func TestClient_CreateStudent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/students", r.URL.Path)

		var body domain.NewStudent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "21CS045", body.RollNumber)

		_ = json.NewEncoder(w).Encode([]domain.Student{
			{ID: uuid.New(), Name: body.Name, RollNumber: body.RollNumber},
		})
	})

	created, err := client.CreateStudent(context.Background(), domain.NewStudent{
		Name:       "Priya Sharma",
		Branch:     "CSE",
		Year:       "3",
		RollNumber: "21CS045",
		Email:      "priya@example.edu",
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Priya Sharma", created[0].Name)
	assert.NotEqual(t, uuid.Nil, created[0].ID)
}

func TestClient_CreateAttendance(t *testing.T) {
	studentID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/attendance", r.URL.Path)

		var body domain.NewAttendance
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, studentID, body.StudentID)
		assert.InDelta(t, 93.2, body.Confidence, 0.001)

		_ = json.NewEncoder(w).Encode([]domain.AttendanceRecord{
			{ID: uuid.New(), StudentID: body.StudentID, Confidence: body.Confidence},
		})
	})

	created, err := client.CreateAttendance(context.Background(), studentID, 93.2)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, studentID, created[0].StudentID)
}

func TestClient_ListAttendance(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{name: "explicit limit", limit: 2, wantLimit: "2"},
		{name: "zero falls back to default", limit: 0, wantLimit: "50"},
		{name: "negative falls back to default", limit: -3, wantLimit: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/rest/v1/attendance_with_student", r.URL.Path)
				assert.Equal(t, tt.wantLimit, r.URL.Query().Get("limit"))
				_, _ = w.Write([]byte(`[]`))
			})

			_, err := client.ListAttendance(context.Background(), tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestClient_ErrorStatusBecomesTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	})

	_, err := client.ListStudents(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
}

func TestClient_InvalidJSONResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.ListStudents(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}
