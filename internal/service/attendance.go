// Package service implements the two request-orchestration workflows: face
// registration (link a new face to an existing student) and face recognition
// (match a face, fetch the student, log attendance).
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/facemark/facemark/internal/domain"
)

// StudentStore is the slice of the record store client the workflows need.
type StudentStore interface {
	StudentByID(ctx context.Context, id uuid.UUID) ([]domain.Student, error)
	StudentByRollNumber(ctx context.Context, rollNumber string) ([]domain.Student, error)
	CreateAttendance(ctx context.Context, studentID uuid.UUID, confidence float64) ([]domain.AttendanceRecord, error)
}

// FaceIndex is the slice of the face service client the workflows need.
type FaceIndex interface {
	EnsureCollection(ctx context.Context) error
	IndexFaces(ctx context.Context, imageBase64, externalID string) (*domain.Enrollment, error)
	SearchFaces(ctx context.Context, imageBase64 string) ([]domain.FaceMatch, error)
}

// AttendanceService sequences the calls to the record store and the face
// service. It keeps no state of its own.
type AttendanceService struct {
	store  StudentStore
	faces  FaceIndex
	logger *slog.Logger
}

func NewAttendanceService(store StudentStore, faces FaceIndex, logger *slog.Logger) *AttendanceService {
	return &AttendanceService{
		store:  store,
		faces:  faces,
		logger: logger,
	}
}

// stripDataURI removes an optional data-URI prefix from a base64 payload.
// Everything up to and including the first comma is dropped; payloads without
// a comma pass through unchanged, so the operation is idempotent.
func stripDataURI(image string) string {
	if _, payload, found := strings.Cut(image, ","); found {
		return payload
	}
	return image
}

// RegisterFace enrolls a face image for the student with the given roll
// number. The enrolled face is tagged with the student's id so recognition
// can resolve it back. Returns domain.ErrStudentNotFound when the roll number
// matches no student (the record store not answering collapses into the same
// outcome).
func (s *AttendanceService) RegisterFace(ctx context.Context, image, rollNumber string) (*domain.Enrollment, error) {
	students, err := s.store.StudentByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, domain.ErrStudentNotFound.WithError(err)
	}
	if len(students) == 0 {
		return nil, domain.ErrStudentNotFound
	}
	student := students[0]

	// Idempotent; enrollment surfaces the real error if the collection is
	// genuinely unusable.
	if err := s.faces.EnsureCollection(ctx); err != nil {
		s.logger.Warn("ensure collection failed",
			slog.Any("error", err),
		)
	}

	// The enrollment result, success or failure, is handed back verbatim.
	return s.faces.IndexFaces(ctx, stripDataURI(image), student.ID.String())
}

// RecognizeFace searches the collection for the face in the image. On a full
// match the similarity is logged as an attendance record for the resolved
// student. When the top match's external id resolves to no known student, the
// raw candidate list is returned with no attendance written.
func (s *AttendanceService) RecognizeFace(ctx context.Context, image string) (*domain.Recognition, error) {
	matches, err := s.faces.SearchFaces(ctx, stripDataURI(image))
	if err != nil {
		return nil, err
	}

	top := matches[0]
	student := s.resolveStudent(ctx, top.ExternalID)
	if student == nil {
		// Match without a student record: hand back the raw search result.
		return &domain.Recognition{Matches: matches}, nil
	}

	// A failed attendance write is logged but does not fail the response;
	// the caller still gets the match.
	if _, err := s.store.CreateAttendance(ctx, student.ID, top.Similarity); err != nil {
		s.logger.Error("record attendance failed",
			slog.String("student_id", student.ID.String()),
			slog.Float64("confidence", top.Similarity),
			slog.Any("error", err),
		)
	}

	return &domain.Recognition{
		Matches: matches,
		Match:   &top,
		Student: student,
	}, nil
}

// resolveStudent looks up the student carried by a match's external id.
// Unparseable ids (including the "unknown" sentinel) and store misses both
// mean no student.
func (s *AttendanceService) resolveStudent(ctx context.Context, externalID string) *domain.Student {
	id, err := uuid.Parse(externalID)
	if err != nil {
		return nil
	}

	students, err := s.store.StudentByID(ctx, id)
	if err != nil {
		s.logger.Warn("student lookup failed",
			slog.String("student_id", externalID),
			slog.Any("error", err),
		)
		return nil
	}
	if len(students) == 0 {
		return nil
	}
	return &students[0]
}
