package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/facemark/facemark/internal/domain"
)

// defaultAttendanceLimit is used when the caller supplies no limit or an
// unparseable one.
const defaultAttendanceLimit = 50

// AttendanceLog is the slice of the record store client used by the
// attendance endpoint.
type AttendanceLog interface {
	ListAttendance(ctx context.Context, limit int) ([]domain.AttendanceWithStudent, error)
}

// AttendanceHandler handles attendance listing
type AttendanceHandler struct {
	store  AttendanceLog
	logger *slog.Logger
}

func NewAttendanceHandler(store AttendanceLog, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		store:  store,
		logger: logger,
	}
}

// List GET /api/attendance?limit=N - attendance records joined with students
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultAttendanceLimit)
	if limit <= 0 {
		limit = defaultAttendanceLimit
	}

	records, err := h.store.ListAttendance(c.Context(), limit)
	if err != nil {
		return domain.ErrStoreFailure.WithError(err)
	}

	if records == nil {
		records = []domain.AttendanceWithStudent{}
	}
	return c.JSON(records)
}
