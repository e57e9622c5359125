package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/facemark/facemark/internal/domain"
)

// StudentDirectory is the slice of the record store client used by student
// endpoints.
type StudentDirectory interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	CreateStudent(ctx context.Context, s domain.NewStudent) ([]domain.Student, error)
}

// StudentHandler handles student listing and registration
type StudentHandler struct {
	store  StudentDirectory
	logger *slog.Logger
}

func NewStudentHandler(store StudentDirectory, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		store:  store,
		logger: logger,
	}
}

// CreateStudentRequest is the payload for POST /api/students. All five
// fields are required.
type CreateStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Branch     string `json:"branch" validate:"required"`
	Year       string `json:"year" validate:"required"`
	RollNumber string `json:"roll_number" validate:"required"`
	Email      string `json:"email" validate:"required"`
}

// List GET /api/students - all student records
func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.store.ListStudents(c.Context())
	if err != nil {
		return domain.ErrStoreFailure.WithError(err)
	}

	if students == nil {
		students = []domain.Student{}
	}
	return c.JSON(students)
}

// Create POST /api/students - register a new student
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	if err := validate.Struct(req); err != nil {
		if field := firstMissingField(err); field != "" {
			return domain.ErrBadRequest.WithMessage("Missing required field: " + field)
		}
		return domain.ErrBadRequest.WithError(err)
	}

	created, err := h.store.CreateStudent(c.Context(), domain.NewStudent{
		Name:       req.Name,
		Branch:     req.Branch,
		Year:       req.Year,
		RollNumber: req.RollNumber,
		Email:      req.Email,
	})
	if err != nil {
		return domain.ErrStoreFailure.WithMessage("Failed to create student").WithError(err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   created,
	})
}
