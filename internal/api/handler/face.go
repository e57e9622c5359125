package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/facemark/facemark/internal/domain"
)

// FaceService runs the registration and recognition workflows.
type FaceService interface {
	RegisterFace(ctx context.Context, image, rollNumber string) (*domain.Enrollment, error)
	RecognizeFace(ctx context.Context, image string) (*domain.Recognition, error)
}

// FaceHandler handles face registration and recognition requests
type FaceHandler struct {
	service FaceService
	logger  *slog.Logger
}

func NewFaceHandler(service FaceService, logger *slog.Logger) *FaceHandler {
	return &FaceHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterFaceRequest is the payload for POST /api/register-face. The image
// is base64, optionally carrying a data-URI prefix.
type RegisterFaceRequest struct {
	Image      string `json:"image" validate:"required"`
	RollNumber string `json:"roll_number" validate:"required"`
}

// RecognizeFaceRequest is the payload for POST /api/recognize-face.
type RecognizeFaceRequest struct {
	Image string `json:"image" validate:"required"`
}

// Register POST /api/register-face - enroll a face for an existing student
func (h *FaceHandler) Register(c *fiber.Ctx) error {
	var req RegisterFaceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithMessage("Missing image or roll_number")
	}
	if err := validate.Struct(req); err != nil {
		return domain.ErrBadRequest.WithMessage("Missing image or roll_number")
	}

	enrollment, err := h.service.RegisterFace(c.Context(), req.Image, req.RollNumber)
	if err != nil {
		return faceResultError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"face_ids": enrollment.FaceIDs,
		"count":    enrollment.Count,
	})
}

// Recognize POST /api/recognize-face - match a face and log attendance
func (h *FaceHandler) Recognize(c *fiber.Ctx) error {
	var req RecognizeFaceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithMessage("Missing image")
	}
	if err := validate.Struct(req); err != nil {
		return domain.ErrBadRequest.WithMessage("Missing image")
	}

	rec, err := h.service.RecognizeFace(c.Context(), req.Image)
	if err != nil {
		return faceResultError(c, err)
	}

	// Top match resolved to a known student: attendance was logged and the
	// response embeds both the match and the student.
	if rec.Student != nil {
		return c.JSON(fiber.Map{
			"status":  "success",
			"match":   rec.Match,
			"student": rec.Student,
		})
	}

	// A face matched but no student record carries its external id; hand
	// back the raw search result.
	return c.JSON(fiber.Map{
		"status":  "success",
		"matches": rec.Matches,
	})
}

// faceResultError renders face-service failures. Domain-empty results (no
// face detected, no match found) and other upstream face-service errors are
// ordinary error results, not protocol failures: they are passed through
// verbatim with a 200. AppErrors (validation, not-found) keep their status.
func faceResultError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "error",
		"message": err.Error(),
	})
}
