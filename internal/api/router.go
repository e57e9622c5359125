package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/facemark/facemark/internal/api/docs"
	"github.com/facemark/facemark/internal/api/handler"
	"github.com/facemark/facemark/internal/api/middleware"
)

// Dependencies groups the collaborators the router hands to the handlers.
// The record store client satisfies both directory interfaces.
type Dependencies struct {
	Students   handler.StudentDirectory
	Attendance handler.AttendanceLog
	Faces      handler.FaceService
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Facemark API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check
	healthHandler := handler.NewHealthHandler()
	r.app.Get("/health", healthHandler.Health)

	if r.deps == nil {
		return
	}

	studentHandler := handler.NewStudentHandler(r.deps.Students, r.logger)
	faceHandler := handler.NewFaceHandler(r.deps.Faces, r.logger)
	attendanceHandler := handler.NewAttendanceHandler(r.deps.Attendance, r.logger)

	api := r.app.Group("/api")
	api.Get("/students", studentHandler.List)
	api.Post("/students", studentHandler.Create)
	api.Post("/register-face", faceHandler.Register)
	api.Post("/recognize-face", faceHandler.Recognize)
	api.Get("/attendance", attendanceHandler.List)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
