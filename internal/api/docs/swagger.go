package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// StudentResponse represents a stored student record
type StudentResponse struct {
	ID         string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string `json:"name" example:"Priya Sharma"`
	Branch     string `json:"branch" example:"CSE"`
	Year       string `json:"year" example:"3"`
	RollNumber string `json:"roll_number" example:"21CS045"`
	Email      string `json:"email" example:"priya@example.edu"`
	CreatedAt  string `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// CreateStudentBody is the payload for student registration
type CreateStudentBody struct {
	Name       string `json:"name" example:"Priya Sharma"`
	Branch     string `json:"branch" example:"CSE"`
	Year       string `json:"year" example:"3"`
	RollNumber string `json:"roll_number" example:"21CS045"`
	Email      string `json:"email" example:"priya@example.edu"`
}

// CreateStudentResponse wraps the stored representation
type CreateStudentResponse struct {
	Status string            `json:"status" example:"success"`
	Data   []StudentResponse `json:"data"`
}

// RegisterFaceBody is the payload for face registration
type RegisterFaceBody struct {
	Image      string `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
	RollNumber string `json:"roll_number" example:"21CS045"`
}

// RegisterFaceResponse reports the enrolled face ids
type RegisterFaceResponse struct {
	Status  string   `json:"status" example:"success"`
	FaceIDs []string `json:"face_ids"`
	Count   int      `json:"count" example:"1"`
}

// RecognizeFaceBody is the payload for face recognition
type RecognizeFaceBody struct {
	Image string `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
}

// FaceMatchData is one search candidate
type FaceMatchData struct {
	FaceID     string  `json:"face_id" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Similarity float64 `json:"similarity" example:"93.2"`
	ExternalID string  `json:"external_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// RecognizeFaceResponse embeds the top match and the resolved student
type RecognizeFaceResponse struct {
	Status  string          `json:"status" example:"success"`
	Match   FaceMatchData   `json:"match"`
	Student StudentResponse `json:"student"`
}

// AttendanceResponse is one attendance row joined with student data
type AttendanceResponse struct {
	ID         string  `json:"id" example:"9f8e7d6c-5b4a-3210-fedc-ba0987654321"`
	StudentID  string  `json:"student_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Confidence float64 `json:"confidence" example:"93.2"`
	CreatedAt  string  `json:"created_at" example:"2024-01-01T09:00:00Z"`
	Name       string  `json:"name" example:"Priya Sharma"`
	Branch     string  `json:"branch" example:"CSE"`
	Year       string  `json:"year" example:"3"`
	RollNumber string  `json:"roll_number" example:"21CS045"`
	Email      string  `json:"email" example:"priya@example.edu"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Student not found"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Facemark Attendance API",
		Version:     "v1.0.0",
		Description: "Face-recognition attendance service: enrolls student faces into an AWS Rekognition collection and logs attendance on recognition",
		Host:        "localhost:5000",
		Path:        "/",
	})

	endpoints := []*endpoint.EndPoint{
		// GET /health - Health check
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Health check"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is healthy"),
			}),
		),

		// GET /api/students - List students
		endpoint.New(
			endpoint.GET,
			"/api/students",
			endpoint.WithTags("Students"),
			endpoint.WithSummary("List all students"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StudentResponse{}, "200", "Student records (array)"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Status: "error", Message: "Failed to reach the record store"}, "500", "Internal Server Error"),
			}),
		),

		// POST /api/students - Create student
		endpoint.New(
			endpoint.POST,
			"/api/students",
			endpoint.WithTags("Students"),
			endpoint.WithSummary("Register a new student"),
			endpoint.WithDescription("Creates a student record in the record store. All five fields are required."),
			endpoint.WithBody(CreateStudentBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CreateStudentResponse{}, "200", "Student created"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Status: "error", Message: "Missing required field: name"}, "400", "Bad Request"),
				response.New(ErrorResponse{Status: "error", Message: "Failed to create student"}, "500", "Internal Server Error"),
			}),
		),

		// POST /api/register-face - Register face
		endpoint.New(
			endpoint.POST,
			"/api/register-face",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Enroll a face for an existing student"),
			endpoint.WithDescription("Looks up the student by roll number and indexes the face image into the collection, tagged with the student id. The image may carry a data-URI prefix."),
			endpoint.WithBody(RegisterFaceBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RegisterFaceResponse{}, "200", "Face enrolled"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Status: "error", Message: "Missing image or roll_number"}, "400", "Bad Request"),
				response.New(ErrorResponse{Status: "error", Message: "Student not found"}, "404", "Not Found"),
			}),
		),

		// POST /api/recognize-face - Recognize face
		endpoint.New(
			endpoint.POST,
			"/api/recognize-face",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Recognize a face and log attendance"),
			endpoint.WithDescription("Searches the collection for the face in the image. On a match the student is fetched and an attendance record is written. Domain-empty results (no face, no match) are returned as 200 error results."),
			endpoint.WithBody(RecognizeFaceBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RecognizeFaceResponse{}, "200", "Face recognized and attendance logged"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Status: "error", Message: "Missing image"}, "400", "Bad Request"),
			}),
		),

		// GET /api/attendance - List attendance
		endpoint.New(
			endpoint.GET,
			"/api/attendance",
			endpoint.WithTags("Attendance"),
			endpoint.WithSummary("List attendance records with student data"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Maximum number of records (default: 50)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AttendanceResponse{}, "200", "Attendance records (array), most recent first"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Status: "error", Message: "Failed to reach the record store"}, "500", "Internal Server Error"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
