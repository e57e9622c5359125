package rekognition

import "errors"

var (
	// ErrCollectionNotFound indicates that the configured collection does not exist
	ErrCollectionNotFound = errors.New("rekognition collection not found")

	// ErrCollectionAlreadyExists indicates that the collection already exists
	ErrCollectionAlreadyExists = errors.New("rekognition collection already exists")

	// ErrInvalidCredentials indicates that AWS credentials are invalid or missing
	ErrInvalidCredentials = errors.New("invalid or missing AWS credentials")

	// ErrInvalidImage indicates the image payload was not valid base64
	ErrInvalidImage = errors.New("invalid base64 image payload")

	// ErrNoFaceDetected indicates that no face was found in the provided image
	ErrNoFaceDetected = errors.New("no faces detected in the image")

	// ErrNoMatchFound indicates a search returned zero candidates above the threshold
	ErrNoMatchFound = errors.New("no matching faces found in the collection")
)
