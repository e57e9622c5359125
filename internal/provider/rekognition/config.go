package rekognition

// Config holds configuration for the AWS Rekognition face client
type Config struct {
	// Region is the AWS region where Rekognition is used (e.g., "us-east-1")
	Region string

	// AccessKeyID and SecretAccessKey are optional explicit credentials.
	// When empty, the AWS default credential chain is used.
	AccessKeyID     string
	SecretAccessKey string

	// CollectionID is the name of the face collection scoping every index
	// and search operation.
	CollectionID string

	// MatchThreshold is the minimum similarity (0-100) a candidate must
	// reach to be returned by SearchFaces.
	MatchThreshold float64
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Region:         "us-east-1",
		CollectionID:   "attendance_collection",
		MatchThreshold: 80,
	}
}

// maxSearchResults caps the number of candidates a search may return.
const maxSearchResults = 5

// unknownExternalID is the sentinel ExternalImageId used when a face is
// enrolled without a student identifier.
const unknownExternalID = "unknown"
