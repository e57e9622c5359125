package domain

// FaceMatch is a single candidate returned by a collection search, ranked by
// the face service (descending similarity). ExternalID carries the student id
// set at enrollment, or "unknown" when the face was enrolled without one.
type FaceMatch struct {
	FaceID     string  `json:"face_id"`
	Similarity float64 `json:"similarity"`
	ExternalID string  `json:"external_id"`
}

// Enrollment is the outcome of indexing an image into the collection.
type Enrollment struct {
	FaceIDs []string `json:"face_ids"`
	Count   int      `json:"count"`
}

// Recognition is the outcome of the recognition workflow. Match and Student
// are set only when the top match resolved to a known student; Matches always
// holds the raw search candidates.
type Recognition struct {
	Matches []FaceMatch
	Match   *FaceMatch
	Student *Student
}
