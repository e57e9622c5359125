package rekognition

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/facemark/facemark/internal/domain"
)

// decodeImage turns a base64 payload into raw image bytes
func decodeImage(imageBase64 string) ([]byte, error) {
	imageBytes, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(imageBytes) == 0 {
		return nil, ErrInvalidImage
	}
	return imageBytes, nil
}

// IndexFaces enrolls the faces found in a base64-encoded image into the
// collection, requesting full detection attributes. externalID tags the
// enrolled faces so later searches can resolve them back to a student; when
// empty, the "unknown" sentinel is used. Returns ErrNoFaceDetected when the
// image contains no indexable face.
func (c *Client) IndexFaces(ctx context.Context, imageBase64, externalID string) (*domain.Enrollment, error) {
	imageBytes, err := decodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	if externalID == "" {
		externalID = unknownExternalID
	}

	input := &rekognition.IndexFacesInput{
		CollectionId:        aws.String(c.config.CollectionID),
		Image:               &types.Image{Bytes: imageBytes},
		ExternalImageId:     aws.String(externalID),
		DetectionAttributes: []types.Attribute{types.AttributeAll},
	}

	output, err := c.api.IndexFaces(ctx, input)
	if err != nil {
		return nil, c.wrapFaceError("index faces", err)
	}

	if len(output.FaceRecords) == 0 {
		return nil, ErrNoFaceDetected
	}

	faceIDs := make([]string, 0, len(output.FaceRecords))
	for _, record := range output.FaceRecords {
		faceIDs = append(faceIDs, aws.ToString(record.Face.FaceId))
	}

	c.logger.Info("faces enrolled",
		slog.String("collection_id", c.config.CollectionID),
		slog.String("external_id", externalID),
		slog.Int("count", len(faceIDs)),
	)

	return &domain.Enrollment{
		FaceIDs: faceIDs,
		Count:   len(faceIDs),
	}, nil
}

// SearchFaces searches the collection for faces similar to the one in a
// base64-encoded image. Candidates below the configured threshold are
// filtered by the service; at most five are returned, ranked by descending
// similarity. Returns ErrNoFaceDetected when the input image contains no
// face and ErrNoMatchFound when no candidate passes the threshold.
func (c *Client) SearchFaces(ctx context.Context, imageBase64 string) ([]domain.FaceMatch, error) {
	imageBytes, err := decodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	input := &rekognition.SearchFacesByImageInput{
		CollectionId:       aws.String(c.config.CollectionID),
		Image:              &types.Image{Bytes: imageBytes},
		FaceMatchThreshold: aws.Float32(float32(c.config.MatchThreshold)),
		MaxFaces:           aws.Int32(maxSearchResults),
	}

	output, err := c.api.SearchFacesByImage(ctx, input)
	if err != nil {
		return nil, c.wrapFaceError("search faces", err)
	}

	if len(output.FaceMatches) == 0 {
		return nil, ErrNoMatchFound
	}

	matches := make([]domain.FaceMatch, 0, len(output.FaceMatches))
	for _, match := range output.FaceMatches {
		externalID := aws.ToString(match.Face.ExternalImageId)
		if externalID == "" {
			externalID = unknownExternalID
		}
		matches = append(matches, domain.FaceMatch{
			FaceID:     aws.ToString(match.Face.FaceId),
			Similarity: float64(aws.ToFloat32(match.Similarity)),
			ExternalID: externalID,
		})
	}

	c.logger.Info("faces matched",
		slog.String("collection_id", c.config.CollectionID),
		slog.Int("count", len(matches)),
	)

	return matches, nil
}

// DeleteFaces removes faces from the collection by their internal ids and
// returns the ids actually deleted.
func (c *Client) DeleteFaces(ctx context.Context, faceIDs []string) ([]string, error) {
	input := &rekognition.DeleteFacesInput{
		CollectionId: aws.String(c.config.CollectionID),
		FaceIds:      faceIDs,
	}

	output, err := c.api.DeleteFaces(ctx, input)
	if err != nil {
		return nil, c.wrapFaceError("delete faces", err)
	}

	c.logger.Info("faces deleted",
		slog.String("collection_id", c.config.CollectionID),
		slog.Int("count", len(output.DeletedFaces)),
	)

	return output.DeletedFaces, nil
}

// wrapFaceError maps AWS API errors to the package sentinels. An
// InvalidParameterException from an image-bearing call means Rekognition
// found no face in the input.
func (c *Client) wrapFaceError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case errCodeInvalidParameter:
			return fmt.Errorf("%w: %s", ErrNoFaceDetected, apiErr.ErrorMessage())
		case errCodeResourceNotFound:
			return fmt.Errorf("%s: collection %s: %w", op, c.config.CollectionID, ErrCollectionNotFound)
		case errCodeAccessDenied:
			return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
