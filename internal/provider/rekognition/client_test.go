package rekognition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CollectionID = "attendance_collection"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "attendance_collection", cfg.CollectionID)
	assert.Equal(t, float64(80), cfg.MatchThreshold)
}

func TestEnsureCollection_AlreadyExists(t *testing.T) {
	createCalls := 0
	mock := &mockRekognitionAPI{
		listCollectionsFunc: func(ctx context.Context, params *rekognition.ListCollectionsInput, optFns ...func(*rekognition.Options)) (*rekognition.ListCollectionsOutput, error) {
			return &rekognition.ListCollectionsOutput{
				CollectionIds: []string{"other", "attendance_collection"},
			}, nil
		},
		createCollectionFunc: func(ctx context.Context, params *rekognition.CreateCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateCollectionOutput, error) {
			createCalls++
			return &rekognition.CreateCollectionOutput{}, nil
		},
	}

	client := NewClientWithAPI(mock, testConfig(), testLogger())

	// Back-to-back calls: neither may issue a creation request
	require.NoError(t, client.EnsureCollection(context.Background()))
	require.NoError(t, client.EnsureCollection(context.Background()))
	assert.Equal(t, 0, createCalls)
}

func TestEnsureCollection_CreatesWhenAbsent(t *testing.T) {
	var createdID string
	mock := &mockRekognitionAPI{
		listCollectionsFunc: func(ctx context.Context, params *rekognition.ListCollectionsInput, optFns ...func(*rekognition.Options)) (*rekognition.ListCollectionsOutput, error) {
			return &rekognition.ListCollectionsOutput{CollectionIds: []string{"other"}}, nil
		},
		createCollectionFunc: func(ctx context.Context, params *rekognition.CreateCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateCollectionOutput, error) {
			createdID = aws.ToString(params.CollectionId)
			return &rekognition.CreateCollectionOutput{}, nil
		},
	}

	client := NewClientWithAPI(mock, testConfig(), testLogger())

	require.NoError(t, client.EnsureCollection(context.Background()))
	assert.Equal(t, "attendance_collection", createdID)
}

func TestEnsureCollection_ConcurrentCreateIsSuccess(t *testing.T) {
	mock := &mockRekognitionAPI{
		createCollectionFunc: func(ctx context.Context, params *rekognition.CreateCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateCollectionOutput, error) {
			return nil, &smithy.GenericAPIError{Code: errCodeResourceExists, Message: "already exists"}
		},
	}

	client := NewClientWithAPI(mock, testConfig(), testLogger())

	assert.NoError(t, client.EnsureCollection(context.Background()))
}

func TestEnsureCollection_AccessDenied(t *testing.T) {
	mock := &mockRekognitionAPI{
		listCollectionsFunc: func(ctx context.Context, params *rekognition.ListCollectionsInput, optFns ...func(*rekognition.Options)) (*rekognition.ListCollectionsOutput, error) {
			return nil, &smithy.GenericAPIError{Code: errCodeAccessDenied, Message: "denied"}
		},
	}

	client := NewClientWithAPI(mock, testConfig(), testLogger())

	err := client.EnsureCollection(context.Background())
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestDeleteCollection(t *testing.T) {
	var deletedID string
	mock := &mockRekognitionAPI{
		deleteCollectionFunc: func(ctx context.Context, params *rekognition.DeleteCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.DeleteCollectionOutput, error) {
			deletedID = aws.ToString(params.CollectionId)
			return &rekognition.DeleteCollectionOutput{}, nil
		},
	}

	client := NewClientWithAPI(mock, testConfig(), testLogger())

	require.NoError(t, client.DeleteCollection(context.Background()))
	assert.Equal(t, "attendance_collection", deletedID)
}

func TestDeleteCollection_NotFound(t *testing.T) {
	mock := &mockRekognitionAPI{
		deleteCollectionFunc: func(ctx context.Context, params *rekognition.DeleteCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.DeleteCollectionOutput, error) {
			return nil, &smithy.GenericAPIError{Code: errCodeResourceNotFound, Message: "not found"}
		},
	}

	client := NewClientWithAPI(mock, testConfig(), testLogger())

	err := client.DeleteCollection(context.Background())
	assert.True(t, errors.Is(err, ErrCollectionNotFound))
}
