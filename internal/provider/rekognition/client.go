// Package rekognition implements the face service client on top of AWS
// Rekognition: collection management, face enrollment, similarity search and
// face deletion, all scoped to a single configured collection.
package rekognition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/smithy-go"
)

const (
	errCodeAccessDenied     = "AccessDeniedException"
	errCodeResourceNotFound = "ResourceNotFoundException"
	errCodeResourceExists   = "ResourceAlreadyExistsException"
	errCodeInvalidParameter = "InvalidParameterException"
)

// RekognitionAPI is the subset of the AWS Rekognition client used by this
// package, extracted so tests can substitute a mock.
type RekognitionAPI interface {
	ListCollections(ctx context.Context, params *rekognition.ListCollectionsInput, optFns ...func(*rekognition.Options)) (*rekognition.ListCollectionsOutput, error)
	CreateCollection(ctx context.Context, params *rekognition.CreateCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateCollectionOutput, error)
	DeleteCollection(ctx context.Context, params *rekognition.DeleteCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.DeleteCollectionOutput, error)
	IndexFaces(ctx context.Context, params *rekognition.IndexFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.IndexFacesOutput, error)
	SearchFacesByImage(ctx context.Context, params *rekognition.SearchFacesByImageInput, optFns ...func(*rekognition.Options)) (*rekognition.SearchFacesByImageOutput, error)
	DeleteFaces(ctx context.Context, params *rekognition.DeleteFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.DeleteFacesOutput, error)
}

// Client wraps the AWS Rekognition client for a single collection
type Client struct {
	api    RekognitionAPI
	config Config
	logger *slog.Logger
}

// NewClient creates a new Rekognition client with the provided configuration.
// Explicit static credentials from the config take precedence; otherwise the
// AWS default credential chain is used.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		api:    rekognition.NewFromConfig(awsCfg),
		config: cfg,
		logger: logger,
	}, nil
}

// NewClientWithAPI wires the client onto an existing RekognitionAPI
// implementation. Used by tests.
func NewClientWithAPI(api RekognitionAPI, cfg Config, logger *slog.Logger) *Client {
	return &Client{
		api:    api,
		config: cfg,
		logger: logger,
	}
}

// EnsureCollection creates the configured collection if it does not exist.
// Existing collections are looked up first, so calling this repeatedly issues
// no creation request after the first success.
func (c *Client) EnsureCollection(ctx context.Context) error {
	input := &rekognition.ListCollectionsInput{
		MaxResults: aws.Int32(100),
	}

	paginator := rekognition.NewListCollectionsPaginator(c.api, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) && apiErr.ErrorCode() == errCodeAccessDenied {
				return fmt.Errorf("list collections: %w", ErrInvalidCredentials)
			}
			return fmt.Errorf("failed to list collections: %w", err)
		}

		if slices.Contains(output.CollectionIds, c.config.CollectionID) {
			c.logger.Debug("collection already exists",
				slog.String("collection_id", c.config.CollectionID),
			)
			return nil
		}
	}

	if _, err := c.api.CreateCollection(ctx, &rekognition.CreateCollectionInput{
		CollectionId: aws.String(c.config.CollectionID),
	}); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case errCodeResourceExists:
				// Created concurrently; the collection is there either way
				return nil
			case errCodeAccessDenied:
				return fmt.Errorf("create collection %s: %w", c.config.CollectionID, ErrInvalidCredentials)
			}
		}
		return fmt.Errorf("failed to create collection %s: %w", c.config.CollectionID, err)
	}

	c.logger.Info("collection created",
		slog.String("collection_id", c.config.CollectionID),
	)
	return nil
}

// DeleteCollection removes the configured collection and every face in it.
// Returns ErrCollectionNotFound if the collection does not exist.
func (c *Client) DeleteCollection(ctx context.Context) error {
	input := &rekognition.DeleteCollectionInput{
		CollectionId: aws.String(c.config.CollectionID),
	}

	if _, err := c.api.DeleteCollection(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case errCodeResourceNotFound:
				return fmt.Errorf("collection %s: %w", c.config.CollectionID, ErrCollectionNotFound)
			case errCodeAccessDenied:
				return fmt.Errorf("collection %s: %w", c.config.CollectionID, ErrInvalidCredentials)
			}
		}
		return fmt.Errorf("failed to delete collection %s: %w", c.config.CollectionID, err)
	}

	c.logger.Info("collection deleted",
		slog.String("collection_id", c.config.CollectionID),
	)
	return nil
}
