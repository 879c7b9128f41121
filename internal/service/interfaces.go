package service

import (
	"context"
	"io"

	"github.com/harshit2786/pdf-chat-be/internal/models"
)

// ObjectStore is the slice of the blob storage adapter the services need.
type ObjectStore interface {
	Upload(ctx context.Context, blobName string, r io.Reader, size int64, contentType string) (string, error)
	Download(ctx context.Context, blobName string) (io.ReadCloser, error)
	Delete(ctx context.Context, blobName string) error
}

// VectorIndex is the slice of the vector index adapter the services need.
// Retrieval lives in the chat package; the services only delete.
type VectorIndex interface {
	DeleteByPDFID(ctx context.Context, pdfID string) error
	DeleteByPDFIDs(ctx context.Context, pdfIDs []string) error
}

// JobQueue accepts ingestion jobs for the embedding worker.
type JobQueue interface {
	Publish(ctx context.Context, job models.IngestionJob) error
}
