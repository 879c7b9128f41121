package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/internal/storage"
	"github.com/harshit2786/pdf-chat-be/internal/store"
	"github.com/harshit2786/pdf-chat-be/pkg/logger"
	"gorm.io/gorm"
)

// PDFService implements upload, delete and download of PDF documents.
type PDFService struct {
	store   *store.Store
	objects ObjectStore
	index   VectorIndex
	jobs    JobQueue
	log     *logger.Logger
}

// NewPDFService creates a new PDFService.
func NewPDFService(s *store.Store, objects ObjectStore, index VectorIndex, jobs JobQueue, log *logger.Logger) *PDFService {
	return &PDFService{
		store:   s,
		objects: objects,
		index:   index,
		jobs:    jobs,
		log:     log,
	}
}

// Upload streams a PDF to object storage, records it and enqueues an
// ingestion job. Nothing is written before the ownership check passes, so a
// storage failure needs no compensating cleanup.
func (s *PDFService) Upload(ctx context.Context, userID, folderID uint, fileName string, r io.Reader, size int64) (*models.PDF, error) {
	folder, err := s.store.GetFolderByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if folder.UserID != userID {
		return nil, ErrForbidden
	}

	// Timestamp prefix keeps repeated uploads of the same file from
	// colliding in the bucket.
	blobName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), fileName)

	url, err := s.objects.Upload(ctx, blobName, r, size, "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob: %w", err)
	}

	pdf := &models.PDF{
		UserID:     userID,
		FolderID:   folderID,
		FileName:   fileName,
		URL:        url,
		Status:     models.StatusInQueue,
		TotalPages: 0,
		UploadedAt: time.Now().Unix(),
	}
	if err := s.store.CreatePDF(ctx, pdf); err != nil {
		return nil, err
	}

	job := models.IngestionJob{
		JobID:    uuid.NewString(),
		PDFID:    pdf.ID,
		UserID:   userID,
		URL:      url,
		BlobName: blobName,
	}
	if err := s.jobs.Publish(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue ingestion job: %w", err)
	}

	return pdf, nil
}

// Delete removes a PDF the caller owns: blob first (best effort), then the
// index entries, then the authoritative record.
func (s *PDFService) Delete(ctx context.Context, userID, pdfID uint) error {
	pdf, err := s.ownedPDF(ctx, userID, pdfID)
	if err != nil {
		return err
	}

	blobName, err := storage.BlobNameFromURL(pdf.URL)
	if err != nil {
		s.log.WithError(err).WithField("url", pdf.URL).Warn("Failed to resolve blob name during PDF delete")
	} else if err := s.objects.Delete(ctx, blobName); err != nil {
		s.log.WithError(err).WithField("blob", blobName).Warn("Failed to delete PDF blob")
	}

	if err := s.index.DeleteByPDFID(ctx, fmt.Sprintf("%d", pdfID)); err != nil {
		return fmt.Errorf("failed to delete index entries for pdf %d: %w", pdfID, err)
	}

	return s.store.DeletePDF(ctx, pdfID)
}

// Download opens the blob behind a PDF the caller owns. A record whose blob
// is gone surfaces as ErrNotFound; the inconsistency is detected, not
// repaired.
func (s *PDFService) Download(ctx context.Context, userID, pdfID uint) (io.ReadCloser, string, error) {
	pdf, err := s.ownedPDF(ctx, userID, pdfID)
	if err != nil {
		return nil, "", err
	}

	blobName, err := storage.BlobNameFromURL(pdf.URL)
	if err != nil {
		return nil, "", err
	}

	blob, err := s.objects.Download(ctx, blobName)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	return blob, pdf.FileName, nil
}

func (s *PDFService) ownedPDF(ctx context.Context, userID, pdfID uint) (*models.PDF, error) {
	pdf, err := s.store.GetPDFByID(ctx, pdfID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if pdf.UserID != userID {
		return nil, ErrForbidden
	}
	return pdf, nil
}
