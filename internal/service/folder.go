package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/internal/storage"
	"github.com/harshit2786/pdf-chat-be/internal/store"
	"github.com/harshit2786/pdf-chat-be/pkg/logger"
	"gorm.io/gorm"
)

// PageSize is the fixed number of folders per list page.
const PageSize = 6

// FolderService implements folder CRUD with the storage and index cascades.
type FolderService struct {
	store   *store.Store
	objects ObjectStore
	index   VectorIndex
	log     *logger.Logger
}

// NewFolderService creates a new FolderService.
func NewFolderService(s *store.Store, objects ObjectStore, index VectorIndex, log *logger.Logger) *FolderService {
	return &FolderService{
		store:   s,
		objects: objects,
		index:   index,
		log:     log,
	}
}

// FolderPage is one page of the folder listing.
type FolderPage struct {
	CurrentPage int                    `json:"currentPage"`
	TotalPages  int                    `json:"totalPages"`
	Folders     []models.FolderSummary `json:"folders"`
}

// FolderDetail is a folder plus the metadata of its PDFs.
type FolderDetail struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	PDFs        []models.PDFMeta `json:"pdfs"`
}

// List returns one page of the user's folders matching the search text.
// A page number beyond the last available page resets to page 1; that is the
// established behavior of this API, not a clamp to the last page.
func (s *FolderService) List(ctx context.Context, userID uint, page int, search string) (*FolderPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.store.CountFolders(ctx, userID, search)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	currentPage := page
	if currentPage > totalPages {
		currentPage = 1
	}

	folders, err := s.store.ListFolders(ctx, userID, search, (currentPage-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}

	return &FolderPage{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Folders:     folders,
	}, nil
}

// Create adds a new folder stamped with the current epoch seconds.
func (s *FolderService) Create(ctx context.Context, userID uint, name, description, color string) (*models.Folder, error) {
	folder := &models.Folder{
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   time.Now().Unix(),
	}
	if err := s.store.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// Update replaces the mutable fields of a folder the caller owns.
func (s *FolderService) Update(ctx context.Context, userID, folderID uint, name, description, color string) (*models.Folder, error) {
	folder, err := s.ownedFolder(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	folder.Name = name
	folder.Description = description
	folder.Color = color
	if err := s.store.UpdateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// Delete removes a folder and everything hanging off it: index entries first,
// then blobs, then the database rows. Blob failures are logged and ignored.
func (s *FolderService) Delete(ctx context.Context, userID, folderID uint) error {
	if _, err := s.ownedFolder(ctx, userID, folderID); err != nil {
		return err
	}

	pdfs, err := s.store.ListPDFsByFolder(ctx, folderID)
	if err != nil {
		return err
	}

	if len(pdfs) > 0 {
		pdfIDs := make([]string, 0, len(pdfs))
		for _, pdf := range pdfs {
			pdfIDs = append(pdfIDs, fmt.Sprintf("%d", pdf.ID))
		}
		if err := s.index.DeleteByPDFIDs(ctx, pdfIDs); err != nil {
			return fmt.Errorf("failed to delete index entries for folder %d: %w", folderID, err)
		}
	}

	for _, pdf := range pdfs {
		blobName, err := storage.BlobNameFromURL(pdf.URL)
		if err != nil {
			s.log.WithError(err).WithField("url", pdf.URL).Warn("Failed to resolve blob name during folder delete")
			continue
		}
		if err := s.objects.Delete(ctx, blobName); err != nil {
			s.log.WithError(err).WithField("blob", blobName).Warn("Failed to delete PDF blob during folder delete")
		}
	}

	if err := s.store.DeletePDFsByFolder(ctx, folderID); err != nil {
		return err
	}
	return s.store.DeleteFolder(ctx, folderID)
}

// Get returns a folder the caller owns together with its PDFs' metadata.
func (s *FolderService) Get(ctx context.Context, userID, folderID uint) (*FolderDetail, error) {
	folder, err := s.store.GetFolderByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if folder.UserID != userID {
		return nil, ErrNotFound
	}

	pdfs, err := s.store.ListPDFsByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	metas := make([]models.PDFMeta, 0, len(pdfs))
	for _, pdf := range pdfs {
		metas = append(metas, models.PDFMeta{
			ID:         pdf.ID,
			FileName:   pdf.FileName,
			URL:        pdf.URL,
			Status:     pdf.Status,
			UploadedAt: pdf.UploadedAt,
			TotalPages: pdf.TotalPages,
		})
	}

	return &FolderDetail{
		ID:          folder.ID,
		Name:        folder.Name,
		Description: folder.Description,
		Color:       folder.Color,
		PDFs:        metas,
	}, nil
}

// ownedFolder loads a folder and verifies ownership. Missing and non-owned
// both come back as ErrForbidden so existence is never leaked.
func (s *FolderService) ownedFolder(ctx context.Context, userID, folderID uint) (*models.Folder, error) {
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
	return folder, nil
}
