package store

import (
	"context"
	"strings"

	"github.com/harshit2786/pdf-chat-be/internal/models"
)

// CountFolders returns how many of the user's folders match the search text.
// The match is a case-insensitive substring match on the folder name.
func (s *Store) CountFolders(ctx context.Context, userID uint, search string) (int64, error) {
	var total int64
	err := s.DB.WithContext(ctx).Model(&models.Folder{}).
		Where("user_id = ?", userID).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%").
		Count(&total).Error
	return total, err
}

// ListFolders returns one page of the user's folders matching the search
// text, newest first, each annotated with its PDF count.
func (s *Store) ListFolders(ctx context.Context, userID uint, search string, offset, limit int) ([]models.FolderSummary, error) {
	var folders []models.Folder
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&folders).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]models.FolderSummary, 0, len(folders))
	for _, f := range folders {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.PDF{}).
			Where("folder_id = ?", f.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		summaries = append(summaries, models.FolderSummary{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			CreatedAt:   f.CreatedAt,
			Color:       f.Color,
			PDFNum:      count,
		})
	}

	return summaries, nil
}

// CreateFolder inserts a new folder row.
func (s *Store) CreateFolder(ctx context.Context, folder *models.Folder) error {
	return s.DB.WithContext(ctx).Create(folder).Error
}

// GetFolderByID looks a folder up by primary key regardless of owner. The
// service layer compares the owner so that a non-owned folder and a missing
// folder surface identically.
func (s *Store) GetFolderByID(ctx context.Context, id uint) (*models.Folder, error) {
	var folder models.Folder
	if err := s.DB.WithContext(ctx).First(&folder, id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder replaces the mutable fields of a folder.
func (s *Store) UpdateFolder(ctx context.Context, folder *models.Folder) error {
	return s.DB.WithContext(ctx).Model(folder).
		Updates(map[string]interface{}{
			"name":        folder.Name,
			"description": folder.Description,
			"color":       folder.Color,
		}).Error
}

// DeleteFolder removes a folder row.
func (s *Store) DeleteFolder(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Delete(&models.Folder{}, id).Error
}

// ListPDFsByFolder returns all PDF records in a folder.
func (s *Store) ListPDFsByFolder(ctx context.Context, folderID uint) ([]models.PDF, error) {
	var pdfs []models.PDF
	err := s.DB.WithContext(ctx).Where("folder_id = ?", folderID).Find(&pdfs).Error
	return pdfs, err
}

// DeletePDFsByFolder removes all PDF records in a folder.
func (s *Store) DeletePDFsByFolder(ctx context.Context, folderID uint) error {
	return s.DB.WithContext(ctx).Where("folder_id = ?", folderID).Delete(&models.PDF{}).Error
}
