package store

import (
	"context"

	"github.com/harshit2786/pdf-chat-be/internal/models"
)

// CreatePDF inserts a new PDF record.
func (s *Store) CreatePDF(ctx context.Context, pdf *models.PDF) error {
	return s.DB.WithContext(ctx).Create(pdf).Error
}

// GetPDFByID looks a PDF record up by primary key regardless of owner.
func (s *Store) GetPDFByID(ctx context.Context, id uint) (*models.PDF, error) {
	var pdf models.PDF
	if err := s.DB.WithContext(ctx).First(&pdf, id).Error; err != nil {
		return nil, err
	}
	return &pdf, nil
}

// DeletePDF removes a PDF record.
func (s *Store) DeletePDF(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Delete(&models.PDF{}, id).Error
}
