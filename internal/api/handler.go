package api

import (
	"github.com/harshit2786/pdf-chat-be/internal/service"
	"github.com/harshit2786/pdf-chat-be/pkg/logger"
)

// Handler bundles the services behind the REST endpoints.
type Handler struct {
	authService   *service.AuthService
	folderService *service.FolderService
	pdfService    *service.PDFService
	log           *logger.Logger
}

// NewHandler creates a new Handler.
func NewHandler(authService *service.AuthService, folderService *service.FolderService, pdfService *service.PDFService, log *logger.Logger) *Handler {
	return &Handler{
		authService:   authService,
		folderService: folderService,
		pdfService:    pdfService,
		log:           log,
	}
}
