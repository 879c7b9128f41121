package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/harshit2786/pdf-chat-be/internal/auth"
	"github.com/harshit2786/pdf-chat-be/internal/service"
)

// UploadPDF handles POST /pdf/upload/:folderId (multipart, field "file").
func (h *Handler) UploadPDF(c *gin.Context) {
	folderID, err := strconv.ParseUint(c.Param("folderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	// The declared MIME type is client-controlled, so sniff the content too.
	mtype, err := mimetype.DetectReader(file)
	if err != nil || !mtype.Is("application/pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.log.WithError(err).Error("Failed to rewind uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	userID, _ := auth.UserID(c)
	pdf, err := h.pdfService.Upload(c.Request.Context(), userID, uint(folderID), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized or folder not found"})
			return
		}
		h.log.WithError(err).Error("Failed to upload PDF")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "PDF uploaded successfully",
		"pdf":     pdf,
	})
}

// DeletePDF handles DELETE /pdf/:id.
func (h *Handler) DeletePDF(c *gin.Context) {
	pdfID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pdf id"})
		return
	}

	userID, _ := auth.UserID(c)
	if err := h.pdfService.Delete(c.Request.Context(), userID, uint(pdfID)); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden or PDF not found"})
			return
		}
		h.log.WithError(err).Error("Failed to delete PDF")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "PDF deleted successfully"})
}

// DownloadPDF handles GET /pdf/:id, streaming the blob with attachment
// disposition.
func (h *Handler) DownloadPDF(c *gin.Context) {
	pdfID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pdf id"})
		return
	}

	userID, _ := auth.UserID(c)
	blob, fileName, err := h.pdfService.Download(c.Request.Context(), userID, uint(pdfID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden or PDF not found"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		default:
			h.log.WithError(err).Error("Failed to download PDF")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download file"})
		}
		return
	}
	defer blob.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, blob); err != nil {
		h.log.WithError(err).Warn("PDF download interrupted")
	}
}
