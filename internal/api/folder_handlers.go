package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harshit2786/pdf-chat-be/internal/auth"
	"github.com/harshit2786/pdf-chat-be/internal/service"
)

// FolderRequest is the JSON body of folder create and update.
type FolderRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ListFolders handles GET /folder.
func (h *Handler) ListFolders(c *gin.Context) {
	userID, _ := auth.UserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	search := c.Query("query")

	result, err := h.folderService.List(c.Request.Context(), userID, page, search)
	if err != nil {
		h.log.WithError(err).Error("Failed to list folders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateFolder handles POST /folder.
func (h *Handler) CreateFolder(c *gin.Context) {
	var req FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID, _ := auth.UserID(c)
	folder, err := h.folderService.Create(c.Request.Context(), userID, req.Name, req.Description, req.Color)
	if err != nil {
		h.log.WithError(err).Error("Failed to create folder")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		return
	}

	c.JSON(http.StatusOK, folder)
}

// UpdateFolder handles PUT /folder/:id.
func (h *Handler) UpdateFolder(c *gin.Context) {
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	var req FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID, _ := auth.UserID(c)
	folder, err := h.folderService.Update(c.Request.Context(), userID, uint(folderID), req.Name, req.Description, req.Color)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		h.log.WithError(err).Error("Failed to update folder")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update folder"})
		return
	}

	c.JSON(http.StatusOK, folder)
}

// DeleteFolder handles DELETE /folder/:id.
func (h *Handler) DeleteFolder(c *gin.Context) {
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	userID, _ := auth.UserID(c)
	if err := h.folderService.Delete(c.Request.Context(), userID, uint(folderID)); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		h.log.WithError(err).Error("Failed to delete folder")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete folder and PDFs"})
		return
	}

	c.Status(http.StatusOK)
}

// GetFolder handles GET /folder/:id.
func (h *Handler) GetFolder(c *gin.Context) {
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	userID, _ := auth.UserID(c)
	detail, err := h.folderService.Get(c.Request.Context(), userID, uint(folderID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
			return
		}
		h.log.WithError(err).Error("Failed to load folder")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
