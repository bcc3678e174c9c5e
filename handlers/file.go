package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/models"
)

type createFileRequest struct {
	Name       string  `json:"name" binding:"required"`
	Size       int64   `json:"size"`
	UserID     uint    `json:"userId" binding:"required"`
	FolderID   *uint   `json:"folderId"`
	FolderName *string `json:"folderName"`
	Content    string  `json:"content"`
}

// CreateFile records a file row. Folder references are taken as given; they
// are never checked against the folder table.
func (h *Handler) CreateFile(c *gin.Context) {
	var req createFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	file := models.File{
		Name:       req.Name,
		Size:       req.Size,
		UserID:     req.UserID,
		FolderID:   req.FolderID,
		FolderName: req.FolderName,
		Content:    req.Content,
	}
	if err := h.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": file.ID})
}

type fileSummary struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Size       int64   `json:"size"`
	FolderID   *uint   `json:"folderId"`
	FolderName *string `json:"folderName"`
	Content    string  `json:"content"`
	Type       string  `json:"type"`
}

func (h *Handler) ListFiles(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var files []models.File
	if err := h.DB.Find(&files, "user_id = ?", uint(userID)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch error"})
		return
	}

	out := make([]fileSummary, 0, len(files))
	for _, f := range files {
		out = append(out, fileSummary{
			ID:         f.ID,
			Name:       f.Name,
			Size:       f.Size,
			FolderID:   f.FolderID,
			FolderName: f.FolderName,
			Content:    f.Content,
			Type:       FileType(f.Name),
		})
	}

	c.JSON(http.StatusOK, out)
}

type updateFileRequest struct {
	Content string `json:"content"`
	Size    int64  `json:"size"`
}

// UpdateFileContent overwrites content and size for any file id supplied.
// There is no ownership check here; callers are trusted the same way the
// rest of the API trusts them.
func (h *Handler) UpdateFileContent(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}

	var req updateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.DB.Model(&models.File{}).
		Where("file_id = ?", uint(fileID)).
		Updates(map[string]interface{}{
			"content":   req.Content,
			"file_size": req.Size,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
