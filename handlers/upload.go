package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/drive"
	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/models"
)

const uploadTmpDir = "uploads"

// driveUploadTimeout bounds the external call; the rest of the API has no
// timeouts beyond the database driver's defaults.
const driveUploadTimeout = 2 * time.Minute

// Upload stores the multipart payload on the external drive and records a
// pointer row. The local temp copy is removed on every exit path.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	tmpPath := filepath.Join(uploadTmpDir, shortuuid.New()+"_"+filepath.Base(header.Filename))
	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	defer os.Remove(tmpPath)

	if h.Drive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Drive is not configured"})
		return
	}

	src, err := os.Open(tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), driveUploadTimeout)
	defer cancel()

	objectID, err := h.Drive.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	var folderID *uint
	if raw := c.PostForm("folderId"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(v)
			folderID = &id
		}
	}
	var folderName *string
	if raw := c.PostForm("folderName"); raw != "" {
		folderName = &raw
	}

	file := models.File{
		Name:       header.Filename,
		Size:       header.Size,
		UserID:     uint(userID),
		FolderID:   folderID,
		FolderName: folderName,
		Content:    drive.Sentinel(objectID),
	}
	if err := h.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fileId": objectID, "dbFileId": file.ID})
}
