package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/models"
)

type createFolderRequest struct {
	Name   string `json:"name" binding:"required"`
	UserID uint   `json:"userId" binding:"required"`
}

// CreateFolder inserts unconditionally; duplicate names per user are allowed.
func (h *Handler) CreateFolder(c *gin.Context) {
	var req createFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	folder := models.Folder{Name: req.Name, UserID: req.UserID}
	if err := h.DB.Create(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, folder)
}

func (h *Handler) ListFolders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	folders := []models.Folder{}
	if err := h.DB.Find(&folders, "user_id = ?", uint(userID)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch error"})
		return
	}

	c.JSON(http.StatusOK, folders)
}
