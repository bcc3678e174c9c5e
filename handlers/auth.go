package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/models"
)

const defaultPlanName = "Standard"

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var existing models.User
	err := h.DB.Where("name = ? OR e_mail = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	user := models.User{
		Name:     req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": gin.H{
		"id":       user.ID,
		"username": user.Name,
		"email":    user.Email,
	}})
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Login accepts either the display name or the e-mail as identifier. When
// both match different users the first row wins.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user models.User
	err := h.DB.
		Where("(name = ? OR e_mail = ?) AND password = ?", req.Identifier, req.Identifier, req.Password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":       user.ID,
		"username": user.Name,
		"email":    user.Email,
		"plan":     h.planName(user.PlanID),
	}})
}

// planName resolves a user's plan reference to its display name, falling
// back to the default tier when the reference is absent or broken.
func (h *Handler) planName(planID *uint) string {
	if planID == nil {
		return defaultPlanName
	}
	var plan models.Plan
	if err := h.DB.First(&plan, "plan_id = ?", *planID).Error; err != nil {
		return defaultPlanName
	}
	return plan.Name
}

func (h *Handler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	var row struct {
		UserID   uint
		Name     string
		Email    string
		Password string
		PlanName *string
	}
	err := h.DB.Model(&models.User{}).
		Select("users.user_id, users.name, users.e_mail AS email, users.password, plans.plan_name").
		Joins("LEFT JOIN plans ON plans.plan_id = users.plan_id").
		Where("users.name = ?", username).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	plan := defaultPlanName
	if row.PlanName != nil {
		plan = *row.PlanName
	}

	// TODO: drop the password field once the settings page stops reading it.
	c.JSON(http.StatusOK, gin.H{
		"user_id":  row.UserID,
		"name":     row.Name,
		"email":    row.Email,
		"password": row.Password,
		"plan":     plan,
	})
}

type updatePasswordRequest struct {
	UserID      uint   `json:"userId" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.DB.Model(&models.User{}).
		Where("user_id = ?", req.UserID).
		Update("password", req.NewPassword).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type updatePlanRequest struct {
	UserID       uint   `json:"userId" binding:"required"`
	NewPlanName  string `json:"newPlanName"`
	IsCustom     bool   `json:"isCustom"`
	CustomAmount int    `json:"customAmount"`
	CustomUnit   string `json:"customUnit"`
}

// UpdatePlan assigns a named tier to the user, creating the plan row on
// first use. Custom plans get a synthesized name numbered after the existing
// custom rows. The resolve-or-create runs inside a transaction so two
// concurrent requests for the same name cannot both insert.
func (h *Handler) UpdatePlan(c *gin.Context) {
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || (!req.IsCustom && req.NewPlanName == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	name := req.NewPlanName
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsCustom {
			var count int64
			if err := tx.Model(&models.Plan{}).
				Where("plan_name LIKE ?", "Custom Plan%").
				Count(&count).Error; err != nil {
				return err
			}
			name = fmt.Sprintf("Custom Plan %d (%d %s)", count+1, req.CustomAmount, req.CustomUnit)
		}

		var plan models.Plan
		err := tx.First(&plan, "plan_name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			var next uint
			if err := tx.Model(&models.Plan{}).
				Select("COALESCE(MAX(plan_id), 0) + 1").
				Scan(&next).Error; err != nil {
				return err
			}
			plan = models.Plan{ID: next, Name: name}
			if err := tx.Create(&plan).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("user_id = ?", req.UserID).
			Update("plan_id", plan.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "planName": name})
}
