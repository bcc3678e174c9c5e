package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/handlers"
)

func Register(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.GET("/profile/:username", h.GetProfile)
	api.PUT("/profile/password", h.UpdatePassword)
	api.PUT("/profile/plan", h.UpdatePlan)

	api.POST("/folders", h.CreateFolder)
	api.GET("/folders/:userId", h.ListFolders)

	api.POST("/files", h.CreateFile)
	api.GET("/files/:userId", h.ListFiles)
	api.PUT("/files/:id", h.UpdateFileContent)

	api.POST("/upload", h.Upload)
	api.POST("/share", h.Share)
}
