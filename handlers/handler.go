package handlers

import (
	"gorm.io/gorm"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/drive"
)

// Handler carries the shared handles every endpoint needs: the database
// pool and the optional drive client. Drive is nil when the provider
// credentials were never configured; the upload endpoint checks for that.
type Handler struct {
	DB    *gorm.DB
	Drive *drive.Client
}

func New(db *gorm.DB, drv *drive.Client) *Handler {
	return &Handler{DB: db, Drive: drv}
}
