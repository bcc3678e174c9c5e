package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupMock returns a Handler backed by a sqlmock connection bridged through
// the gorm postgres dialector, mirroring the production configuration.
func setupMock(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return New(gdb, nil), mock
}

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

// perform sends a JSON request through a throwaway router so path
// parameters resolve the same way they do in production.
func perform(t *testing.T, r route, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.Handle(r.method, r.path, r.handler)

	req := httptest.NewRequest(r.method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// userColumns matches the users table shape scanned by gorm.
func userColumns() []string {
	return []string{"user_id", "name", "e_mail", "password", "plan_id"}
}

func fileColumns() []string {
	return []string{"file_id", "file_name", "file_size", "user_id", "folder_id", "folder_name", "content"}
}
