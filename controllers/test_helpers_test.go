package controllers_test

import (
	"path/filepath"
	"testing"
	"time"

	"quill/controllers"
	"quill/handlers"
	"quill/models"
	"quill/routes"
	"quill/services"
	"quill/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the real router against a throwaway sqlite
// database, so controller tests exercise routing, middleware and
// persistence together.
func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	hubService := services.NewHubService()

	r := gin.New()
	routes.SetupRoutes(r,
		controllers.NewAuthController(db),
		controllers.NewPostController(db),
		controllers.NewCommentController(db, hubService),
		handlers.NewWebSocketHandler(hubService),
	)
	return r, db
}

func createUserWithToken(t *testing.T, db *gorm.DB) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Email:    "author@example.com",
		Username: "author",
		Password: "Test123",
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)

	token, err := utils.GenerateJWT(user.ID)
	require.NoError(t, err)
	return user, token
}

func createPublishedPost(t *testing.T, db *gorm.DB, authorID uint, title, text string) *models.Post {
	t.Helper()

	now := time.Now()
	post := &models.Post{
		AuthorID:      authorID,
		Title:         title,
		Text:          text,
		PublishedDate: &now,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createDraftPost(t *testing.T, db *gorm.DB, authorID uint, title, text string) *models.Post {
	t.Helper()

	post := &models.Post{
		AuthorID: authorID,
		Title:    title,
		Text:     text,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// postDataObject and postDataList mirror the wire envelope.
type postDataObject struct {
	PostData models.PostProjection `json:"post_data"`
}

type postDataList struct {
	PostData []models.PostProjection `json:"post_data"`
}
