package routes

import (
	"net/http"

	"quill/controllers"
	"quill/handlers"
	"quill/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Anonymous comment posting is the only rate-limited surface.
const (
	commentRateRPS   = rate.Limit(5)
	commentRateBurst = 30
)

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, postController *controllers.PostController, commentController *controllers.CommentController, w *handlers.WebSocketHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	commentLimiter := middleware.NewIPRateLimiter(commentRateRPS, commentRateBurst)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/login/", authController.LoginPage)
		auth.GET("/me", middleware.AuthRequired(), authController.Me)
		auth.GET("/ws", middleware.AuthRequired(), w.HandleWebSocket)
	}

	posts := r.Group("/posts")
	{
		posts.GET("/", postController.List)
		posts.GET("/drafts/", middleware.AuthRequired(), postController.Drafts)
		posts.POST("/new/", middleware.AuthRequired(), postController.Create)
		posts.GET("/:id/", postController.Detail)
		posts.PUT("/:id/edit/", middleware.AuthRequired(), postController.Edit)
		posts.GET("/:id/publish/", middleware.AuthRequired(), postController.Publish)
		posts.GET("/:id/remove/", middleware.AuthRequired(), postController.Remove)
		posts.POST("/:id/comment/", middleware.RateLimit(commentLimiter), commentController.Create)
	}

	comments := r.Group("/comments")
	comments.Use(middleware.AuthRequired())
	{
		comments.GET("/:id/approve/", commentController.Approve)
		comments.GET("/:id/remove/", commentController.Remove)
	}
}
