package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"quill/middleware"
	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PostController serves the blog post endpoints. Projections go over
// the wire wrapped in a post_data envelope.
type PostController struct {
	db          *gorm.DB
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
	}
}

// List returns all published posts, oldest publish date first.
func (pc *PostController) List(c *gin.Context) {
	posts, err := pc.postService.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	projections := make([]models.PostProjection, 0, len(posts))
	for _, post := range posts {
		projections = append(projections, post.Projection())
	}

	c.JSON(http.StatusOK, gin.H{"post_data": projections})
}

// Drafts returns the caller's unpublished posts, oldest first.
func (pc *PostController) Drafts(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	posts, err := pc.postService.ListDrafts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch drafts"})
		return
	}

	projections := make([]models.PostProjection, 0, len(posts))
	for _, post := range posts {
		projections = append(projections, post.Projection())
	}

	c.JSON(http.StatusOK, gin.H{"post_data": projections})
}

func (pc *PostController) Detail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_data": post.Projection()})
}

// Create stores a new draft owned by the caller. Accepts JSON or form
// encoding; title and text are required, everything else the client
// sends is ignored.
func (pc *PostController) Create(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid Data"})
		return
	}

	post, err := pc.postService.CreatePost(userID, &form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post_data": post.Projection()})
}

// Edit replaces title and text. Responses carry no body: 200 on
// success, 404 for an unknown id, 400 for an invalid payload.
func (pc *PostController) Edit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if _, err := pc.postService.GetPost(id); err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if _, err := pc.postService.UpdatePost(id, &form); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Publish stamps the post and bounces back to the detail page.
func (pc *PostController) Publish(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := pc.postService.PublishPost(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
}

// Remove deletes the post together with its comments and bounces back
// to the listing.
func (pc *PostController) Remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Redirect(http.StatusFound, "/posts/")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
