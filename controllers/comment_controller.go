package controllers

import (
	"fmt"
	"net/http"

	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	db             *gorm.DB
	commentService *services.CommentService
	postService    *services.PostService
	hubService     *services.HubService
}

func NewCommentController(db *gorm.DB, hubService *services.HubService) *CommentController {
	return &CommentController{
		db:             db,
		commentService: services.NewCommentService(db),
		postService:    services.NewPostService(db),
		hubService:     hubService,
	}
}

// Create adds a visitor comment to a post. The post's author gets a
// comment_created event on their moderation feed if they are connected.
func (cc *CommentController) Create(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := cc.postService.GetPost(postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid Data"})
		return
	}

	comment, err := cc.commentService.CreateComment(post.ID, &form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	cc.hubService.NotifyUser(post.AuthorID, "comment_created", comment.Projection())

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
}

// Approve marks the comment accepted and bounces back to the post.
// Approving an already approved comment is a no-op.
func (cc *CommentController) Approve(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment, err := cc.commentService.ApproveComment(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", comment.PostID))
}

// Remove deletes the comment and bounces back to the post it was on.
func (cc *CommentController) Remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	postID, err := cc.commentService.DeleteComment(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}
