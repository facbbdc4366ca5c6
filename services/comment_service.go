package services

import (
	"quill/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment attaches a visitor comment to an existing post. New
// comments always start unapproved.
func (s *CommentService) CreateComment(postID uint, form *models.CommentForm) (*models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: post.ID,
		Author: form.Author,
		Text:   form.Text,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) GetComment(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.First(&comment, id).Error
	return &comment, err
}

// ApproveComment flips the approved flag. Safe to call repeatedly.
func (s *CommentService) ApproveComment(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, err
	}

	comment.Approve()

	if err := s.db.Save(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// DeleteComment removes the comment and reports which post owned it so
// the handler can redirect back to the detail page.
func (s *CommentService) DeleteComment(id uint) (postID uint, err error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return 0, err
	}

	if err := s.db.Delete(&comment).Error; err != nil {
		return 0, err
	}

	return comment.PostID, nil
}
