package services

import (
	"time"

	"quill/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// ListPublished returns every post whose publish timestamp has passed,
// oldest published first. Drafts and future-dated posts are excluded.
func (s *PostService) ListPublished() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Where("published_date IS NOT NULL AND published_date <= ?", time.Now()).
		Order("published_date asc").
		Find(&posts).Error
	return posts, err
}

// ListDrafts returns the caller's unpublished posts, oldest first.
func (s *PostService) ListDrafts(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Where("author_id = ? AND published_date IS NULL", authorID).
		Order("created_at asc").
		Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.First(&post, id).Error
	return &post, err
}

// CreatePost stores a new draft owned by authorID. The post stays
// invisible to the public listing until it is published.
func (s *PostService) CreatePost(authorID uint, form *models.PostForm) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    form.Title,
		Text:     form.Text,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost replaces title and text. Publish state and author are
// untouched by edits.
func (s *PostService) UpdatePost(id uint, form *models.PostForm) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, err
	}

	post.Title = form.Title
	post.Text = form.Text

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// PublishPost stamps the post with the current time. Calling it again
// just moves the timestamp forward.
func (s *PostService) PublishPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, err
	}

	post.Publish()

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost removes the post and its comments in one transaction. The
// cascade is explicit, nothing is assumed from the storage engine.
func (s *PostService) DeletePost(id uint) error {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
