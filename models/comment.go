package models

import (
	"time"
)

// Comment is a visitor remark on a post. Author is a free-text name,
// not a user reference; visitors do not have accounts.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	Author    string    `json:"author" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Approved  bool      `json:"approved" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentForm struct {
	Author string `json:"author" form:"author" binding:"required"`
	Text   string `json:"text" form:"text" binding:"required"`
}

// CommentProjection is the canonical flat wire shape of a comment.
type CommentProjection struct {
	ID          uint   `json:"id"`
	Post        uint   `json:"post"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	CreatedDate string `json:"created_date"`
	Approved    bool   `json:"approved"`
}

// Approve marks the comment accepted by the post's author. Idempotent.
func (c *Comment) Approve() {
	c.Approved = true
}

func (c *Comment) Projection() CommentProjection {
	return CommentProjection{
		ID:          c.ID,
		Post:        c.PostID,
		Author:      c.Author,
		Text:        c.Text,
		CreatedDate: c.CreatedAt.Format(time.RFC3339),
		Approved:    c.Approved,
	}
}
