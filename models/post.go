package models

import (
	"time"
)

// Post is a blog article. It starts as a draft; PublishedDate is nil
// until Publish is called, and only published posts show up in the
// public listing.
type Post struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	AuthorID      uint       `json:"author_id" gorm:"not null;index"`
	Author        User       `json:"-" gorm:"foreignKey:AuthorID"`
	Title         string     `json:"title" gorm:"not null"`
	Text          string     `json:"text" gorm:"type:text;not null"`
	PublishedDate *time.Time `json:"published_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Comments      []Comment  `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

// PostForm is the client-writable subset for both create and edit.
// Author and published_date are server-assigned and never bound.
type PostForm struct {
	Title string `json:"title" form:"title" binding:"required"`
	Text  string `json:"text" form:"text" binding:"required"`
}

// PostProjection is the canonical flat wire shape of a post.
type PostProjection struct {
	ID            uint    `json:"id"`
	Author        uint    `json:"author"`
	Title         string  `json:"title"`
	Text          string  `json:"text"`
	CreatedDate   string  `json:"created_date"`
	PublishedDate *string `json:"published_date"`
}

// Publish stamps the post with the current time. Re-publishing just
// refreshes the timestamp; there is no way back to draft.
func (p *Post) Publish() {
	now := time.Now()
	p.PublishedDate = &now
}

func (p *Post) IsDraft() bool {
	return p.PublishedDate == nil
}

func (p *Post) Projection() PostProjection {
	proj := PostProjection{
		ID:          p.ID,
		Author:      p.AuthorID,
		Title:       p.Title,
		Text:        p.Text,
		CreatedDate: p.CreatedAt.Format(time.RFC3339),
	}
	if p.PublishedDate != nil {
		published := p.PublishedDate.Format(time.RFC3339)
		proj.PublishedDate = &published
	}
	return proj
}
