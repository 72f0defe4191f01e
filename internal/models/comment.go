package models

import (
	"time"
)

// Comment represents a user comment on an article or newsletter.
// Exactly one of ArticleID/NewsletterID is set.
type Comment struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	ArticleID    *string   `json:"article_id,omitempty" db:"article_id"`
	NewsletterID *string   `json:"newsletter_id,omitempty" db:"newsletter_id"`
	Body         string    `json:"body" db:"body"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Ref returns the content reference this comment targets.
func (c *Comment) Ref() ContentRef {
	if c.ArticleID != nil {
		return ContentRef{Type: ContentArticle, ID: *c.ArticleID}
	}
	if c.NewsletterID != nil {
		return ContentRef{Type: ContentNewsletter, ID: *c.NewsletterID}
	}
	return ContentRef{}
}

// MaxCommentLength is the maximum allowed characters in a comment body
const MaxCommentLength = 5000
