package models

import (
	"time"
)

// ContentStatus tracks a content item through the approval workflow.
// Every item enters as pending; only an editor moves it to approved or
// rejected. An author edit on approved or rejected content returns it
// to pending for re-review.
type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
)

// ValidStatuses defines allowed content statuses
var ValidStatuses = map[ContentStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

// Sentiment is the classifier tag stored with each content item.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ContentType identifies which table a content reference points into.
type ContentType string

const (
	ContentArticle    ContentType = "article"
	ContentNewsletter ContentType = "newsletter"
)

// ContentRef addresses exactly one article or newsletter.
type ContentRef struct {
	Type ContentType `json:"type"`
	ID   string      `json:"id"`
}

// Article represents a journalist-authored article
type Article struct {
	ID        string        `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	Body      string        `json:"body" db:"body"`
	AuthorID  string        `json:"author_id" db:"author_id"`
	Status    ContentStatus `json:"status" db:"status"`
	Sentiment Sentiment     `json:"sentiment" db:"sentiment"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// Ref returns the content reference for this article.
func (a *Article) Ref() ContentRef {
	return ContentRef{Type: ContentArticle, ID: a.ID}
}

// Newsletter represents a journalist-authored newsletter issue
type Newsletter struct {
	ID        string        `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	Body      string        `json:"body" db:"body"`
	AuthorID  string        `json:"author_id" db:"author_id"`
	Status    ContentStatus `json:"status" db:"status"`
	Sentiment Sentiment     `json:"sentiment" db:"sentiment"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// Ref returns the content reference for this newsletter.
func (n *Newsletter) Ref() ContentRef {
	return ContentRef{Type: ContentNewsletter, ID: n.ID}
}

// ContentSnapshot is the author/title view the interaction services need
// regardless of whether the target is an article or a newsletter.
type ContentSnapshot struct {
	Ref      ContentRef
	Title    string
	AuthorID string
}
