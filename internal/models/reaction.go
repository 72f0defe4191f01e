package models

import (
	"time"
)

// ReactionKind is the like/dislike polarity of a reaction.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Opposite returns the other reaction kind.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// Reaction is a like or dislike a user holds on a content item.
// Unique per (user, content); a user holds at most one kind per item.
type Reaction struct {
	UserID       string       `json:"user_id" db:"user_id"`
	ArticleID    *string      `json:"article_id,omitempty" db:"article_id"`
	NewsletterID *string      `json:"newsletter_id,omitempty" db:"newsletter_id"`
	Kind         ReactionKind `json:"kind" db:"kind"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// Bookmark marks a content item saved by a user. Unique per (user, content).
type Bookmark struct {
	UserID       string    `json:"user_id" db:"user_id"`
	ArticleID    *string   `json:"article_id,omitempty" db:"article_id"`
	NewsletterID *string   `json:"newsletter_id,omitempty" db:"newsletter_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ReactionCounts is the per-item tally handed to detail views.
type ReactionCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}
