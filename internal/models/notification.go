package models

import (
	"time"
)

// NotificationType is the action that produced a notification.
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationLike    NotificationType = "like"
	NotificationDislike NotificationType = "dislike"
)

// Notification records activity on a user's content. Recipient is always
// the content author and sender the acting user. Immutable once created
// except for the read flag.
type Notification struct {
	ID           string           `json:"id" db:"id"`
	RecipientID  string           `json:"recipient_id" db:"recipient_id"`
	SenderID     string           `json:"sender_id" db:"sender_id"`
	ArticleID    *string          `json:"article_id,omitempty" db:"article_id"`
	NewsletterID *string          `json:"newsletter_id,omitempty" db:"newsletter_id"`
	Type         NotificationType `json:"type" db:"type"`
	Message      string           `json:"message" db:"message"`
	IsRead       bool             `json:"is_read" db:"is_read"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}
