package repository

import (
	"context"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// notificationRepo is the concrete implementation of NotificationRepository
type notificationRepo struct {
	db *database.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *database.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

// Create inserts a new notification
func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, article_id, newsletter_id, type, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.RecipientID, n.SenderID, n.ArticleID, n.NewsletterID,
		n.Type, n.Message, n.IsRead, time.Now(),
	)
	return err
}

// ListForRecipient retrieves a user's notifications, newest first
func (r *notificationRepo) ListForRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	query := `
		SELECT id, recipient_id, sender_id, article_id, newsletter_id, type, message, is_read, created_at
		FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.ArticleID, &n.NewsletterID,
			&n.Type, &n.Message, &n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// MarkRead sets the read flag on one notification. The recipient filter
// keeps users from acknowledging someone else's feed; returns false when
// no matching row was updated.
func (r *notificationRepo) MarkRead(ctx context.Context, id, recipientID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2",
		id, recipientID,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// MarkAllRead sets the read flag on every unread notification of a user
func (r *notificationRepo) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE",
		recipientID,
	)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int(affected), err
}

// CountUnread returns the number of unread notifications for a user
func (r *notificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE",
		recipientID,
	).Scan(&count)
	return count, err
}
