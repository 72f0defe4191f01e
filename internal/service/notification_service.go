package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// notificationService is the concrete implementation of NotificationService
type notificationService struct {
	repo repository.NotificationRepository
	log  zerolog.Logger
}

// newNotificationService creates a new NotificationService
func newNotificationService(repo repository.NotificationRepository, log zerolog.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With().Str("service", "notification").Logger(),
	}
}

var notificationVerbs = map[models.NotificationType]string{
	models.NotificationComment: "commented on",
	models.NotificationLike:    "liked",
	models.NotificationDislike: "disliked",
}

// Emit records activity on a content item for its author. Self-activity
// is suppressed: authors are not notified about their own actions.
// Storage failures are logged and swallowed so the triggering action
// never rolls back.
func (s *notificationService) Emit(ctx context.Context, actor *auth.Principal, snap *models.ContentSnapshot, typ models.NotificationType) {
	if actor == nil || snap == nil {
		return
	}
	if actor.ID == snap.AuthorID {
		return
	}

	n := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: snap.AuthorID,
		SenderID:    actor.ID,
		Type:        typ,
		Message:     fmt.Sprintf("%s %s your %s: %s", actor.Username, notificationVerbs[typ], snap.Ref.Type, snap.Title),
		CreatedAt:   time.Now(),
	}
	switch snap.Ref.Type {
	case models.ContentArticle:
		n.ArticleID = &snap.Ref.ID
	case models.ContentNewsletter:
		n.NewsletterID = &snap.Ref.ID
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error().Err(err).
			Str("recipient_id", n.RecipientID).
			Str("sender_id", n.SenderID).
			Str("type", string(typ)).
			Msg("Failed to create notification")
	}
}

// List returns the principal's notification feed, newest first
func (s *notificationService) List(ctx context.Context, p *auth.Principal) ([]*models.Notification, error) {
	if p == nil {
		return nil, ErrForbidden
	}
	return s.repo.ListForRecipient(ctx, p.ID)
}

// MarkRead flags one notification of the principal as read
func (s *notificationService) MarkRead(ctx context.Context, p *auth.Principal, id string) error {
	if p == nil {
		return ErrForbidden
	}
	updated, err := s.repo.MarkRead(ctx, id, p.ID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of the principal as read
func (s *notificationService) MarkAllRead(ctx context.Context, p *auth.Principal) (int, error) {
	if p == nil {
		return 0, ErrForbidden
	}
	return s.repo.MarkAllRead(ctx, p.ID)
}

// UnreadCount returns the principal's unread notification count
func (s *notificationService) UnreadCount(ctx context.Context, p *auth.Principal) (int, error) {
	if p == nil {
		return 0, ErrForbidden
	}
	return s.repo.CountUnread(ctx, p.ID)
}
