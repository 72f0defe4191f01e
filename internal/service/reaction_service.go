package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// reactionService is the concrete implementation of ReactionService
type reactionService struct {
	repos         *repository.Repositories
	notifications NotificationService
	log           zerolog.Logger
}

// newReactionService creates a new ReactionService
func newReactionService(repos *repository.Repositories, notifications NotificationService, log zerolog.Logger) ReactionService {
	return &reactionService{
		repos:         repos,
		notifications: notifications,
		log:           log.With().Str("service", "reaction").Logger(),
	}
}

// Toggle flips the user's like or dislike on a content item:
// toggling the held kind removes it; toggling the opposite kind switches
// polarity. Only a newly added reaction notifies the author; removal is
// silent. Like/dislike stay mutually exclusive throughout.
func (s *reactionService) Toggle(ctx context.Context, p *auth.Principal, ref models.ContentRef, kind models.ReactionKind) (*ReactionState, error) {
	if p == nil {
		return nil, ErrForbidden
	}

	snap, err := resolveSnapshot(ctx, s.repos, ref)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNotFound
	}

	outcome, err := s.repos.Reaction.Toggle(ctx, p.ID, ref, kind)
	if err != nil {
		return nil, err
	}
	if outcome == nil {
		// Content deleted between the snapshot lookup and the toggle.
		return nil, ErrNotFound
	}

	if outcome.Added {
		s.notifications.Emit(ctx, p, snap, notificationTypeFor(kind))
	}

	counts, err := s.repos.Reaction.Counts(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &ReactionState{
		Active: outcome.Added,
		Kind:   kind,
		Counts: *counts,
	}, nil
}

// ToggleBookmark flips the user's bookmark on a content item. Purely an
// existence toggle: no notification, no side effects.
func (s *reactionService) ToggleBookmark(ctx context.Context, p *auth.Principal, ref models.ContentRef) (bool, error) {
	if p == nil {
		return false, ErrForbidden
	}

	added, err := s.repos.Bookmark.Toggle(ctx, p.ID, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return added, nil
}

// Bookmarks returns the principal's saved content, newest first
func (s *reactionService) Bookmarks(ctx context.Context, p *auth.Principal) ([]*models.Bookmark, error) {
	if p == nil {
		return nil, ErrForbidden
	}
	return s.repos.Bookmark.ListForUser(ctx, p.ID)
}

func notificationTypeFor(kind models.ReactionKind) models.NotificationType {
	if kind == models.ReactionLike {
		return models.NotificationLike
	}
	return models.NotificationDislike
}
