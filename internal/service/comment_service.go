package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
	"github.com/newsroom-platform-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos         *repository.Repositories
	notifications NotificationService
	log           zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repos *repository.Repositories, notifications NotificationService, log zerolog.Logger) CommentService {
	return &commentService{
		repos:         repos,
		notifications: notifications,
		log:           log.With().Str("service", "comment").Logger(),
	}
}

// Create adds a comment to an article or newsletter and notifies the
// content author.
func (s *commentService) Create(ctx context.Context, p *auth.Principal, ref models.ContentRef, body string) (*models.Comment, error) {
	if p == nil {
		return nil, ErrForbidden
	}
	if err := newValidationError(validation.ValidateCommentBody(body)); err != nil {
		return nil, err
	}

	snap, err := resolveSnapshot(ctx, s.repos, ref)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	comment := &models.Comment{
		ID:        uuid.New().String(),
		UserID:    p.ID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch ref.Type {
	case models.ContentArticle:
		comment.ArticleID = &ref.ID
	case models.ContentNewsletter:
		comment.NewsletterID = &ref.ID
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.notifications.Emit(ctx, p, snap, models.NotificationComment)

	return comment, nil
}

// Update rewrites a comment body. Only the comment's author may edit it;
// anyone else gets an observable Forbidden, never a silent no-op.
func (s *commentService) Update(ctx context.Context, p *auth.Principal, id, body string) (*models.Comment, error) {
	if p == nil {
		return nil, ErrForbidden
	}
	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if comment.UserID != p.ID {
		return nil, ErrForbidden
	}
	if err := newValidationError(validation.ValidateCommentBody(body)); err != nil {
		return nil, err
	}

	comment.Body = body
	comment.UpdatedAt = time.Now()
	if err := s.repos.Comment.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes exactly one comment. Only the comment's author may
// delete it.
func (s *commentService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	if p == nil {
		return ErrForbidden
	}
	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.UserID != p.ID {
		return ErrForbidden
	}
	return s.repos.Comment.Delete(ctx, id)
}

// ListForContent returns all comments on a content item, oldest first
func (s *commentService) ListForContent(ctx context.Context, ref models.ContentRef) ([]*models.Comment, error) {
	snap, err := resolveSnapshot(ctx, s.repos, ref)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNotFound
	}
	return s.repos.Comment.ListForContent(ctx, ref)
}

// Count returns the total number of comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repos.Comment.Count(ctx)
}
