package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
	"github.com/newsroom-platform-api/internal/sentiment"
	"github.com/newsroom-platform-api/internal/validation"
	"github.com/rs/zerolog"
)

// newsletterService is the concrete implementation of NewsletterService.
// Newsletters follow the same approval workflow as articles.
type newsletterService struct {
	repos         *repository.Repositories
	classifier    sentiment.Classifier
	notifications NotificationService
	log           zerolog.Logger
}

// newNewsletterService creates a new NewsletterService
func newNewsletterService(repos *repository.Repositories, classifier sentiment.Classifier, notifications NotificationService, log zerolog.Logger) NewsletterService {
	return &newsletterService{
		repos:         repos,
		classifier:    classifier,
		notifications: notifications,
		log:           log.With().Str("service", "newsletter").Logger(),
	}
}

// List returns all newsletters, newest first
func (s *newsletterService) List(ctx context.Context) ([]*models.Newsletter, error) {
	return s.repos.Newsletter.List(ctx)
}

// Count returns the total number of newsletters
func (s *newsletterService) Count(ctx context.Context) (int, error) {
	return s.repos.Newsletter.Count(ctx)
}

// Get returns one newsletter with the requesting user's interaction state
func (s *newsletterService) Get(ctx context.Context, p *auth.Principal, id string) (*ContentDetail, error) {
	newsletter, err := s.repos.Newsletter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if newsletter == nil {
		return nil, ErrNotFound
	}

	detail := &ContentDetail{Newsletter: newsletter}
	ref := newsletter.Ref()

	if detail.Comments, err = s.repos.Comment.ListForContent(ctx, ref); err != nil {
		return nil, err
	}
	counts, err := s.repos.Reaction.Counts(ctx, ref)
	if err != nil {
		return nil, err
	}
	detail.Counts = *counts

	if p != nil {
		if detail.Bookmarked, err = s.repos.Bookmark.Exists(ctx, p.ID, ref); err != nil {
			return nil, err
		}
		reaction, err := s.repos.Reaction.Get(ctx, p.ID, ref)
		if err != nil {
			return nil, err
		}
		if reaction != nil {
			detail.MyReaction = &reaction.Kind
		}
	}

	return detail, nil
}

// Create makes a new newsletter for the journalist, entering the
// workflow pending editor review.
func (s *newsletterService) Create(ctx context.Context, p *auth.Principal, in ContentInput) (*models.Newsletter, error) {
	if !auth.Can(p, auth.CapAuthorContent) {
		return nil, ErrForbidden
	}
	if err := newValidationError(validation.ValidateContentFields(in.Title, in.Body)); err != nil {
		return nil, err
	}

	now := time.Now()
	newsletter := &models.Newsletter{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Body:      in.Body,
		AuthorID:  p.ID,
		Status:    models.StatusPending,
		Sentiment: s.classify(ctx, in.Body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Newsletter.Create(ctx, newsletter); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("newsletter_id", newsletter.ID).
		Str("author_id", p.ID).
		Msg("Newsletter created, waiting for editor approval")

	return newsletter, nil
}

// Update edits a newsletter under the same rules as articles: an author
// edit of reviewed content returns it to pending.
func (s *newsletterService) Update(ctx context.Context, p *auth.Principal, id string, in ContentInput) (*models.Newsletter, error) {
	newsletter, err := s.repos.Newsletter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if newsletter == nil {
		return nil, ErrNotFound
	}
	if !auth.CanMutateContent(p, newsletter.AuthorID) {
		return nil, ErrForbidden
	}
	if err := newValidationError(validation.ValidateContentFields(in.Title, in.Body)); err != nil {
		return nil, err
	}

	bodyChanged := newsletter.Body != in.Body
	newsletter.Title = in.Title
	newsletter.Body = in.Body

	if auth.IsJournalist(p) && p.ID == newsletter.AuthorID && newsletter.Status != models.StatusPending {
		newsletter.Status = models.StatusPending
		s.log.Info().Str("newsletter_id", id).Msg("Author edit reset newsletter to pending review")
	}
	if bodyChanged {
		newsletter.Sentiment = s.classify(ctx, in.Body)
	}
	newsletter.UpdatedAt = time.Now()

	if err := s.repos.Newsletter.Update(ctx, newsletter); err != nil {
		return nil, err
	}
	return newsletter, nil
}

// Delete removes a newsletter. Editors may delete anything; journalists
// only their own work.
func (s *newsletterService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	newsletter, err := s.repos.Newsletter.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if newsletter == nil {
		return ErrNotFound
	}
	if !auth.CanMutateContent(p, newsletter.AuthorID) {
		return ErrForbidden
	}
	return s.repos.Newsletter.Delete(ctx, id)
}

// Approve marks a newsletter approved. Editor only.
func (s *newsletterService) Approve(ctx context.Context, p *auth.Principal, id string) (*models.Newsletter, error) {
	return s.review(ctx, p, id, models.StatusApproved)
}

// Reject marks a newsletter rejected. Editor only.
func (s *newsletterService) Reject(ctx context.Context, p *auth.Principal, id string) (*models.Newsletter, error) {
	return s.review(ctx, p, id, models.StatusRejected)
}

func (s *newsletterService) review(ctx context.Context, p *auth.Principal, id string, status models.ContentStatus) (*models.Newsletter, error) {
	if !auth.Can(p, auth.CapReviewContent) {
		return nil, ErrForbidden
	}
	newsletter, err := s.repos.Newsletter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if newsletter == nil {
		return nil, ErrNotFound
	}

	if err := s.repos.Newsletter.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	newsletter.Status = status
	newsletter.UpdatedAt = time.Now()

	s.log.Info().
		Str("newsletter_id", id).
		Str("editor_id", p.ID).
		Str("status", string(status)).
		Msg("Newsletter reviewed")

	return newsletter, nil
}

func (s *newsletterService) classify(ctx context.Context, body string) models.Sentiment {
	result, err := s.classifier.Classify(ctx, body)
	if err != nil {
		s.log.Warn().Err(err).Msg("Sentiment classification failed, defaulting to Neutral")
		return models.SentimentNeutral
	}
	return result
}
