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

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos         *repository.Repositories
	classifier    sentiment.Classifier
	notifications NotificationService
	log           zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, classifier sentiment.Classifier, notifications NotificationService, log zerolog.Logger) ArticleService {
	return &articleService{
		repos:         repos,
		classifier:    classifier,
		notifications: notifications,
		log:           log.With().Str("service", "article").Logger(),
	}
}

// List returns all articles, newest first
func (s *articleService) List(ctx context.Context) ([]*models.Article, error) {
	return s.repos.Article.List(ctx)
}

// Count returns the total number of articles
func (s *articleService) Count(ctx context.Context) (int, error) {
	return s.repos.Article.Count(ctx)
}

// Get returns one article with the requesting user's interaction state
func (s *articleService) Get(ctx context.Context, p *auth.Principal, id string) (*ContentDetail, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	detail := &ContentDetail{Article: article}
	ref := article.Ref()

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

// Create makes a new article for the journalist. Every article enters
// the workflow pending editor review, with its sentiment classified
// synchronously before persisting.
func (s *articleService) Create(ctx context.Context, p *auth.Principal, in ContentInput) (*models.Article, error) {
	if !auth.Can(p, auth.CapAuthorContent) {
		return nil, ErrForbidden
	}
	if err := newValidationError(validation.ValidateContentFields(in.Title, in.Body)); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Body:      in.Body,
		AuthorID:  p.ID,
		Status:    models.StatusPending,
		Sentiment: s.classify(ctx, in.Body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("author_id", p.ID).
		Str("sentiment", string(article.Sentiment)).
		Msg("Article created, waiting for editor approval")

	return article, nil
}

// Update edits an article. Editors may edit anything; journalists only
// their own work. An author edit of already-reviewed content returns it
// to pending unconditionally, forcing re-review.
func (s *articleService) Update(ctx context.Context, p *auth.Principal, id string, in ContentInput) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if !auth.CanMutateContent(p, article.AuthorID) {
		return nil, ErrForbidden
	}
	if err := newValidationError(validation.ValidateContentFields(in.Title, in.Body)); err != nil {
		return nil, err
	}

	bodyChanged := article.Body != in.Body
	article.Title = in.Title
	article.Body = in.Body

	if auth.IsJournalist(p) && p.ID == article.AuthorID && article.Status != models.StatusPending {
		article.Status = models.StatusPending
		s.log.Info().Str("article_id", id).Msg("Author edit reset article to pending review")
	}
	if bodyChanged {
		article.Sentiment = s.classify(ctx, in.Body)
	}
	article.UpdatedAt = time.Now()

	if err := s.repos.Article.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete removes an article. Editors may delete anything; journalists
// only their own work.
func (s *articleService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}
	if !auth.CanMutateContent(p, article.AuthorID) {
		return ErrForbidden
	}
	return s.repos.Article.Delete(ctx, id)
}

// Approve marks an article approved. Editor only.
func (s *articleService) Approve(ctx context.Context, p *auth.Principal, id string) (*models.Article, error) {
	return s.review(ctx, p, id, models.StatusApproved)
}

// Reject marks an article rejected. Editor only.
func (s *articleService) Reject(ctx context.Context, p *auth.Principal, id string) (*models.Article, error) {
	return s.review(ctx, p, id, models.StatusRejected)
}

func (s *articleService) review(ctx context.Context, p *auth.Principal, id string, status models.ContentStatus) (*models.Article, error) {
	if !auth.Can(p, auth.CapReviewContent) {
		return nil, ErrForbidden
	}
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if err := s.repos.Article.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	article.Status = status
	article.UpdatedAt = time.Now()

	s.log.Info().
		Str("article_id", id).
		Str("editor_id", p.ID).
		Str("status", string(status)).
		Msg("Article reviewed")

	return article, nil
}

// classify tags the body text, degrading to Neutral when the classifier
// fails. Classifier trouble never blocks a save.
func (s *articleService) classify(ctx context.Context, body string) models.Sentiment {
	result, err := s.classifier.Classify(ctx, body)
	if err != nil {
		s.log.Warn().Err(err).Msg("Sentiment classification failed, defaulting to Neutral")
		return models.SentimentNeutral
	}
	return result
}
