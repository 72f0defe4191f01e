package service

import (
	"context"

	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
	"github.com/newsroom-platform-api/internal/sentiment"
	"github.com/rs/zerolog"
)

// ContentInput is the author-supplied payload for creating or editing
// an article or newsletter.
type ContentInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContentDetail is the full view of one content item: the entity plus
// the interaction state of the requesting user.
type ContentDetail struct {
	Article    *models.Article        `json:"article,omitempty"`
	Newsletter *models.Newsletter     `json:"newsletter,omitempty"`
	Comments   []*models.Comment      `json:"comments"`
	Counts     models.ReactionCounts  `json:"reactions"`
	Bookmarked bool                   `json:"bookmarked"`
	MyReaction *models.ReactionKind   `json:"my_reaction,omitempty"`
}

// ReactionState is the post-toggle state returned to the caller.
type ReactionState struct {
	Active bool                  `json:"active"`
	Kind   models.ReactionKind   `json:"kind"`
	Counts models.ReactionCounts `json:"reactions"`
}

// ArticleService defines article CRUD and workflow operations
type ArticleService interface {
	List(ctx context.Context) ([]*models.Article, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, p *auth.Principal, id string) (*ContentDetail, error)
	Create(ctx context.Context, p *auth.Principal, in ContentInput) (*models.Article, error)
	Update(ctx context.Context, p *auth.Principal, id string, in ContentInput) (*models.Article, error)
	Delete(ctx context.Context, p *auth.Principal, id string) error
	Approve(ctx context.Context, p *auth.Principal, id string) (*models.Article, error)
	Reject(ctx context.Context, p *auth.Principal, id string) (*models.Article, error)
}

// NewsletterService defines newsletter CRUD and workflow operations
type NewsletterService interface {
	List(ctx context.Context) ([]*models.Newsletter, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, p *auth.Principal, id string) (*ContentDetail, error)
	Create(ctx context.Context, p *auth.Principal, in ContentInput) (*models.Newsletter, error)
	Update(ctx context.Context, p *auth.Principal, id string, in ContentInput) (*models.Newsletter, error)
	Delete(ctx context.Context, p *auth.Principal, id string) error
	Approve(ctx context.Context, p *auth.Principal, id string) (*models.Newsletter, error)
	Reject(ctx context.Context, p *auth.Principal, id string) (*models.Newsletter, error)
}

// CommentService defines the comment lifecycle
type CommentService interface {
	Create(ctx context.Context, p *auth.Principal, ref models.ContentRef, body string) (*models.Comment, error)
	Update(ctx context.Context, p *auth.Principal, id, body string) (*models.Comment, error)
	Delete(ctx context.Context, p *auth.Principal, id string) error
	ListForContent(ctx context.Context, ref models.ContentRef) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// ReactionService defines like/dislike and bookmark toggles
type ReactionService interface {
	Toggle(ctx context.Context, p *auth.Principal, ref models.ContentRef, kind models.ReactionKind) (*ReactionState, error)
	ToggleBookmark(ctx context.Context, p *auth.Principal, ref models.ContentRef) (bookmarked bool, err error)
	Bookmarks(ctx context.Context, p *auth.Principal) ([]*models.Bookmark, error)
}

// NotificationService defines the notification feed and emission
type NotificationService interface {
	// Emit creates a notification for activity on a content item.
	// Failures are logged, never returned: emission must not roll back
	// the action that triggered it.
	Emit(ctx context.Context, actor *auth.Principal, snap *models.ContentSnapshot, typ models.NotificationType)
	List(ctx context.Context, p *auth.Principal) ([]*models.Notification, error)
	MarkRead(ctx context.Context, p *auth.Principal, id string) error
	MarkAllRead(ctx context.Context, p *auth.Principal) (int, error)
	UnreadCount(ctx context.Context, p *auth.Principal) (int, error)
}

// UserService defines registration, lookup and subscription toggles
type UserService interface {
	Register(ctx context.Context, username, email string, role models.Role) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
	ToggleSubscription(ctx context.Context, p *auth.Principal, targetID string, kind models.SubscriptionKind) (subscribed bool, err error)
	Subscriptions(ctx context.Context, p *auth.Principal) ([]*models.Subscription, error)
}

// Services holds all service interfaces
type Services struct {
	User         UserService
	Article      ArticleService
	Newsletter   NewsletterService
	Comment      CommentService
	Reaction     ReactionService
	Notification NotificationService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, classifier sentiment.Classifier, log zerolog.Logger) *Services {
	notificationSvc := newNotificationService(repos.Notification, log)

	return &Services{
		User:         newUserService(repos.User, log),
		Article:      newArticleService(repos, classifier, notificationSvc, log),
		Newsletter:   newNewsletterService(repos, classifier, notificationSvc, log),
		Comment:      newCommentService(repos, notificationSvc, log),
		Reaction:     newReactionService(repos, notificationSvc, log),
		Notification: notificationSvc,
	}
}

// resolveSnapshot looks up the author/title view of a content reference
// across the article and newsletter stores.
func resolveSnapshot(ctx context.Context, repos *repository.Repositories, ref models.ContentRef) (*models.ContentSnapshot, error) {
	switch ref.Type {
	case models.ContentArticle:
		return repos.Article.GetSnapshot(ctx, ref)
	case models.ContentNewsletter:
		return repos.Newsletter.GetSnapshot(ctx, ref)
	default:
		return nil, nil
	}
}
