package repository

import (
	"context"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)

	AddSubscription(ctx context.Context, sub *models.Subscription) error
	RemoveSubscription(ctx context.Context, userID, targetID string, kind models.SubscriptionKind) error
	SubscriptionExists(ctx context.Context, userID, targetID string, kind models.SubscriptionKind) (bool, error)
	ListSubscriptions(ctx context.Context, userID string) ([]*models.Subscription, error)
	ClearSubscriptions(ctx context.Context, userID string) error
}

// ContentRepository is the shape shared by article and newsletter storage.
type ContentRepository interface {
	GetSnapshot(ctx context.Context, ref models.ContentRef) (*models.ContentSnapshot, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	ContentRepository
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context) ([]*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	UpdateStatus(ctx context.Context, id string, status models.ContentStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// NewsletterRepository defines the interface for newsletter data operations
type NewsletterRepository interface {
	ContentRepository
	Create(ctx context.Context, newsletter *models.Newsletter) error
	GetByID(ctx context.Context, id string) (*models.Newsletter, error)
	List(ctx context.Context) ([]*models.Newsletter, error)
	Update(ctx context.Context, newsletter *models.Newsletter) error
	UpdateStatus(ctx context.Context, id string, status models.ContentStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
	ListForContent(ctx context.Context, ref models.ContentRef) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// ToggleOutcome reports what a reaction toggle did.
type ToggleOutcome struct {
	Added    bool               // reaction now present with the requested kind
	Switched bool               // the opposite kind was replaced
	Kind     models.ReactionKind
}

// ReactionRepository defines the interface for like/dislike storage.
// Toggle runs in a single transaction serialized on the content row.
type ReactionRepository interface {
	Toggle(ctx context.Context, userID string, ref models.ContentRef, kind models.ReactionKind) (*ToggleOutcome, error)
	Get(ctx context.Context, userID string, ref models.ContentRef) (*models.Reaction, error)
	Counts(ctx context.Context, ref models.ContentRef) (*models.ReactionCounts, error)
}

// BookmarkRepository defines the interface for bookmark storage.
type BookmarkRepository interface {
	Toggle(ctx context.Context, userID string, ref models.ContentRef) (added bool, err error)
	Exists(ctx context.Context, userID string, ref models.ContentRef) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Bookmark, error)
}

// NotificationRepository defines the interface for notification storage.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) (bool, error)
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Article      ArticleRepository
	Newsletter   NewsletterRepository
	Comment      CommentRepository
	Reaction     ReactionRepository
	Bookmark     BookmarkRepository
	Notification NotificationRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepo(db),
		Article:      NewArticleRepo(db),
		Newsletter:   NewNewsletterRepo(db),
		Comment:      NewCommentRepo(db),
		Reaction:     NewReactionRepo(db),
		Bookmark:     NewBookmarkRepo(db),
		Notification: NewNotificationRepo(db),
	}
}
