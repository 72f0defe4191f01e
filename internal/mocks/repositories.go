package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
)

func refKey(ref models.ContentRef) string {
	return string(ref.Type) + ":" + ref.ID
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users         map[string]*models.User
	Subscriptions []*models.Subscription
	InsertError   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

func (m *MockUserRepository) AddSubscription(ctx context.Context, sub *models.Subscription) error {
	exists, _ := m.SubscriptionExists(ctx, sub.UserID, sub.TargetID, sub.Kind)
	if !exists {
		m.Subscriptions = append(m.Subscriptions, sub)
	}
	return nil
}

func (m *MockUserRepository) RemoveSubscription(ctx context.Context, userID, targetID string, kind models.SubscriptionKind) error {
	kept := m.Subscriptions[:0]
	for _, s := range m.Subscriptions {
		if s.UserID == userID && s.TargetID == targetID && s.Kind == kind {
			continue
		}
		kept = append(kept, s)
	}
	m.Subscriptions = kept
	return nil
}

func (m *MockUserRepository) SubscriptionExists(ctx context.Context, userID, targetID string, kind models.SubscriptionKind) (bool, error) {
	for _, s := range m.Subscriptions {
		if s.UserID == userID && s.TargetID == targetID && s.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) ListSubscriptions(ctx context.Context, userID string) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	for _, s := range m.Subscriptions {
		if s.UserID == userID {
			subs = append(subs, s)
		}
	}
	return subs, nil
}

func (m *MockUserRepository) ClearSubscriptions(ctx context.Context, userID string) error {
	kept := m.Subscriptions[:0]
	for _, s := range m.Subscriptions {
		if s.UserID != userID {
			kept = append(kept, s)
		}
	}
	m.Subscriptions = kept
	return nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	InsertError error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[string]*models.Article)}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) GetSnapshot(ctx context.Context, ref models.ContentRef) (*models.ContentSnapshot, error) {
	a, ok := m.Articles[ref.ID]
	if !ok {
		return nil, nil
	}
	return &models.ContentSnapshot{Ref: ref, Title: a.Title, AuthorID: a.AuthorID}, nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].CreatedAt.After(articles[j].CreatedAt) })
	return articles, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) UpdateStatus(ctx context.Context, id string, status models.ContentStatus) error {
	if a, ok := m.Articles[id]; ok {
		a.Status = status
	}
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

// MockNewsletterRepository is a mock implementation of NewsletterRepository
type MockNewsletterRepository struct {
	Newsletters map[string]*models.Newsletter
	InsertError error
}

func NewMockNewsletterRepository() *MockNewsletterRepository {
	return &MockNewsletterRepository{Newsletters: make(map[string]*models.Newsletter)}
}

func (m *MockNewsletterRepository) Create(ctx context.Context, newsletter *models.Newsletter) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Newsletters[newsletter.ID] = newsletter
	return nil
}

func (m *MockNewsletterRepository) GetByID(ctx context.Context, id string) (*models.Newsletter, error) {
	n, ok := m.Newsletters[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (m *MockNewsletterRepository) GetSnapshot(ctx context.Context, ref models.ContentRef) (*models.ContentSnapshot, error) {
	n, ok := m.Newsletters[ref.ID]
	if !ok {
		return nil, nil
	}
	return &models.ContentSnapshot{Ref: ref, Title: n.Title, AuthorID: n.AuthorID}, nil
}

func (m *MockNewsletterRepository) List(ctx context.Context) ([]*models.Newsletter, error) {
	newsletters := make([]*models.Newsletter, 0, len(m.Newsletters))
	for _, n := range m.Newsletters {
		newsletters = append(newsletters, n)
	}
	sort.Slice(newsletters, func(i, j int) bool { return newsletters[i].CreatedAt.After(newsletters[j].CreatedAt) })
	return newsletters, nil
}

func (m *MockNewsletterRepository) Update(ctx context.Context, newsletter *models.Newsletter) error {
	m.Newsletters[newsletter.ID] = newsletter
	return nil
}

func (m *MockNewsletterRepository) UpdateStatus(ctx context.Context, id string, status models.ContentStatus) error {
	if n, ok := m.Newsletters[id]; ok {
		n.Status = status
	}
	return nil
}

func (m *MockNewsletterRepository) Delete(ctx context.Context, id string) error {
	delete(m.Newsletters, id)
	return nil
}

func (m *MockNewsletterRepository) Count(ctx context.Context) (int, error) {
	return len(m.Newsletters), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[string]*models.Comment
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return m.Comments[id], nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) ListForContent(ctx context.Context, ref models.ContentRef) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.Comments {
		if refKey(c.Ref()) == refKey(ref) {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

// MockReactionRepository is a mock implementation of ReactionRepository.
// Content existence is checked against the wired article/newsletter mocks
// so toggle-on-deleted-content behaves like the real repo.
type MockReactionRepository struct {
	Reactions   map[string]models.ReactionKind // userID + "|" + refKey -> kind
	Articles    *MockArticleRepository
	Newsletters *MockNewsletterRepository
}

func NewMockReactionRepository(articles *MockArticleRepository, newsletters *MockNewsletterRepository) *MockReactionRepository {
	return &MockReactionRepository{
		Reactions:   make(map[string]models.ReactionKind),
		Articles:    articles,
		Newsletters: newsletters,
	}
}

func (m *MockReactionRepository) contentExists(ref models.ContentRef) bool {
	switch ref.Type {
	case models.ContentArticle:
		_, ok := m.Articles.Articles[ref.ID]
		return ok
	case models.ContentNewsletter:
		_, ok := m.Newsletters.Newsletters[ref.ID]
		return ok
	}
	return false
}

func (m *MockReactionRepository) Toggle(ctx context.Context, userID string, ref models.ContentRef, kind models.ReactionKind) (*repository.ToggleOutcome, error) {
	if !m.contentExists(ref) {
		return nil, nil
	}

	key := userID + "|" + refKey(ref)
	outcome := &repository.ToggleOutcome{Kind: kind}

	current, held := m.Reactions[key]
	switch {
	case !held:
		m.Reactions[key] = kind
		outcome.Added = true
	case current == kind:
		delete(m.Reactions, key)
	default:
		m.Reactions[key] = kind
		outcome.Added = true
		outcome.Switched = true
	}
	return outcome, nil
}

func (m *MockReactionRepository) Get(ctx context.Context, userID string, ref models.ContentRef) (*models.Reaction, error) {
	kind, ok := m.Reactions[userID+"|"+refKey(ref)]
	if !ok {
		return nil, nil
	}
	reaction := &models.Reaction{UserID: userID, Kind: kind, CreatedAt: time.Now()}
	switch ref.Type {
	case models.ContentArticle:
		reaction.ArticleID = &ref.ID
	case models.ContentNewsletter:
		reaction.NewsletterID = &ref.ID
	}
	return reaction, nil
}

func (m *MockReactionRepository) Counts(ctx context.Context, ref models.ContentRef) (*models.ReactionCounts, error) {
	counts := &models.ReactionCounts{}
	suffix := "|" + refKey(ref)
	for key, kind := range m.Reactions {
		if len(key) >= len(suffix) && key[len(key)-len(suffix):] == suffix {
			if kind == models.ReactionLike {
				counts.Likes++
			} else {
				counts.Dislikes++
			}
		}
	}
	return counts, nil
}

// MockBookmarkRepository is a mock implementation of BookmarkRepository
type MockBookmarkRepository struct {
	Bookmarks   map[string]bool // userID + "|" + refKey
	Articles    *MockArticleRepository
	Newsletters *MockNewsletterRepository
}

func NewMockBookmarkRepository(articles *MockArticleRepository, newsletters *MockNewsletterRepository) *MockBookmarkRepository {
	return &MockBookmarkRepository{
		Bookmarks:   make(map[string]bool),
		Articles:    articles,
		Newsletters: newsletters,
	}
}

func (m *MockBookmarkRepository) contentExists(ref models.ContentRef) bool {
	switch ref.Type {
	case models.ContentArticle:
		_, ok := m.Articles.Articles[ref.ID]
		return ok
	case models.ContentNewsletter:
		_, ok := m.Newsletters.Newsletters[ref.ID]
		return ok
	}
	return false
}

func (m *MockBookmarkRepository) Toggle(ctx context.Context, userID string, ref models.ContentRef) (bool, error) {
	if !m.contentExists(ref) {
		return false, sql.ErrNoRows
	}
	key := userID + "|" + refKey(ref)
	if m.Bookmarks[key] {
		delete(m.Bookmarks, key)
		return false, nil
	}
	m.Bookmarks[key] = true
	return true, nil
}

func (m *MockBookmarkRepository) Exists(ctx context.Context, userID string, ref models.ContentRef) (bool, error) {
	return m.Bookmarks[userID+"|"+refKey(ref)], nil
}

func (m *MockBookmarkRepository) ListForUser(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	var bookmarks []*models.Bookmark
	prefix := userID + "|"
	for key := range m.Bookmarks {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		b := &models.Bookmark{UserID: userID}
		typ, id, _ := strings.Cut(strings.TrimPrefix(key, prefix), ":")
		switch models.ContentType(typ) {
		case models.ContentArticle:
			b.ArticleID = &id
		case models.ContentNewsletter:
			b.NewsletterID = &id
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	Notifications []*models.Notification
	InsertError   error
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Notifications = append(m.Notifications, n)
	return nil
}

func (m *MockNotificationRepository) ListForRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range m.Notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, recipientID string) (bool, error) {
	for _, n := range m.Notifications {
		if n.ID == id && n.RecipientID == recipientID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	updated := 0
	for _, n := range m.Notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	count := 0
	for _, n := range m.Notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// RepoSet bundles a full in-memory repository set for tests.
type RepoSet struct {
	Users         *MockUserRepository
	Articles      *MockArticleRepository
	Newsletters   *MockNewsletterRepository
	Comments      *MockCommentRepository
	Reactions     *MockReactionRepository
	Bookmarks     *MockBookmarkRepository
	Notifications *MockNotificationRepository
}

// NewRepoSet wires all mock repositories together.
func NewRepoSet() *RepoSet {
	articles := NewMockArticleRepository()
	newsletters := NewMockNewsletterRepository()
	return &RepoSet{
		Users:         NewMockUserRepository(),
		Articles:      articles,
		Newsletters:   newsletters,
		Comments:      NewMockCommentRepository(),
		Reactions:     NewMockReactionRepository(articles, newsletters),
		Bookmarks:     NewMockBookmarkRepository(articles, newsletters),
		Notifications: NewMockNotificationRepository(),
	}
}

// Repositories exposes the set through the repository interfaces.
func (s *RepoSet) Repositories() *repository.Repositories {
	return &repository.Repositories{
		User:         s.Users,
		Article:      s.Articles,
		Newsletter:   s.Newsletters,
		Comment:      s.Comments,
		Reaction:     s.Reactions,
		Bookmark:     s.Bookmarks,
		Notification: s.Notifications,
	}
}
