package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// bookmarkRepo is the concrete implementation of BookmarkRepository
type bookmarkRepo struct {
	db *database.DB
}

// NewBookmarkRepo creates a new bookmark repository
func NewBookmarkRepo(db *database.DB) BookmarkRepository {
	return &bookmarkRepo{db: db}
}

// Toggle flips a bookmark inside one transaction. Like reactions, the
// content row is locked so simultaneous toggles serialize.
func (r *bookmarkRepo) Toggle(ctx context.Context, userID string, ref models.ContentRef) (bool, error) {
	column, err := refColumn(ref)
	if err != nil {
		return false, err
	}
	table, err := contentTable(ref)
	if err != nil {
		return false, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var contentID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM "+table+" WHERE id = $1 FOR UPDATE", ref.ID).Scan(&contentID)
	if err == sql.ErrNoRows {
		return false, sql.ErrNoRows
	}
	if err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE user_id = $1 AND "+column+" = $2",
		userID, ref.ID,
	)
	if err != nil {
		return false, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	added := false
	if deleted == 0 {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bookmarks (user_id, "+column+", created_at) VALUES ($1, $2, $3)",
			userID, ref.ID, time.Now(),
		)
		if err != nil {
			return false, err
		}
		added = true
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return added, nil
}

// Exists checks whether a user has bookmarked a content item
func (r *bookmarkRepo) Exists(ctx context.Context, userID string, ref models.ContentRef) (bool, error) {
	column, err := refColumn(ref)
	if err != nil {
		return false, err
	}
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND " + column + " = $2)"
	err = r.db.QueryRowContext(ctx, query, userID, ref.ID).Scan(&exists)
	return exists, err
}

// ListForUser retrieves all bookmarks held by a user, newest first
func (r *bookmarkRepo) ListForUser(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	query := `
		SELECT user_id, article_id, newsletter_id, created_at
		FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*models.Bookmark
	for rows.Next() {
		var bookmark models.Bookmark
		err := rows.Scan(&bookmark.UserID, &bookmark.ArticleID, &bookmark.NewsletterID, &bookmark.CreatedAt)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, &bookmark)
	}
	return bookmarks, rows.Err()
}
