package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, user_id, article_id, newsletter_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.UserID, comment.ArticleID, comment.NewsletterID,
		comment.Body, comment.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, user_id, article_id, newsletter_id, body, created_at, updated_at
		FROM comments WHERE id = $1
	`
	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.UserID, &comment.ArticleID, &comment.NewsletterID,
		&comment.Body, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update rewrites the body of a comment
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET body = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.Body, time.Now())
	return err
}

// Delete removes exactly one comment
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

// ListForContent retrieves all comments on a content item, oldest first
func (r *commentRepo) ListForContent(ctx context.Context, ref models.ContentRef) ([]*models.Comment, error) {
	column, err := refColumn(ref)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, user_id, article_id, newsletter_id, body, created_at, updated_at
		FROM comments WHERE ` + column + ` = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, ref.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.UserID, &comment.ArticleID, &comment.NewsletterID,
			&comment.Body, &comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
