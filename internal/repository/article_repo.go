package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, body, author_id, status, sentiment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Body, article.AuthorID,
		article.Status, article.Sentiment,
		article.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `
		SELECT id, title, body, author_id, status, sentiment, created_at, updated_at
		FROM articles WHERE id = $1
	`
	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Body, &article.AuthorID,
		&article.Status, &article.Sentiment, &article.CreatedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetSnapshot retrieves the author/title view of an article
func (r *articleRepo) GetSnapshot(ctx context.Context, ref models.ContentRef) (*models.ContentSnapshot, error) {
	var snap models.ContentSnapshot
	query := `SELECT title, author_id FROM articles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, ref.ID).Scan(&snap.Title, &snap.AuthorID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap.Ref = ref
	return &snap, nil
}

// List retrieves all articles ordered by creation time
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	query := `
		SELECT id, title, body, author_id, status, sentiment, created_at, updated_at
		FROM articles ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID, &article.Title, &article.Body, &article.AuthorID,
			&article.Status, &article.Sentiment, &article.CreatedAt, &article.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// Update writes title, body, status and sentiment of an article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $2, body = $3, status = $4, sentiment = $5, updated_at = $6
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Body, article.Status, article.Sentiment, time.Now(),
	)
	return err
}

// UpdateStatus sets only the workflow status of an article
func (r *articleRepo) UpdateStatus(ctx context.Context, id string, status models.ContentStatus) error {
	query := `UPDATE articles SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	return err
}

// Delete removes an article; dependent rows cascade at the schema level
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}
