package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// newsletterRepo is the concrete implementation of NewsletterRepository
type newsletterRepo struct {
	db *database.DB
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(db *database.DB) NewsletterRepository {
	return &newsletterRepo{db: db}
}

// Create inserts a new newsletter
func (r *newsletterRepo) Create(ctx context.Context, newsletter *models.Newsletter) error {
	query := `
		INSERT INTO newsletters (id, title, body, author_id, status, sentiment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		newsletter.ID, newsletter.Title, newsletter.Body, newsletter.AuthorID,
		newsletter.Status, newsletter.Sentiment,
		newsletter.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves a newsletter by ID
func (r *newsletterRepo) GetByID(ctx context.Context, id string) (*models.Newsletter, error) {
	query := `
		SELECT id, title, body, author_id, status, sentiment, created_at, updated_at
		FROM newsletters WHERE id = $1
	`
	var newsletter models.Newsletter
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&newsletter.ID, &newsletter.Title, &newsletter.Body, &newsletter.AuthorID,
		&newsletter.Status, &newsletter.Sentiment, &newsletter.CreatedAt, &newsletter.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &newsletter, nil
}

// GetSnapshot retrieves the author/title view of a newsletter
func (r *newsletterRepo) GetSnapshot(ctx context.Context, ref models.ContentRef) (*models.ContentSnapshot, error) {
	var snap models.ContentSnapshot
	query := `SELECT title, author_id FROM newsletters WHERE id = $1`
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

// List retrieves all newsletters ordered by creation time
func (r *newsletterRepo) List(ctx context.Context) ([]*models.Newsletter, error) {
	query := `
		SELECT id, title, body, author_id, status, sentiment, created_at, updated_at
		FROM newsletters ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var newsletters []*models.Newsletter
	for rows.Next() {
		var newsletter models.Newsletter
		err := rows.Scan(
			&newsletter.ID, &newsletter.Title, &newsletter.Body, &newsletter.AuthorID,
			&newsletter.Status, &newsletter.Sentiment, &newsletter.CreatedAt, &newsletter.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		newsletters = append(newsletters, &newsletter)
	}
	return newsletters, rows.Err()
}

// Update writes title, body, status and sentiment of a newsletter
func (r *newsletterRepo) Update(ctx context.Context, newsletter *models.Newsletter) error {
	query := `
		UPDATE newsletters
		SET title = $2, body = $3, status = $4, sentiment = $5, updated_at = $6
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		newsletter.ID, newsletter.Title, newsletter.Body, newsletter.Status, newsletter.Sentiment, time.Now(),
	)
	return err
}

// UpdateStatus sets only the workflow status of a newsletter
func (r *newsletterRepo) UpdateStatus(ctx context.Context, id string, status models.ContentStatus) error {
	query := `UPDATE newsletters SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	return err
}

// Delete removes a newsletter; dependent rows cascade at the schema level
func (r *newsletterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM newsletters WHERE id = $1", id)
	return err
}

// Count returns the total number of newsletters
func (r *newsletterRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM newsletters").Scan(&count)
	return count, err
}
