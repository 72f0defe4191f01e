package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// reactionRepo is the concrete implementation of ReactionRepository
type reactionRepo struct {
	db *database.DB
}

// NewReactionRepo creates a new reaction repository
func NewReactionRepo(db *database.DB) ReactionRepository {
	return &reactionRepo{db: db}
}

// Toggle flips a user's reaction on a content item inside one transaction.
// The content row is locked first so two simultaneous toggles from the same
// user serialize instead of producing contradictory membership. A single
// reaction row per (user, content) carries the kind, so like and dislike
// stay mutually exclusive.
//
// Returns nil when the content item no longer exists.
func (r *reactionRepo) Toggle(ctx context.Context, userID string, ref models.ContentRef, kind models.ReactionKind) (*ToggleOutcome, error) {
	column, err := refColumn(ref)
	if err != nil {
		return nil, err
	}
	table, err := contentTable(ref)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Serialize all reaction mutations on this content item.
	var contentID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM "+table+" WHERE id = $1 FOR UPDATE", ref.ID).Scan(&contentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var current models.ReactionKind
	err = tx.QueryRowContext(ctx,
		"SELECT kind FROM reactions WHERE user_id = $1 AND "+column+" = $2",
		userID, ref.ID,
	).Scan(&current)

	outcome := &ToggleOutcome{Kind: kind}

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx,
			"INSERT INTO reactions (user_id, "+column+", kind, created_at) VALUES ($1, $2, $3, $4)",
			userID, ref.ID, kind, time.Now(),
		)
		outcome.Added = true
	case err != nil:
		return nil, err
	case current == kind:
		// Second identical action undoes the first.
		_, err = tx.ExecContext(ctx,
			"DELETE FROM reactions WHERE user_id = $1 AND "+column+" = $2",
			userID, ref.ID,
		)
	default:
		// Held the opposite kind: switch polarity in place.
		_, err = tx.ExecContext(ctx,
			"UPDATE reactions SET kind = $3, created_at = $4 WHERE user_id = $1 AND "+column+" = $2",
			userID, ref.ID, kind, time.Now(),
		)
		outcome.Added = true
		outcome.Switched = true
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return outcome, nil
}

// Get retrieves the reaction a user holds on a content item, if any
func (r *reactionRepo) Get(ctx context.Context, userID string, ref models.ContentRef) (*models.Reaction, error) {
	column, err := refColumn(ref)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT user_id, article_id, newsletter_id, kind, created_at
		FROM reactions WHERE user_id = $1 AND ` + column + ` = $2
	`
	var reaction models.Reaction
	err = r.db.QueryRowContext(ctx, query, userID, ref.ID).Scan(
		&reaction.UserID, &reaction.ArticleID, &reaction.NewsletterID,
		&reaction.Kind, &reaction.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// Counts tallies likes and dislikes on a content item
func (r *reactionRepo) Counts(ctx context.Context, ref models.ContentRef) (*models.ReactionCounts, error) {
	column, err := refColumn(ref)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT
			COUNT(*) FILTER (WHERE kind = 'like'),
			COUNT(*) FILTER (WHERE kind = 'dislike')
		FROM reactions WHERE ` + column + ` = $1
	`
	var counts models.ReactionCounts
	if err := r.db.QueryRowContext(ctx, query, ref.ID).Scan(&counts.Likes, &counts.Dislikes); err != nil {
		return nil, err
	}
	return &counts, nil
}
