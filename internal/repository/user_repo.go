package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsroom-platform-api/internal/database"
	"github.com/newsroom-platform-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Role, user.Active,
		user.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, email, role, active, created_at, updated_at
		FROM users WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Role, &user.Active,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users ordered by creation time
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, email, role, active, created_at, updated_at
		FROM users ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.Role, &user.Active,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// EmailExists checks if a user with the given email exists
func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// UsernameExists checks if a user with the given username exists
func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// AddSubscription inserts a subscription, ignoring duplicates
func (r *userRepo) AddSubscription(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, target_id, kind, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, target_id, kind) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, sub.UserID, sub.TargetID, sub.Kind, time.Now())
	return err
}

// RemoveSubscription deletes a subscription
func (r *userRepo) RemoveSubscription(ctx context.Context, userID, targetID string, kind models.SubscriptionKind) error {
	query := `DELETE FROM subscriptions WHERE user_id = $1 AND target_id = $2 AND kind = $3`
	_, err := r.db.ExecContext(ctx, query, userID, targetID, kind)
	return err
}

// SubscriptionExists checks for an existing subscription
func (r *userRepo) SubscriptionExists(ctx context.Context, userID, targetID string, kind models.SubscriptionKind) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE user_id = $1 AND target_id = $2 AND kind = $3)`
	err := r.db.QueryRowContext(ctx, query, userID, targetID, kind).Scan(&exists)
	return exists, err
}

// ListSubscriptions retrieves all subscriptions held by a user
func (r *userRepo) ListSubscriptions(ctx context.Context, userID string) ([]*models.Subscription, error) {
	query := `
		SELECT user_id, target_id, kind, created_at
		FROM subscriptions WHERE user_id = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.UserID, &sub.TargetID, &sub.Kind, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}

// ClearSubscriptions removes every subscription a user holds. Used by role
// reconciliation: journalists hold no subscription sets.
func (r *userRepo) ClearSubscriptions(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE user_id = $1", userID)
	return err
}
