package service_test

import (
	"context"
	"testing"

	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegister(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	user, err := svcs.User.Register(ctx, "alice", "alice@example.com", models.RoleReader)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleReader, user.Role)

	fetched, err := svcs.User.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, fetched.Username)
}

func TestUserRegister_Conflicts(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.User.Register(ctx, "alice", "alice@example.com", models.RoleReader)
	require.NoError(t, err)

	_, err = svcs.User.Register(ctx, "alice", "other@example.com", models.RoleReader)
	assert.ErrorIs(t, err, service.ErrConflict)

	_, err = svcs.User.Register(ctx, "alice2", "alice@example.com", models.RoleReader)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestUserRegister_Validation(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		role     models.Role
	}{
		{"short username", "ab", "a@example.com", models.RoleReader},
		{"bad email", "alice", "not-an-email", models.RoleReader},
		{"unknown role", "alice", "alice@example.com", models.Role("admin")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svcs.User.Register(ctx, tc.username, tc.email, tc.role)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func registerUser(t *testing.T, svcs *service.Services, username string, role models.Role) *models.User {
	t.Helper()
	user, err := svcs.User.Register(context.Background(), username, username+"@example.com", role)
	require.NoError(t, err)
	return user
}

func TestToggleSubscription(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	target := registerUser(t, svcs, "journo", models.RoleJournalist)
	r := reader("r1")

	subscribed, err := svcs.User.ToggleSubscription(ctx, r, target.ID, models.SubscriptionJournalist)
	require.NoError(t, err)
	assert.True(t, subscribed)

	subs, err := svcs.User.Subscriptions(ctx, r)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, target.ID, subs[0].TargetID)
	assert.Equal(t, models.SubscriptionJournalist, subs[0].Kind)

	subscribed, err = svcs.User.ToggleSubscription(ctx, r, target.ID, models.SubscriptionJournalist)
	require.NoError(t, err)
	assert.False(t, subscribed)

	subs, err = svcs.User.Subscriptions(ctx, r)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestToggleSubscription_RoleGated(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	target := registerUser(t, svcs, "journo", models.RoleJournalist)

	// Journalists produce content, they do not subscribe to it.
	_, err := svcs.User.ToggleSubscription(ctx, journalist("j2"), target.ID, models.SubscriptionJournalist)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svcs.User.ToggleSubscription(ctx, nil, target.ID, models.SubscriptionJournalist)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestToggleSubscription_TargetChecks(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	r := reader("r1")

	_, err := svcs.User.ToggleSubscription(ctx, r, "missing", models.SubscriptionJournalist)
	assert.ErrorIs(t, err, service.ErrNotFound)

	plainReader := registerUser(t, svcs, "bob", models.RoleReader)
	_, err = svcs.User.ToggleSubscription(ctx, r, plainReader.ID, models.SubscriptionJournalist)
	assert.ErrorIs(t, err, service.ErrValidation)

	target := registerUser(t, svcs, "journo", models.RoleJournalist)
	_, err = svcs.User.ToggleSubscription(ctx, r, target.ID, models.SubscriptionKind("rss"))
	assert.ErrorIs(t, err, service.ErrValidation)
}
