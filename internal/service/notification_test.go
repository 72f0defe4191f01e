package service_test

import (
	"context"
	"testing"

	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFeed(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")
	ref := seedArticle(t, svcs, "j1")

	_, err := svcs.Comment.Create(ctx, reader("r1"), ref, "First!")
	require.NoError(t, err)
	_, err = svcs.Reaction.Toggle(ctx, reader("r2"), ref, models.ReactionLike)
	require.NoError(t, err)

	feed, err := svcs.Notification.List(ctx, j)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	count, err := svcs.Notification.UnreadCount(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// The feed is scoped to its recipient.
	other, err := svcs.Notification.List(ctx, reader("r1"))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestNotificationMarkRead(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")
	ref := seedArticle(t, svcs, "j1")

	_, err := svcs.Comment.Create(ctx, reader("r1"), ref, "First!")
	require.NoError(t, err)

	feed, err := svcs.Notification.List(ctx, j)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, svcs.Notification.MarkRead(ctx, j, feed[0].ID))

	count, err := svcs.Notification.UnreadCount(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Marking someone else's notification behaves as if it does not exist.
	assert.ErrorIs(t, svcs.Notification.MarkRead(ctx, reader("r2"), feed[0].ID), service.ErrNotFound)
}

func TestNotificationMarkAllRead(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")
	ref := seedArticle(t, svcs, "j1")

	for _, r := range []string{"r1", "r2", "r3"} {
		_, err := svcs.Reaction.Toggle(ctx, reader(r), ref, models.ReactionLike)
		require.NoError(t, err)
	}

	updated, err := svcs.Notification.MarkAllRead(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	count, err := svcs.Notification.UnreadCount(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Idempotent: nothing left to update on the second pass.
	updated, err = svcs.Notification.MarkAllRead(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestNotificationRequiresPrincipal(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.Notification.List(ctx, nil)
	assert.ErrorIs(t, err, service.ErrForbidden)

	assert.ErrorIs(t, svcs.Notification.MarkRead(ctx, nil, "any"), service.ErrForbidden)

	_, err = svcs.Notification.MarkAllRead(ctx, nil)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svcs.Notification.UnreadCount(ctx, nil)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
