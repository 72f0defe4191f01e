package service_test

import (
	"context"
	"testing"

	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedArticle creates a pending article owned by authorID and returns its ref.
func seedArticle(t *testing.T, svcs *service.Services, authorID string) models.ContentRef {
	t.Helper()
	article, err := svcs.Article.Create(context.Background(), journalist(authorID), service.ContentInput{
		Title: "Seeded",
		Body:  "Body.",
	})
	require.NoError(t, err)
	return article.Ref()
}

func TestToggleLike_NotifiesAuthor(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")

	state, err := svcs.Reaction.Toggle(ctx, reader("r1"), ref, models.ReactionLike)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, models.ReactionLike, state.Kind)
	assert.Equal(t, 1, state.Counts.Likes)
	assert.Equal(t, 0, state.Counts.Dislikes)

	require.Len(t, set.Notifications.Notifications, 1)
	n := set.Notifications.Notifications[0]
	assert.Equal(t, "j1", n.RecipientID)
	assert.Equal(t, "r1", n.SenderID)
	assert.Equal(t, models.NotificationLike, n.Type)
	assert.False(t, n.IsRead)
}

func TestToggleLike_SecondToggleRemoves(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	_, err := svcs.Reaction.Toggle(ctx, r, ref, models.ReactionLike)
	require.NoError(t, err)

	state, err := svcs.Reaction.Toggle(ctx, r, ref, models.ReactionLike)
	require.NoError(t, err)
	assert.False(t, state.Active)
	assert.Equal(t, 0, state.Counts.Likes)

	// Un-liking emits nothing: still only the original notification.
	assert.Len(t, set.Notifications.Notifications, 1)
}

func TestToggleDislike_SwitchesFromLike(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	_, err := svcs.Reaction.Toggle(ctx, r, ref, models.ReactionLike)
	require.NoError(t, err)

	state, err := svcs.Reaction.Toggle(ctx, r, ref, models.ReactionDislike)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, models.ReactionDislike, state.Kind)
	assert.Equal(t, 0, state.Counts.Likes)
	assert.Equal(t, 1, state.Counts.Dislikes)

	// One notification per registered reaction: the like, then the dislike.
	require.Len(t, set.Notifications.Notifications, 2)
	assert.Equal(t, models.NotificationDislike, set.Notifications.Notifications[1].Type)
}

func TestToggle_SelfReactionSuppressesNotification(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	j := journalist("j1")
	ref := seedArticle(t, svcs, "j1")

	state, err := svcs.Reaction.Toggle(ctx, j, ref, models.ReactionLike)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, 1, state.Counts.Likes)

	assert.Empty(t, set.Notifications.Notifications)
}

func TestToggle_ContentMissing(t *testing.T) {
	svcs, _ := newTestServices()
	ref := models.ContentRef{Type: models.ContentArticle, ID: "missing"}

	_, err := svcs.Reaction.Toggle(context.Background(), reader("r1"), ref, models.ReactionLike)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestToggle_RequiresPrincipal(t *testing.T) {
	svcs, _ := newTestServices()
	ref := seedArticle(t, svcs, "j1")

	_, err := svcs.Reaction.Toggle(context.Background(), nil, ref, models.ReactionLike)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestToggle_IndependentPerUser(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")

	_, err := svcs.Reaction.Toggle(ctx, reader("r1"), ref, models.ReactionLike)
	require.NoError(t, err)
	state, err := svcs.Reaction.Toggle(ctx, reader("r2"), ref, models.ReactionDislike)
	require.NoError(t, err)

	assert.Equal(t, 1, state.Counts.Likes)
	assert.Equal(t, 1, state.Counts.Dislikes)
}

func TestToggleBookmark(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	bookmarked, err := svcs.Reaction.ToggleBookmark(ctx, r, ref)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = svcs.Reaction.ToggleBookmark(ctx, r, ref)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	// Bookmarks are private: no notification either way.
	assert.Empty(t, set.Notifications.Notifications)
}

func TestBookmarksList(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	_, err := svcs.Reaction.ToggleBookmark(ctx, r, ref)
	require.NoError(t, err)

	bookmarks, err := svcs.Reaction.Bookmarks(ctx, r)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	require.NotNil(t, bookmarks[0].ArticleID)
	assert.Equal(t, ref.ID, *bookmarks[0].ArticleID)

	// Other users see their own empty list.
	bookmarks, err = svcs.Reaction.Bookmarks(ctx, reader("r2"))
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	_, err = svcs.Reaction.Bookmarks(ctx, nil)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestToggleBookmark_ContentMissing(t *testing.T) {
	svcs, _ := newTestServices()
	ref := models.ContentRef{Type: models.ContentNewsletter, ID: "missing"}

	_, err := svcs.Reaction.ToggleBookmark(context.Background(), reader("r1"), ref)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestArticleGet_IncludesInteractionState(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	_, err := svcs.Reaction.Toggle(ctx, r, ref, models.ReactionLike)
	require.NoError(t, err)
	_, err = svcs.Reaction.ToggleBookmark(ctx, r, ref)
	require.NoError(t, err)
	_, err = svcs.Comment.Create(ctx, r, ref, "Nice.")
	require.NoError(t, err)

	detail, err := svcs.Article.Get(ctx, r, ref.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Article)
	assert.Equal(t, 1, detail.Counts.Likes)
	assert.True(t, detail.Bookmarked)
	require.NotNil(t, detail.MyReaction)
	assert.Equal(t, models.ReactionLike, *detail.MyReaction)
	assert.Len(t, detail.Comments, 1)

	// A different viewer sees the same tallies but no personal state.
	other, err := svcs.Article.Get(ctx, reader("r2"), ref.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, other.Counts.Likes)
	assert.False(t, other.Bookmarked)
	assert.Nil(t, other.MyReaction)
}

func TestToggle_NotificationFailureIsNonFatal(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")

	set.Notifications.InsertError = context.DeadlineExceeded

	state, err := svcs.Reaction.Toggle(ctx, reader("r1"), ref, models.ReactionLike)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, 1, state.Counts.Likes)
}
