package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreate(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")

	comment, err := svcs.Comment.Create(ctx, reader("r1"), ref, "Great read!")
	require.NoError(t, err)
	assert.Equal(t, "r1", comment.UserID)
	assert.Equal(t, "Great read!", comment.Body)
	require.NotNil(t, comment.ArticleID)
	assert.Equal(t, ref.ID, *comment.ArticleID)
	assert.Nil(t, comment.NewsletterID)

	require.Len(t, set.Notifications.Notifications, 1)
	n := set.Notifications.Notifications[0]
	assert.Equal(t, "j1", n.RecipientID)
	assert.Equal(t, "r1", n.SenderID)
	assert.Equal(t, models.NotificationComment, n.Type)
}

func TestCommentCreate_Validation(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")

	_, err := svcs.Comment.Create(ctx, reader("r1"), ref, "   ")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svcs.Comment.Create(ctx, reader("r1"), ref, strings.Repeat("x", models.MaxCommentLength+1))
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCommentCreate_ContentMissing(t *testing.T) {
	svcs, _ := newTestServices()
	ref := models.ContentRef{Type: models.ContentArticle, ID: "missing"}

	_, err := svcs.Comment.Create(context.Background(), reader("r1"), ref, "Hello?")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentCreate_SelfCommentNoNotification(t *testing.T) {
	svcs, set := newTestServices()
	ref := seedArticle(t, svcs, "j1")

	_, err := svcs.Comment.Create(context.Background(), journalist("j1"), ref, "Author's note.")
	require.NoError(t, err)
	assert.Empty(t, set.Notifications.Notifications)
}

func TestCommentUpdate_AuthorOnly(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	comment, err := svcs.Comment.Create(ctx, r, ref, "First thought.")
	require.NoError(t, err)

	updated, err := svcs.Comment.Update(ctx, r, comment.ID, "Second thought.")
	require.NoError(t, err)
	assert.Equal(t, "Second thought.", updated.Body)

	_, err = svcs.Comment.Update(ctx, reader("r2"), comment.ID, "Hijacked.")
	assert.ErrorIs(t, err, service.ErrForbidden)

	// Not even the content's author may edit someone else's comment.
	_, err = svcs.Comment.Update(ctx, journalist("j1"), comment.ID, "Hijacked.")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCommentDelete_RemovesOnlyTarget(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	ref := seedArticle(t, svcs, "j1")
	r := reader("r1")

	first, err := svcs.Comment.Create(ctx, r, ref, "Keep me.")
	require.NoError(t, err)
	second, err := svcs.Comment.Create(ctx, r, ref, "Delete me.")
	require.NoError(t, err)

	assert.ErrorIs(t, svcs.Comment.Delete(ctx, reader("r2"), second.ID), service.ErrForbidden)

	require.NoError(t, svcs.Comment.Delete(ctx, r, second.ID))

	remaining, err := svcs.Comment.ListForContent(ctx, ref)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, first.ID, remaining[0].ID)

	// The content item itself is untouched.
	assert.Contains(t, set.Articles.Articles, ref.ID)

	assert.ErrorIs(t, svcs.Comment.Delete(ctx, r, second.ID), service.ErrNotFound)
}

func TestCommentsOnNewsletter(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	newsletter, err := svcs.Newsletter.Create(ctx, journalist("j1"), service.ContentInput{Title: "Digest", Body: "Body."})
	require.NoError(t, err)

	comment, err := svcs.Comment.Create(ctx, reader("r1"), newsletter.Ref(), "Subscribed!")
	require.NoError(t, err)
	require.NotNil(t, comment.NewsletterID)
	assert.Equal(t, newsletter.ID, *comment.NewsletterID)
	assert.Nil(t, comment.ArticleID)
}
