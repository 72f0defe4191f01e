package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/mocks"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/sentiment"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() (*service.Services, *mocks.RepoSet) {
	set := mocks.NewRepoSet()
	svcs := service.NewServices(set.Repositories(), sentiment.Static{Result: models.SentimentNeutral}, zerolog.Nop())
	return svcs, set
}

func journalist(id string) *auth.Principal {
	return &auth.Principal{ID: id, Username: "journalist-" + id, Role: models.RoleJournalist}
}

func editor(id string) *auth.Principal {
	return &auth.Principal{ID: id, Username: "editor-" + id, Role: models.RoleEditor}
}

func reader(id string) *auth.Principal {
	return &auth.Principal{ID: id, Username: "reader-" + id, Role: models.RoleReader}
}

func TestArticleCreate(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	article, err := svcs.Article.Create(ctx, journalist("j1"), service.ContentInput{Title: "Breaking", Body: "Something happened."})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, article.Status)
	assert.Equal(t, "j1", article.AuthorID)
	assert.Equal(t, models.SentimentNeutral, article.Sentiment)
}

func TestArticleCreate_RoleGated(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	in := service.ContentInput{Title: "Breaking", Body: "Body."}

	_, err := svcs.Article.Create(ctx, reader("r1"), in)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svcs.Article.Create(ctx, editor("e1"), in)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svcs.Article.Create(ctx, nil, in)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestArticleCreate_Validation(t *testing.T) {
	svcs, _ := newTestServices()

	_, err := svcs.Article.Create(context.Background(), journalist("j1"), service.ContentInput{Title: "", Body: ""})
	assert.ErrorIs(t, err, service.ErrValidation)

	var vErr *service.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 2)
}

func TestApprovalWorkflow_AuthorEditResetsApproval(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")

	article, err := svcs.Article.Create(ctx, j, service.ContentInput{Title: "Draft", Body: "Body."})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, article.Status)

	approved, err := svcs.Article.Approve(ctx, editor("e1"), article.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, approved.Status)

	// Even a title-only edit forces re-review; there is no field diffing.
	edited, err := svcs.Article.Update(ctx, j, article.ID, service.ContentInput{Title: "Draft v2", Body: "Body."})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, edited.Status)
}

func TestApprovalWorkflow_EditorEditKeepsStatus(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	article, err := svcs.Article.Create(ctx, journalist("j1"), service.ContentInput{Title: "Draft", Body: "Body."})
	require.NoError(t, err)

	e := editor("e1")
	_, err = svcs.Article.Approve(ctx, e, article.ID)
	require.NoError(t, err)

	edited, err := svcs.Article.Update(ctx, e, article.ID, service.ContentInput{Title: "House style fix", Body: "Body."})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, edited.Status)
}

func TestApprovalWorkflow_RejectAndResubmit(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")

	article, err := svcs.Article.Create(ctx, j, service.ContentInput{Title: "Draft", Body: "Body."})
	require.NoError(t, err)

	rejected, err := svcs.Article.Reject(ctx, editor("e1"), article.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, rejected.Status)

	// An author edit of rejected content re-enters the review queue.
	edited, err := svcs.Article.Update(ctx, j, article.ID, service.ContentInput{Title: "Draft", Body: "Revised body."})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, edited.Status)
}

func TestArticleReview_EditorOnly(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")

	article, err := svcs.Article.Create(ctx, j, service.ContentInput{Title: "Draft", Body: "Body."})
	require.NoError(t, err)

	_, err = svcs.Article.Approve(ctx, j, article.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svcs.Article.Reject(ctx, reader("r1"), article.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestArticleUpdate_ForbiddenLeavesEntityUnchanged(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()

	article, err := svcs.Article.Create(ctx, journalist("j1"), service.ContentInput{Title: "Original", Body: "Body."})
	require.NoError(t, err)

	// Another journalist and a reader are both denied.
	_, err = svcs.Article.Update(ctx, journalist("j2"), article.ID, service.ContentInput{Title: "Hijacked", Body: "Body."})
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svcs.Article.Update(ctx, reader("r1"), article.ID, service.ContentInput{Title: "Hijacked", Body: "Body."})
	assert.ErrorIs(t, err, service.ErrForbidden)

	stored := set.Articles.Articles[article.ID]
	assert.Equal(t, "Original", stored.Title)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestArticleDelete(t *testing.T) {
	svcs, set := newTestServices()
	ctx := context.Background()
	j := journalist("j1")

	article, err := svcs.Article.Create(ctx, j, service.ContentInput{Title: "Doomed", Body: "Body."})
	require.NoError(t, err)

	assert.ErrorIs(t, svcs.Article.Delete(ctx, reader("r1"), article.ID), service.ErrForbidden)
	assert.ErrorIs(t, svcs.Article.Delete(ctx, journalist("j2"), article.ID), service.ErrForbidden)

	require.NoError(t, svcs.Article.Delete(ctx, j, article.ID))
	assert.Empty(t, set.Articles.Articles)

	assert.ErrorIs(t, svcs.Article.Delete(ctx, j, article.ID), service.ErrNotFound)
}

func TestNewsletterWorkflow(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()
	j := journalist("j1")

	newsletter, err := svcs.Newsletter.Create(ctx, j, service.ContentInput{Title: "Weekly Roundup", Body: "This week..."})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, newsletter.Status)

	_, err = svcs.Newsletter.Approve(ctx, editor("e1"), newsletter.ID)
	require.NoError(t, err)

	edited, err := svcs.Newsletter.Update(ctx, j, newsletter.ID, service.ContentInput{Title: "Weekly Roundup #2", Body: "This week..."})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, edited.Status)
}

// failingClassifier simulates a classifier outage.
type failingClassifier struct{}

func (failingClassifier) Classify(ctx context.Context, text string) (models.Sentiment, error) {
	return "", errors.New("classifier unavailable")
}

func TestClassifierFailureDefaultsToNeutral(t *testing.T) {
	set := mocks.NewRepoSet()
	svcs := service.NewServices(set.Repositories(), failingClassifier{}, zerolog.Nop())

	article, err := svcs.Article.Create(context.Background(), journalist("j1"), service.ContentInput{Title: "Still works", Body: "Body."})
	require.NoError(t, err)
	assert.Equal(t, models.SentimentNeutral, article.Sentiment)
}

func TestClassifierResultStored(t *testing.T) {
	set := mocks.NewRepoSet()
	svcs := service.NewServices(set.Repositories(), sentiment.Static{Result: models.SentimentPositive}, zerolog.Nop())
	ctx := context.Background()
	j := journalist("j1")

	article, err := svcs.Article.Create(ctx, j, service.ContentInput{Title: "Good news", Body: "Everything is great."})
	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, article.Sentiment)

	// Title-only edits keep the stored tag; body edits re-classify.
	edited, err := svcs.Article.Update(ctx, j, article.ID, service.ContentInput{Title: "Great news", Body: "Everything is great."})
	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, edited.Sentiment)
}
