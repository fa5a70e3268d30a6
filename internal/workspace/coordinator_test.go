package workspace

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notewell/internal/logger"
	"notewell/internal/mock"
	"notewell/models"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *mock.MockNoteGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNoteGateway(ctrl)
	return NewCoordinator(gateway, logger.Nop()), gateway
}

func TestMount_RefreshesListAndTagsOnce(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	want := []models.Note{{ID: 1, Title: "first"}}
	gateway.EXPECT().ListNotes(ctx, "").Return(want, nil)
	gateway.EXPECT().ListTags(ctx).Return([]string{"home"}, nil)

	require.NoError(t, c.Mount(ctx))

	assert.Equal(t, want, c.Notes())
	assert.Equal(t, []string{"home"}, c.Tags())
}

func TestMount_TagFailureIsNonFatal(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().ListNotes(ctx, "").Return(nil, nil)
	gateway.EXPECT().ListTags(ctx).Return(nil, errors.New("boom"))

	assert.NoError(t, c.Mount(ctx))
}

func TestMount_ListFailurePropagates(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().ListNotes(ctx, "").Return(nil, errors.New("boom"))

	err := c.Mount(ctx)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestSetSearch_QueriesSearchEndpoint(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	want := []models.Note{{ID: 3, Title: "groceries"}}
	gateway.EXPECT().SearchNotes(ctx, "milk").Return(want, nil)

	require.NoError(t, c.SetSearch(ctx, "milk"))

	assert.Equal(t, ModeSearch, c.Filter().Mode())
	assert.Equal(t, want, c.Notes())
}

func TestSetTag_AfterSearchClearsQuery(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().SearchNotes(ctx, "milk").Return(nil, nil)
	gateway.EXPECT().ListNotes(ctx, "home").Return([]models.Note{{ID: 4}}, nil)

	require.NoError(t, c.SetSearch(ctx, "milk"))
	require.NoError(t, c.SetTag(ctx, "home"))

	filter := c.Filter()
	assert.Equal(t, ModeTag, filter.Mode())
	assert.Equal(t, "home", filter.Tag())
	assert.Empty(t, filter.Query())
}

func TestClearFilter_ReturnsToUnfiltered(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().ListNotes(ctx, "home").Return(nil, nil)
	gateway.EXPECT().ListNotes(ctx, "").Return(nil, nil)

	require.NoError(t, c.SetTag(ctx, "home"))
	require.NoError(t, c.ClearFilter(ctx))

	assert.Equal(t, ModeUnfiltered, c.Filter().Mode())
}

func TestSelectNote_DoesNotTouchFilter(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().ListNotes(ctx, "home").Return(nil, nil)
	require.NoError(t, c.SetTag(ctx, "home"))

	c.SelectNote(models.Note{ID: 7, Title: "plans", Content: "body", Tags: "home"})

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, ModeTag, c.Filter().Mode())
	assert.Equal(t, "plans", c.Draft().Title)
}

func TestNewNote_ResetsBufferAndClearsFilter(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().SearchNotes(ctx, "milk").Return(nil, nil)
	require.NoError(t, c.SetSearch(ctx, "milk"))
	c.SelectNote(models.Note{ID: 7, Title: "plans"})

	gateway.EXPECT().ListNotes(ctx, "").Return(nil, nil)
	require.NoError(t, c.NewNote(ctx))

	_, editing := c.Editing()
	assert.False(t, editing)
	assert.Empty(t, c.Draft().Title)
	assert.Equal(t, ModeUnfiltered, c.Filter().Mode())
}

func TestSave_EmptyTitleNeverReachesGateway(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.SetDraft("   ", "content without a title", "tags")

	_, err := c.Save(context.Background())

	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestSave_CreateBindsNewID(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SetDraft("Groceries", "milk, eggs", "home")

	created := models.Note{ID: 10, Title: "Groceries", Summary: "milk, eggs..."}
	gomock.InOrder(
		gateway.EXPECT().CreateNote(ctx, models.NoteDraft{
			Title:   "Groceries",
			Content: "milk, eggs",
			Tags:    "home",
		}).Return(created, nil),
		gateway.EXPECT().ListNotes(ctx, "").Return([]models.Note{created}, nil),
		gateway.EXPECT().ListTags(ctx).Return([]string{"home"}, nil),
	)

	note, err := c.Save(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(10), note.ID)

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, int64(10), id)
	assert.Equal(t, []models.Note{created}, c.Notes())
}

func TestSave_UpdateUsesBoundID(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SelectNote(models.Note{ID: 7, Title: "plans", Content: "old", Tags: "home"})
	c.SetDraft("plans", "new body", "home")

	gateway.EXPECT().UpdateNote(ctx, int64(7), models.NoteDraft{
		Title:   "plans",
		Content: "new body",
		Tags:    "home",
	}).Return(models.Note{ID: 7, Title: "plans"}, nil)
	gateway.EXPECT().ListNotes(ctx, "").Return(nil, nil)
	gateway.EXPECT().ListTags(ctx).Return(nil, nil)

	_, err := c.Save(ctx)

	require.NoError(t, err)

	id, _ := c.Editing()
	assert.Equal(t, int64(7), id)
}

func TestSave_GatewayFailureLeavesBufferUnchanged(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SetDraft("Groceries", "milk", "home")
	gateway.EXPECT().CreateNote(ctx, gomock.Any()).Return(models.Note{}, errors.New("server down"))

	_, err := c.Save(ctx)

	require.ErrorIs(t, err, ErrPersistence)

	_, editing := c.Editing()
	assert.False(t, editing, "buffer must stay in create mode after a failed save")
	assert.Equal(t, "Groceries", c.Draft().Title)
}

func TestSave_SecondSaveRejectedWhileInFlight(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SetDraft("Groceries", "milk", "home")

	started := make(chan struct{})
	release := make(chan struct{})

	gateway.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.NoteDraft) (models.Note, error) {
			close(started)
			<-release
			return models.Note{ID: 10}, nil
		})
	gateway.EXPECT().ListNotes(ctx, "").Return(nil, nil)
	gateway.EXPECT().ListTags(ctx).Return(nil, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Save(ctx)
		assert.NoError(t, err)
	}()

	<-started
	_, err := c.Save(ctx)
	require.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, err, ErrSaveInFlight)

	close(release)
	wg.Wait()
}

func TestSave_CreateSettlingAfterSelectKeepsSelection(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SetDraft("Groceries", "milk", "home")

	started := make(chan struct{})
	release := make(chan struct{})

	gateway.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.NoteDraft) (models.Note, error) {
			close(started)
			<-release
			return models.Note{ID: 10}, nil
		})
	gateway.EXPECT().ListNotes(ctx, "").Return(nil, nil)
	gateway.EXPECT().ListTags(ctx).Return(nil, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Save(ctx)
		assert.NoError(t, err)
	}()

	<-started
	c.SelectNote(models.Note{ID: 7, Title: "plans"})

	close(release)
	wg.Wait()

	id, editing := c.Editing()
	require.True(t, editing)
	assert.Equal(t, int64(7), id)
}

func TestDelete_CreatingModeRejected(t *testing.T) {
	c, _ := newTestCoordinator(t)

	err := c.Delete(context.Background())

	require.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, err, ErrNoBoundNote)
}

func TestDelete_Success_ResetsBufferAndRefreshes(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SelectNote(models.Note{ID: 7, Title: "plans"})

	gomock.InOrder(
		gateway.EXPECT().DeleteNote(ctx, int64(7)).Return(nil),
		gateway.EXPECT().ListNotes(ctx, "").Return([]models.Note{}, nil),
		gateway.EXPECT().ListTags(ctx).Return([]string{}, nil),
	)

	require.NoError(t, c.Delete(ctx))

	_, editing := c.Editing()
	assert.False(t, editing)
	assert.Empty(t, c.Notes())
}

func TestDelete_GatewayFailureKeepsBuffer(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	c.SelectNote(models.Note{ID: 7, Title: "plans"})
	gateway.EXPECT().DeleteNote(ctx, int64(7)).Return(errors.New("server down"))

	err := c.Delete(ctx)

	require.ErrorIs(t, err, ErrPersistence)

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, int64(7), id)
}

func TestRefreshTags_FailureKeepsPreviousSet(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	gateway.EXPECT().ListTags(ctx).Return([]string{"work", "home"}, nil)
	require.NoError(t, c.RefreshTags(ctx))
	require.Equal(t, []string{"work", "home"}, c.Tags())

	gateway.EXPECT().ListTags(ctx).Return(nil, errors.New("boom"))
	err := c.RefreshTags(ctx)

	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, []string{"work", "home"}, c.Tags(), "failed refresh must not clear the cached set")
}

func TestRefreshNotes_SlowStaleResponseDiscarded(t *testing.T) {
	c, gateway := newTestCoordinator(t)
	ctx := context.Background()

	slowStarted := make(chan struct{})
	release := make(chan struct{})

	slowResult := []models.Note{{ID: 1, Title: "stale search result"}}
	fastResult := []models.Note{{ID: 2, Title: "fresh tag result"}}

	gateway.EXPECT().SearchNotes(ctx, "slow").DoAndReturn(
		func(context.Context, string) ([]models.Note, error) {
			close(slowStarted)
			<-release
			return slowResult, nil
		})
	gateway.EXPECT().ListNotes(ctx, "fast").Return(fastResult, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.SetSearch(ctx, "slow"))
	}()

	// wait until the slow refresh has been issued, then supersede it
	<-slowStarted
	require.NoError(t, c.SetTag(ctx, "fast"))
	require.Equal(t, fastResult, c.Notes())

	// let the stale response arrive; it must be dropped
	close(release)
	wg.Wait()

	assert.Equal(t, fastResult, c.Notes(), "stale search result must not clobber the newer tag result")
}
