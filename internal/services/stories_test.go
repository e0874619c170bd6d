package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/logger"
	"github.com/rohits-web03/travelstory/internal/models"
	"github.com/rohits-web03/travelstory/internal/services/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholder = "http://localhost:8000/assets/placeholder.png"

func newStoryService(t *testing.T) (*StoryService, *servicetest.Stories, *servicetest.Images) {
	t.Helper()
	stories := servicetest.NewStories()
	images := servicetest.NewImages()
	svc := NewStoryService(stories, images, placeholder, logger.Discard())
	t.Cleanup(svc.Wait)
	return svc, stories, images
}

func storyInput(title string, date int64) StoryInput {
	return StoryInput{
		Title:           title,
		Story:           "A day to remember",
		VisitedLocation: models.Locations{"Paris, France"},
		ImageURL:        "http://localhost:8000/uploads/" + title + ".png",
		VisitedDate:     models.EpochMillis(date),
	}
}

func TestStoryService_Add_PreservesVisitedDate(t *testing.T) {
	svc, _, _ := newStoryService(t)
	const date = 1717200000123

	story, err := svc.Add(context.Background(), uuid.New(), storyInput("louvre", date))
	require.NoError(t, err)
	assert.Equal(t, int64(date), story.VisitedDate.UnixMilli())
	assert.Equal(t, time.UTC, story.VisitedDate.Location())
	assert.False(t, story.IsFavourite)
}

func TestStoryService_Add_Validation(t *testing.T) {
	svc, stories, _ := newStoryService(t)
	base := storyInput("x", 1)

	cases := map[string]func(*StoryInput){
		"title":    func(in *StoryInput) { in.Title = " " },
		"story":    func(in *StoryInput) { in.Story = "" },
		"location": func(in *StoryInput) { in.VisitedLocation = models.Locations{""} },
		"date":     func(in *StoryInput) { in.VisitedDate = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := svc.Add(context.Background(), uuid.New(), in)
			assert.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, "All fields are required")
		})
	}
	assert.Zero(t, stories.Len())
}

func TestStoryService_Add_EmptyImageUsesPlaceholder(t *testing.T) {
	svc, _, _ := newStoryService(t)
	in := storyInput("x", 1)
	in.ImageURL = ""

	story, err := svc.Add(context.Background(), uuid.New(), in)
	require.NoError(t, err)
	assert.Equal(t, placeholder, story.ImageURL)
}

func TestStoryService_Edit(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()

	story, err := svc.Add(ctx, owner, storyInput("alps", 1000))
	require.NoError(t, err)
	_, err = svc.SetFavourite(ctx, owner, story.ID.String(), true)
	require.NoError(t, err)

	in := storyInput("alps-again", 2000)
	in.ImageURL = ""
	edited, err := svc.Edit(ctx, owner, story.ID.String(), in)
	require.NoError(t, err)
	assert.Equal(t, "alps-again", edited.Title)
	assert.Equal(t, placeholder, edited.ImageURL)
	assert.Equal(t, int64(2000), edited.VisitedDate.UnixMilli())
	assert.True(t, edited.IsFavourite)
}

func TestStoryService_OwnershipIsolation(t *testing.T) {
	svc, stories, images := newStoryService(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	story, err := svc.Add(ctx, alice, storyInput("secret", 1))
	require.NoError(t, err)
	id := story.ID.String()

	_, err = svc.Edit(ctx, bob, id, storyInput("hijacked", 2))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetFavourite(ctx, bob, id, true)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, id), ErrNotFound)

	list, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	found, err := svc.Search(ctx, bob, "secret")
	require.NoError(t, err)
	assert.Empty(t, found)

	svc.Wait()
	assert.Empty(t, images.Deleted())

	stored, ok := stories.Get(story.ID)
	require.True(t, ok)
	assert.Equal(t, "secret", stored.Title)
	assert.False(t, stored.IsFavourite)
}

func TestStoryService_MalformedIDIsNotFound(t *testing.T) {
	svc, _, _ := newStoryService(t)
	_, err := svc.SetFavourite(context.Background(), uuid.New(), "not-a-uuid", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoryService_FavouritesFirst(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()

	first, err := svc.Add(ctx, owner, storyInput("first", 1))
	require.NoError(t, err)
	_, err = svc.Add(ctx, owner, storyInput("second", 2))
	require.NoError(t, err)
	_, err = svc.SetFavourite(ctx, owner, first.ID.String(), true)
	require.NoError(t, err)

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Title)
	assert.True(t, list[0].IsFavourite)
	assert.Equal(t, "second", list[1].Title)
}

func TestStoryService_SetFavourite_Idempotent(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()
	story, err := svc.Add(ctx, owner, storyInput("x", 1))
	require.NoError(t, err)

	once, err := svc.SetFavourite(ctx, owner, story.ID.String(), true)
	require.NoError(t, err)
	twice, err := svc.SetFavourite(ctx, owner, story.ID.String(), true)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.True(t, twice.IsFavourite)
}

func TestStoryService_Search(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()
	_, err := svc.Add(ctx, owner, storyInput("louvre", 1))
	require.NoError(t, err)

	found, err := svc.Search(ctx, owner, "paris")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "louvre", found[0].Title)

	_, err = svc.Search(ctx, owner, "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Query is required")
}

func TestStoryService_Filter_Inclusive(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()
	for i, d := range []int64{999, 1000, 1500, 2000, 2001} {
		_, err := svc.Add(ctx, owner, storyInput(string(rune('a'+i)), d))
		require.NoError(t, err)
	}

	got, err := svc.Filter(ctx, owner, 1000, 2000)
	require.NoError(t, err)
	titles := []string{}
	for _, s := range got {
		titles = append(titles, s.Title)
	}
	assert.ElementsMatch(t, []string{"b", "c", "d"}, titles)

	_, err = svc.Filter(ctx, owner, 2000, 1000)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStoryService_Delete_CleansUpImage(t *testing.T) {
	svc, stories, images := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()
	story, err := svc.Add(ctx, owner, storyInput("x", 1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, story.ID.String()))
	svc.Wait()

	assert.Zero(t, stories.Len())
	assert.Equal(t, []string{story.ImageURL}, images.Deleted())
}

func TestStoryService_Delete_SucceedsWhenImageRemovalFails(t *testing.T) {
	svc, stories, images := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()
	story, err := svc.Add(ctx, owner, storyInput("x", 1))
	require.NoError(t, err)

	images.DeleteErr = errBoom
	require.NoError(t, svc.Delete(ctx, owner, story.ID.String()))
	svc.Wait()

	assert.Zero(t, stories.Len())
	assert.Len(t, images.Deleted(), 1)
}

func TestStoryService_Delete_DoesNotWaitForCleanup(t *testing.T) {
	svc, _, images := newStoryService(t)
	ctx, cancel := context.WithCancel(context.Background())
	owner := uuid.New()
	story, err := svc.Add(ctx, owner, storyInput("x", 1))
	require.NoError(t, err)

	images.Started = make(chan struct{})
	images.Release = make(chan struct{})

	require.NoError(t, svc.Delete(ctx, owner, story.ID.String()))
	// The request is over; the cleanup must not see the cancellation.
	cancel()
	<-images.Started
	assert.Empty(t, images.Deleted())

	close(images.Release)
	svc.Wait()
	assert.Len(t, images.Deleted(), 1)
}

func TestStoryService_Delete_SkipsPlaceholder(t *testing.T) {
	svc, _, images := newStoryService(t)
	ctx := context.Background()
	owner := uuid.New()
	in := storyInput("x", 1)
	in.ImageURL = ""
	story, err := svc.Add(ctx, owner, in)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, story.ID.String()))
	svc.Wait()
	assert.Empty(t, images.Deleted())
}
