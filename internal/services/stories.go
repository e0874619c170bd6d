package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/models"
	"github.com/rohits-web03/travelstory/internal/repositories"
	"github.com/sirupsen/logrus"
)

// StoryInput is the body of add-story and edit-story.
type StoryInput struct {
	Title           string             `json:"title"`
	Story           string             `json:"story"`
	VisitedLocation models.Locations   `json:"visitedLocation"`
	ImageURL        string             `json:"imageUrl"`
	VisitedDate     models.EpochMillis `json:"visitedDate"`
}

func (in *StoryInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Title == "" || strings.TrimSpace(in.Story) == "" || in.VisitedLocation.Empty() || in.VisitedDate == 0 {
		return invalid("All fields are required")
	}
	return nil
}

// StoryService implements the travel story operations. Every call is scoped
// to the user id the caller authenticated as.
type StoryService struct {
	stories     StoryStore
	images      ImageStore
	placeholder string
	log         logrus.FieldLogger

	cleanups sync.WaitGroup
}

func NewStoryService(stories StoryStore, images ImageStore, placeholderURL string, log logrus.FieldLogger) *StoryService {
	return &StoryService{
		stories:     stories,
		images:      images,
		placeholder: placeholderURL,
		log:         log,
	}
}

func (s *StoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	stories, err := s.stories.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return stories, nil
}

func (s *StoryService) Add(ctx context.Context, userID uuid.UUID, in StoryInput) (*models.Story, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	story := &models.Story{
		UserID:          userID,
		Title:           in.Title,
		Story:           in.Story,
		VisitedLocation: in.VisitedLocation,
		ImageURL:        s.imageOrPlaceholder(in.ImageURL),
		VisitedDate:     in.VisitedDate.Time(),
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return story, nil
}

// Edit replaces the editable fields of an owned story. The favourite flag is
// left as it was.
func (s *StoryService) Edit(ctx context.Context, userID uuid.UUID, id string, in StoryInput) (*models.Story, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	story, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	story.Title = in.Title
	story.Story = in.Story
	story.VisitedLocation = in.VisitedLocation
	story.ImageURL = s.imageOrPlaceholder(in.ImageURL)
	story.VisitedDate = in.VisitedDate.Time()

	if err := s.update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Delete removes an owned story, then removes its image in the background.
// A failed image removal is logged and never fails the delete.
func (s *StoryService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	story, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.stories.DeleteOwned(ctx, story.ID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete story: %w", err)
	}

	ref := story.ImageURL
	if ref == "" || ref == s.placeholder {
		return nil
	}
	cleanupCtx := context.WithoutCancel(ctx)
	s.cleanups.Go(func() {
		err := s.images.Delete(cleanupCtx, ref)
		if err != nil && !errors.Is(err, repositories.ErrImageNotFound) {
			s.log.WithError(err).WithFields(logrus.Fields{
				"story_id": story.ID,
				"image":    ref,
			}).Warn("Failed to delete story image")
		}
	})
	return nil
}

// Wait blocks until every background image cleanup has finished.
func (s *StoryService) Wait() {
	s.cleanups.Wait()
}

func (s *StoryService) SetFavourite(ctx context.Context, userID uuid.UUID, id string, favourite bool) (*models.Story, error) {
	story, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	story.IsFavourite = favourite
	if err := s.update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Story, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("Query is required")
	}
	stories, err := s.stories.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search stories: %w", err)
	}
	return stories, nil
}

// Filter returns stories visited between start and end, both inclusive.
func (s *StoryService) Filter(ctx context.Context, userID uuid.UUID, start, end models.EpochMillis) ([]models.Story, error) {
	if start > end {
		return nil, invalid("startDate must not be after endDate")
	}
	stories, err := s.stories.FilterByVisitedDate(ctx, userID, start.Time(), end.Time())
	if err != nil {
		return nil, fmt.Errorf("filter stories: %w", err)
	}
	return stories, nil
}

// findOwned treats a malformed id like an unknown one.
func (s *StoryService) findOwned(ctx context.Context, userID uuid.UUID, id string) (*models.Story, error) {
	storyID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	story, err := s.stories.FindOwned(ctx, storyID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find story: %w", err)
	}
	return story, nil
}

func (s *StoryService) update(ctx context.Context, story *models.Story) error {
	if err := s.stories.Update(ctx, story); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update story: %w", err)
	}
	return nil
}

func (s *StoryService) imageOrPlaceholder(ref string) string {
	if ref == "" {
		return s.placeholder
	}
	return ref
}
