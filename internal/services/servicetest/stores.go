// Package servicetest provides in-memory stores for exercising the services
// and the HTTP layer without Postgres or an object store. They follow the
// same ownership, ordering and matching rules as the GORM repositories.
package servicetest

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/models"
	"github.com/rohits-web03/travelstory/internal/repositories"
)

type Users struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.User

	// FindErr, when set, is returned by FindByEmail.
	FindErr error
}

func NewUsers() *Users {
	return &Users{byID: map[uuid.UUID]*models.User{}}
}

func (u *Users) Create(ctx context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.byID {
		if existing.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedOn = time.Now()
	cp := *user
	u.byID[user.ID] = &cp
	return nil
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.FindErr != nil {
		return nil, u.FindErr
	}
	for _, existing := range u.byID {
		if existing.Email == email {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (u *Users) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	existing, ok := u.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (u *Users) LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	existing, ok := u.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	existing.GoogleID = &googleID
	return nil
}

type Stories struct {
	mu      sync.Mutex
	stories map[uuid.UUID]models.Story
	seq     int
}

func NewStories() *Stories {
	return &Stories{stories: map[uuid.UUID]models.Story{}}
}

// Len is the number of stored stories across all users.
func (s *Stories) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stories)
}

// Get returns a stored story regardless of owner.
func (s *Stories) Get(id uuid.UUID) (models.Story, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	story, ok := s.stories[id]
	return story, ok
}

func (s *Stories) Create(ctx context.Context, story *models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if story.ID == uuid.Nil {
		story.ID = uuid.New()
	}
	// A counter keeps creation order strict even within one clock tick.
	s.seq++
	story.CreatedOn = time.Unix(int64(s.seq), 0).UTC()
	s.stories[story.ID] = *story
	return nil
}

func (s *Stories) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	story, ok := s.stories[id]
	if !ok || story.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	return &story, nil
}

func (s *Stories) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	return s.collect(userID, func(models.Story) bool { return true }), nil
}

func (s *Stories) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Story, error) {
	q := strings.ToLower(query)
	return s.collect(userID, func(story models.Story) bool {
		if strings.Contains(strings.ToLower(story.Title), q) || strings.Contains(strings.ToLower(story.Story), q) {
			return true
		}
		for _, loc := range story.VisitedLocation {
			if strings.Contains(strings.ToLower(loc), q) {
				return true
			}
		}
		return false
	}), nil
}

func (s *Stories) FilterByVisitedDate(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Story, error) {
	return s.collect(userID, func(story models.Story) bool {
		return !story.VisitedDate.Before(start) && !story.VisitedDate.After(end)
	}), nil
}

func (s *Stories) Update(ctx context.Context, story *models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.stories[story.ID]
	if !ok || cur.UserID != story.UserID {
		return repositories.ErrNotFound
	}
	s.stories[story.ID] = *story
	return nil
}

func (s *Stories) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	story, ok := s.stories[id]
	if !ok || story.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(s.stories, id)
	return nil
}

// collect returns the matching stories of one user, favourites first and
// newest first within each group.
func (s *Stories) collect(userID uuid.UUID, keep func(models.Story) bool) []models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Story{}
	for _, story := range s.stories {
		if story.UserID == userID && keep(story) {
			out = append(out, story)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsFavourite != out[j].IsFavourite {
			return out[i].IsFavourite
		}
		return out[i].CreatedOn.After(out[j].CreatedOn)
	})
	return out
}

type savedImage struct {
	data        []byte
	contentType string
}

type Images struct {
	mu      sync.Mutex
	saved   map[string]savedImage
	deleted []string

	// DeleteErr, when set, is returned by every Delete.
	DeleteErr error
	// Started is closed when Delete is entered; Delete then blocks until
	// Release is closed. Both are optional.
	Started chan struct{}
	Release chan struct{}
}

func NewImages() *Images {
	return &Images{saved: map[string]savedImage{}}
}

func (im *Images) Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.saved[name] = savedImage{data: data, contentType: contentType}
	return "http://localhost:8000/uploads/" + name, nil
}

func (im *Images) Delete(ctx context.Context, ref string) error {
	if im.Started != nil {
		close(im.Started)
	}
	if im.Release != nil {
		<-im.Release
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.deleted = append(im.deleted, ref)
	if im.DeleteErr != nil {
		return im.DeleteErr
	}
	name, err := repositories.ImageName(ref)
	if err != nil {
		return err
	}
	if _, ok := im.saved[name]; !ok {
		return repositories.ErrImageNotFound
	}
	delete(im.saved, name)
	return nil
}

// Saved lists the stored names.
func (im *Images) Saved() []string {
	im.mu.Lock()
	defer im.mu.Unlock()
	names := make([]string, 0, len(im.saved))
	for name := range im.saved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Content returns what was stored under name.
func (im *Images) Content(name string) (data []byte, contentType string, ok bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	img, ok := im.saved[name]
	return img.data, img.contentType, ok
}

// Deleted lists every reference Delete was called with, in order.
func (im *Images) Deleted() []string {
	im.mu.Lock()
	defer im.mu.Unlock()
	return append([]string(nil), im.deleted...)
}
