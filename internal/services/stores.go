package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/models"
)

// UserStore is implemented by repositories.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error
}

// StoryStore is implemented by repositories.StoryRepository. Every method
// other than Create is scoped to the owner.
type StoryStore interface {
	Create(ctx context.Context, story *models.Story) error
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Story, error)
	ListOwned(ctx context.Context, userID uuid.UUID) ([]models.Story, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Story, error)
	FilterByVisitedDate(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Story, error)
	Update(ctx context.Context, story *models.Story) error
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

// ImageStore is implemented by repositories.LocalImageStore and
// repositories.R2ImageStore.
type ImageStore interface {
	Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, ref string) error
}
