package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/models"
	"gorm.io/gorm"
)

// StoryRepository persists travel stories. Every query is filtered by the
// owning user id.
type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where("user_id = ?", userID)
}

func favouritesFirst(q *gorm.DB) *gorm.DB {
	return q.Order("is_favourite DESC").Order("created_on DESC")
}

func (r *StoryRepository) Create(ctx context.Context, story *models.Story) error {
	return translate(r.db.WithContext(ctx).Create(story).Error)
}

func (r *StoryRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Story, error) {
	var story models.Story
	if err := r.owned(ctx, userID).Where("id = ?", id).First(&story).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}

func (r *StoryRepository) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	stories := []models.Story{}
	if err := favouritesFirst(r.owned(ctx, userID)).Find(&stories).Error; err != nil {
		return nil, translate(err)
	}
	return stories, nil
}

// Search matches query as a case-insensitive literal substring of the
// title, the body or any single visited location.
func (r *StoryRepository) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Story, error) {
	pattern := "%" + escapeLike(query) + "%"
	stories := []models.Story{}
	err := favouritesFirst(r.owned(ctx, userID)).
		Where("(title ILIKE ? OR story ILIKE ? OR EXISTS (SELECT 1 FROM unnest(visited_location) AS loc WHERE loc ILIKE ?))", pattern, pattern, pattern).
		Find(&stories).Error
	if err != nil {
		return nil, translate(err)
	}
	return stories, nil
}

// FilterByVisitedDate returns stories visited within [start, end].
func (r *StoryRepository) FilterByVisitedDate(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Story, error) {
	stories := []models.Story{}
	err := favouritesFirst(r.owned(ctx, userID)).
		Where("visited_date >= ? AND visited_date <= ?", start, end).
		Find(&stories).Error
	if err != nil {
		return nil, translate(err)
	}
	return stories, nil
}

// Update overwrites the mutable fields of an owned story.
func (r *StoryRepository) Update(ctx context.Context, story *models.Story) error {
	res := r.db.WithContext(ctx).Model(story).
		Where("user_id = ?", story.UserID).
		Select("title", "story", "visited_location", "image_url", "visited_date", "is_favourite").
		Updates(story)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StoryRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	res := r.owned(ctx, userID).Where("id = ?", id).Delete(&models.Story{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
