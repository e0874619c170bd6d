package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Story struct {
	ID              uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Story           string    `json:"story" gorm:"type:text;not null"`
	VisitedLocation Locations `json:"visitedLocation" gorm:"type:text[]"`
	ImageURL        string    `json:"imageUrl" gorm:"not null"`
	VisitedDate     time.Time `json:"visitedDate" gorm:"index;not null"`
	IsFavourite     bool      `json:"isFavourite" gorm:"default:false;not null"`
	CreatedOn       time.Time `json:"createdOn" gorm:"autoCreateTime"`
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Locations is the list of places a story covers. Clients may send either a
// single string or an array of strings.
type Locations []string

func (l *Locations) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			*l = Locations{}
		} else {
			*l = Locations{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("visitedLocation must be a string or an array of strings")
	}
	*l = Locations(many)
	return nil
}

// Value stores the list as a Postgres text[] so each place can be matched
// on its own.
func (l Locations) Value() (driver.Value, error) {
	if l == nil {
		l = Locations{}
	}
	return pq.StringArray(l).Value()
}

func (l *Locations) Scan(src any) error {
	if src == nil {
		*l = Locations{}
		return nil
	}
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("cannot scan %T into Locations: %w", src, err)
	}
	*l = Locations(arr)
	return nil
}

// Empty reports whether no non-blank location is present.
func (l Locations) Empty() bool {
	for _, s := range l {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// EpochMillis is a timestamp in milliseconds since the Unix epoch. It decodes
// from a JSON number or a numeric string.
type EpochMillis int64

func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return errors.New("date must be milliseconds since the epoch")
		}
		n = int64(f)
	}
	*m = EpochMillis(n)
	return nil
}

func (m EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}
