package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie is a catalog record. Actors are stored as a JSON column so the
// ordered list round-trips without a join table.
type Movie struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Actors      []string  `gorm:"serializer:json;not null" json:"actors"`
	ReleaseYear int       `gorm:"not null" json:"releaseYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MovieRequest is the create/update payload. Fields are kept untyped so
// that a missing field, a wrong-typed field, and a zero value stay
// distinguishable for validation; use the accessors after validating.
type MovieRequest struct {
	Title       interface{} `json:"title"`
	Actors      interface{} `json:"actors"`
	ReleaseYear interface{} `json:"releaseYear"`
}

// TitleString returns the title as submitted. Valid only after validation.
func (r *MovieRequest) TitleString() string {
	s, _ := r.Title.(string)
	return s
}

// ActorList returns the actors as submitted, preserving order.
func (r *MovieRequest) ActorList() []string {
	switch v := r.Actors.(type) {
	case []string:
		return v
	case []interface{}:
		actors := make([]string, 0, len(v))
		for _, el := range v {
			s, _ := el.(string)
			actors = append(actors, s)
		}
		return actors
	default:
		return nil
	}
}

// Year returns the release year as an int. JSON numbers decode as
// float64; direct callers may pass int.
func (r *MovieRequest) Year() int {
	switch v := r.ReleaseYear.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
