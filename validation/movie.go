// Package validation checks the shape of movie payloads. Rules run in a
// fixed order (title, actors, release year) and the first violation wins.
package validation

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	apiError "github.com/moin-shk/imr-portal/errors"
	"github.com/moin-shk/imr-portal/models"
)

const (
	maxFieldLength     = 100
	minReleaseYear     = 1900
	releaseYearHorizon = 5
)

// Title requires a non-empty string of at most 100 characters after
// trimming. A missing or non-string value fails the same way.
func Title(v interface{}) *apiError.Error {
	title, ok := v.(string)
	if !ok {
		return apiError.New("Title is required", http.StatusBadRequest)
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return apiError.New("Title cannot be empty", http.StatusBadRequest)
	}
	if utf8.RuneCountInString(trimmed) > maxFieldLength {
		return apiError.New("Title cannot exceed 100 characters", http.StatusBadRequest)
	}

	return nil
}

// Actors requires a non-empty list whose elements are non-empty strings
// of at most 100 characters after trimming.
func Actors(v interface{}) *apiError.Error {
	actors, ok := toList(v)
	if !ok {
		return apiError.New("Actors must be an array", http.StatusBadRequest)
	}
	if len(actors) == 0 {
		return apiError.New("At least one actor is required", http.StatusBadRequest)
	}

	for _, el := range actors {
		actor, ok := el.(string)
		if !ok || strings.TrimSpace(actor) == "" {
			return apiError.New("Actor names must be non-empty strings", http.StatusBadRequest)
		}
		if utf8.RuneCountInString(strings.TrimSpace(actor)) > maxFieldLength {
			return apiError.New("Actor names cannot exceed 100 characters", http.StatusBadRequest)
		}
	}

	return nil
}

// ReleaseYear requires a number in [1900, currentYear+5]. The upper bound
// is read from the wall clock once per call.
func ReleaseYear(v interface{}) *apiError.Error {
	year, ok := toYear(v)
	if !ok {
		return apiError.New("Release year must be a number", http.StatusBadRequest)
	}

	currentYear := time.Now().Year()
	if year < minReleaseYear || year > currentYear+releaseYearHorizon {
		return apiError.New(fmt.Sprintf("Release year must be between %d and %d", minReleaseYear, currentYear+releaseYearHorizon), http.StatusBadRequest)
	}

	return nil
}

// Movie validates a whole payload: title, then actors, then release year.
func Movie(req *models.MovieRequest) *apiError.Error {
	if err := Title(req.Title); err != nil {
		return err
	}
	if err := Actors(req.Actors); err != nil {
		return err
	}
	if err := ReleaseYear(req.ReleaseYear); err != nil {
		return err
	}
	return nil
}

func toList(v interface{}) ([]interface{}, bool) {
	switch actors := v.(type) {
	case []interface{}:
		return actors, true
	case []string:
		list := make([]interface{}, len(actors))
		for i, a := range actors {
			list[i] = a
		}
		return list, true
	default:
		return nil, false
	}
}

func toYear(v interface{}) (int, bool) {
	switch year := v.(type) {
	case float64:
		// A fractional year would truncate into range; only whole
		// numbers count as years.
		if year != math.Trunc(year) {
			return 0, false
		}
		return int(year), true
	case int:
		return year, true
	default:
		return 0, false
	}
}
