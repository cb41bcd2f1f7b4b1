package services

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/moin-shk/imr-portal/db"
	apiError "github.com/moin-shk/imr-portal/errors"
	"github.com/moin-shk/imr-portal/models"
	"github.com/moin-shk/imr-portal/validation"
	"gorm.io/gorm"
)

// MovieService implements the catalog CRUD contract. Authorization is
// applied by the router middleware before any of these run; validation
// happens here so no unchecked payload ever reaches storage.
type MovieService interface {
	ListMovies(search string) ([]models.Movie, *apiError.Error)
	GetMovie(id string) (*models.Movie, *apiError.Error)
	CreateMovie(req *models.MovieRequest) (*models.Movie, *apiError.Error)
	UpdateMovie(id string, req *models.MovieRequest) (*models.Movie, *apiError.Error)
	DeleteMovie(id string) *apiError.Error
}

type movieService struct {
	movieRepo db.MovieRepository
}

func NewMovieService(movieRepo db.MovieRepository) MovieService {
	return &movieService{movieRepo: movieRepo}
}

func (s *movieService) ListMovies(search string) ([]models.Movie, *apiError.Error) {
	movies, err := s.movieRepo.FindAll("title asc")
	if err != nil {
		log.Printf("ListMovies error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if term := strings.TrimSpace(search); term != "" {
		movies = filterMovies(movies, term)
	}

	return movies, nil
}

func (s *movieService) GetMovie(id string) (*models.Movie, *apiError.Error) {
	movie, err := s.movieRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrMovieNotFound
		}
		log.Printf("GetMovie error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return movie, nil
}

func (s *movieService) CreateMovie(req *models.MovieRequest) (*models.Movie, *apiError.Error) {
	if err := validation.Movie(req); err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       strings.TrimSpace(req.TitleString()),
		Actors:      trimActors(req.ActorList()),
		ReleaseYear: req.Year(),
	}

	created, err := s.movieRepo.Create(movie)
	if err != nil {
		log.Printf("CreateMovie error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return created, nil
}

func (s *movieService) UpdateMovie(id string, req *models.MovieRequest) (*models.Movie, *apiError.Error) {
	// Existence is checked before validation so a missing id reports
	// not-found even when the payload is invalid.
	existing, err := s.movieRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrMovieNotFound
		}
		log.Printf("UpdateMovie error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if verr := validation.Movie(req); verr != nil {
		return nil, verr
	}

	existing.Title = strings.TrimSpace(req.TitleString())
	existing.Actors = trimActors(req.ActorList())
	existing.ReleaseYear = req.Year()

	if err := s.movieRepo.Update(existing); err != nil {
		log.Printf("UpdateMovie error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return existing, nil
}

func (s *movieService) DeleteMovie(id string) *apiError.Error {
	if _, err := s.movieRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.ErrMovieNotFound
		}
		log.Printf("DeleteMovie error: %v", err)
		return apiError.ErrInternalServerError
	}

	if err := s.movieRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.ErrMovieNotFound
		}
		log.Printf("DeleteMovie error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

// trimActors trims each actor name before it is persisted. Validation
// measures trimmed lengths, so the stored values must be trimmed too or
// a padded-but-valid name could overflow its column.
func trimActors(actors []string) []string {
	trimmed := make([]string, len(actors))
	for i, actor := range actors {
		trimmed[i] = strings.TrimSpace(actor)
	}
	return trimmed
}

// filterMovies matches a search term against title, actor names, or the
// release year, case-insensitively.
func filterMovies(movies []models.Movie, term string) []models.Movie {
	term = strings.ToLower(term)
	filtered := []models.Movie{}
	for _, movie := range movies {
		if movieMatches(movie, term) {
			filtered = append(filtered, movie)
		}
	}
	return filtered
}

func movieMatches(movie models.Movie, term string) bool {
	if strings.Contains(strings.ToLower(movie.Title), term) {
		return true
	}
	for _, actor := range movie.Actors {
		if strings.Contains(strings.ToLower(actor), term) {
			return true
		}
	}
	return strings.Contains(strconv.Itoa(movie.ReleaseYear), term)
}
