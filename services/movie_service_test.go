package services

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/moin-shk/imr-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMovieRepo is an in-memory MovieRepository. Setting failWith makes
// every method return that error, for storage-failure paths.
type fakeMovieRepo struct {
	movies   map[string]models.Movie
	failWith error
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[string]models.Movie{}}
}

func (f *fakeMovieRepo) FindAll(orderBy string) ([]models.Movie, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	movies := []models.Movie{}
	for _, m := range f.movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })
	return movies, nil
}

func (f *fakeMovieRepo) FindByID(id string) (*models.Movie, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMovieRepo) Create(movie *models.Movie) (*models.Movie, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if movie.ID == "" {
		movie.ID = uuid.NewString()
	}
	f.movies[movie.ID] = *movie
	return movie, nil
}

func (f *fakeMovieRepo) Update(movie *models.Movie) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) Delete(id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.movies[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.movies, id)
	return nil
}

func (f *fakeMovieRepo) Count() (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.movies)), nil
}

func validRequest() *models.MovieRequest {
	return &models.MovieRequest{
		Title:       "Inception",
		Actors:      []string{"Leonardo DiCaprio"},
		ReleaseYear: 2010,
	}
}

func TestListMoviesSortedByTitle(t *testing.T) {
	repo := newFakeMovieRepo()
	svc := NewMovieService(repo)

	for _, title := range []string{"Zodiac", "Alien", "Memento"} {
		_, err := svc.CreateMovie(&models.MovieRequest{
			Title:       title,
			Actors:      []string{"Someone"},
			ReleaseYear: 2000,
		})
		require.Nil(t, err)
	}

	movies, err := svc.ListMovies("")
	require.Nil(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "Memento", movies[1].Title)
	assert.Equal(t, "Zodiac", movies[2].Title)
}

func TestListMoviesEmptyCatalog(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	movies, err := svc.ListMovies("")
	require.Nil(t, err)
	assert.Empty(t, movies)
	assert.NotNil(t, movies)
}

func TestListMoviesStorageFailure(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewMovieService(repo)

	_, err := svc.ListMovies("")
	require.NotNil(t, err)
	assert.Equal(t, 500, err.Status)
	assert.Equal(t, "Internal server error", err.Message)
}

func TestListMoviesSearch(t *testing.T) {
	repo := newFakeMovieRepo()
	svc := NewMovieService(repo)

	seed := []models.MovieRequest{
		{Title: "Inception", Actors: []string{"Leonardo DiCaprio"}, ReleaseYear: 2010},
		{Title: "The Departed", Actors: []string{"Leonardo DiCaprio", "Matt Damon"}, ReleaseYear: 2006},
		{Title: "Alien", Actors: []string{"Sigourney Weaver"}, ReleaseYear: 1979},
	}
	for i := range seed {
		_, err := svc.CreateMovie(&seed[i])
		require.Nil(t, err)
	}

	byTitle, err := svc.ListMovies("incep")
	require.Nil(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Inception", byTitle[0].Title)

	byActor, err := svc.ListMovies("dicaprio")
	require.Nil(t, err)
	assert.Len(t, byActor, 2)

	byYear, err := svc.ListMovies("1979")
	require.Nil(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, "Alien", byYear[0].Title)

	none, err := svc.ListMovies("nothing matches this")
	require.Nil(t, err)
	assert.Empty(t, none)
}

func TestCreateMovieAssignsID(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	movie, err := svc.CreateMovie(validRequest())
	require.Nil(t, err)
	assert.NotEmpty(t, movie.ID)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, []string{"Leonardo DiCaprio"}, movie.Actors)
	assert.Equal(t, 2010, movie.ReleaseYear)

	got, gerr := svc.GetMovie(movie.ID)
	require.Nil(t, gerr)
	assert.Equal(t, movie.ID, got.ID)
	assert.Equal(t, movie.Title, got.Title)
}

func TestCreateMovieTrimsPaddedFields(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	// Padding makes the raw title 104 characters while the trimmed
	// length stays at the 100-character cap; the stored value must fit
	// the column, so the trimmed form is what gets persisted.
	longTitle := strings.Repeat("a", 100)
	movie, err := svc.CreateMovie(&models.MovieRequest{
		Title:       "  " + longTitle + "  ",
		Actors:      []string{"  Leonardo DiCaprio  "},
		ReleaseYear: 2010,
	})
	require.Nil(t, err)
	assert.Equal(t, longTitle, movie.Title)
	assert.Len(t, movie.Title, 100)
	assert.Equal(t, []string{"Leonardo DiCaprio"}, movie.Actors)

	got, gerr := svc.GetMovie(movie.ID)
	require.Nil(t, gerr)
	assert.Equal(t, longTitle, got.Title)

	updated, uerr := svc.UpdateMovie(movie.ID, &models.MovieRequest{
		Title:       "  " + longTitle + "  ",
		Actors:      []string{"  Anne Hathaway  "},
		ReleaseYear: 2014,
	})
	require.Nil(t, uerr)
	assert.Equal(t, longTitle, updated.Title)
	assert.Equal(t, []string{"Anne Hathaway"}, updated.Actors)
}

func TestCreateMovieInvalidPayloadNotPersisted(t *testing.T) {
	repo := newFakeMovieRepo()
	svc := NewMovieService(repo)

	_, err := svc.CreateMovie(&models.MovieRequest{
		Title:       "X",
		Actors:      []string{},
		ReleaseYear: 2020,
	})
	require.NotNil(t, err)
	assert.Equal(t, 400, err.Status)
	assert.Equal(t, "At least one actor is required", err.Message)

	count, cerr := repo.Count()
	require.NoError(t, cerr)
	assert.Zero(t, count)
}

func TestGetMovieNotFound(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	_, err := svc.GetMovie("no-such-id")
	require.NotNil(t, err)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Movie not found", err.Message)
}

func TestUpdateMovieReplacesAllFields(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	created, err := svc.CreateMovie(validRequest())
	require.Nil(t, err)

	updated, err := svc.UpdateMovie(created.ID, &models.MovieRequest{
		Title:       "Interstellar",
		Actors:      []string{"Matthew McConaughey", "Anne Hathaway"},
		ReleaseYear: 2014,
	})
	require.Nil(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Interstellar", updated.Title)
	assert.Equal(t, []string{"Matthew McConaughey", "Anne Hathaway"}, updated.Actors)
	assert.Equal(t, 2014, updated.ReleaseYear)
}

func TestUpdateMovieMissingIDBeatsInvalidPayload(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	// Invalid payload against a missing id must still report not-found.
	_, err := svc.UpdateMovie("no-such-id", &models.MovieRequest{})
	require.NotNil(t, err)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Movie not found", err.Message)
}

func TestUpdateMovieInvalidPayload(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	created, err := svc.CreateMovie(validRequest())
	require.Nil(t, err)

	_, err = svc.UpdateMovie(created.ID, &models.MovieRequest{
		Title:       "Interstellar",
		Actors:      []string{"Matthew McConaughey"},
		ReleaseYear: 1899,
	})
	require.NotNil(t, err)
	assert.Equal(t, 400, err.Status)

	// Record untouched.
	got, gerr := svc.GetMovie(created.ID)
	require.Nil(t, gerr)
	assert.Equal(t, "Inception", got.Title)
	assert.Equal(t, 2010, got.ReleaseYear)
}

func TestDeleteMovie(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	created, err := svc.CreateMovie(validRequest())
	require.Nil(t, err)

	require.Nil(t, svc.DeleteMovie(created.ID))

	_, gerr := svc.GetMovie(created.ID)
	require.NotNil(t, gerr)
	assert.Equal(t, 404, gerr.Status)

	// Repeated delete reports not-found, not success.
	derr := svc.DeleteMovie(created.ID)
	require.NotNil(t, derr)
	assert.Equal(t, 404, derr.Status)
}

func TestDeleteMovieNotFound(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepo())

	err := svc.DeleteMovie("no-such-id")
	require.NotNil(t, err)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Movie not found", err.Message)
}
