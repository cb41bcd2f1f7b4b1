package db

import (
	"github.com/moin-shk/imr-portal/models"
	ew "github.com/pkg/errors"
	"gorm.io/gorm"
)

// MovieRepository is the storage client for catalog records. Not-found
// conditions surface as gorm.ErrRecordNotFound in the returned error
// chain; everything else is a storage failure.
type MovieRepository interface {
	FindAll(orderBy string) ([]models.Movie, error)
	FindByID(id string) (*models.Movie, error)
	Create(movie *models.Movie) (*models.Movie, error)
	Update(movie *models.Movie) error
	Delete(id string) error
	Count() (int64, error)
}

type movieRepo struct {
	DB *gorm.DB
}

func NewMovieRepo(db *GormDB) MovieRepository {
	return &movieRepo{db.DB}
}

func (r *movieRepo) FindAll(orderBy string) ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.DB.Order(orderBy).Find(&movies).Error; err != nil {
		return nil, ew.Wrap(err, "gorm find movies error")
	}
	return movies, nil
}

func (r *movieRepo) FindByID(id string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.DB.Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, ew.Wrap(err, "gorm find movie error")
	}
	return &movie, nil
}

func (r *movieRepo) Create(movie *models.Movie) (*models.Movie, error) {
	if err := r.DB.Create(movie).Error; err != nil {
		return nil, ew.Wrap(err, "gorm create movie error")
	}
	return movie, nil
}

func (r *movieRepo) Update(movie *models.Movie) error {
	if err := r.DB.Save(movie).Error; err != nil {
		return ew.Wrap(err, "gorm update movie error")
	}
	return nil
}

func (r *movieRepo) Delete(id string) error {
	result := r.DB.Where("id = ?", id).Delete(&models.Movie{})
	if result.Error != nil {
		return ew.Wrap(result.Error, "gorm delete movie error")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *movieRepo) Count() (int64, error) {
	var count int64
	if err := r.DB.Model(&models.Movie{}).Count(&count).Error; err != nil {
		return 0, ew.Wrap(err, "gorm count movies error")
	}
	return count, nil
}
