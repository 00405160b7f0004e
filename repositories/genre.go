package repositories

import (
	"context"

	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// GenreRepository handles database operations for genres
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository instance
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// FindBySlug retrieves a genre by its slug
func (r *GenreRepository) FindBySlug(ctx context.Context, slug string) (models.Genre, error) {
	var genre models.Genre
	result := r.db.WithContext(ctx).First(&genre, "slug = ?", slug)
	return genre, result.Error
}

// FindBySlugs retrieves every genre whose slug is listed
func (r *GenreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]models.Genre, error) {
	var genres []models.Genre
	if len(slugs) == 0 {
		return genres, nil
	}
	result := r.db.WithContext(ctx).Where("slug IN ?", slugs).Order("id").Find(&genres)
	return genres, result.Error
}

// Create inserts a new genre into the database
func (r *GenreRepository) Create(ctx context.Context, genre models.Genre) (models.Genre, error) {
	result := r.db.WithContext(ctx).Create(&genre)
	return genre, result.Error
}

// Delete removes a genre and detaches it from its titles
func (r *GenreRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM title_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Genre{}, "id = ?", id).Error
	})
}

// FindWithPagination retrieves genres searched by name
func (r *GenreRepository) FindWithPagination(ctx context.Context, page, pageSize int, search string) ([]models.Genre, int64, error) {
	var genres []models.Genre
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&models.Genre{})
	if search != "" {
		db = db.Where(ilike("name"), containsPattern(search))
	}

	if err := db.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("name asc").Scopes(Paginate(page, pageSize)).Find(&genres).Error; err != nil {
		return nil, 0, err
	}

	return genres, totalCount, nil
}
