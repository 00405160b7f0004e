package repositories

import (
	"context"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// ratingColumn computes the mean review score; NULL when a title has no reviews
const ratingColumn = "(SELECT CAST(AVG(reviews.score) AS DOUBLE PRECISION) FROM reviews WHERE reviews.title_id = titles.id) AS rating"

// TitleRepository handles database operations for titles
type TitleRepository struct {
	db *gorm.DB
}

// NewTitleRepository creates a new title repository instance
func NewTitleRepository(db *gorm.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

func (r *TitleRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Select("titles.*, " + ratingColumn).
		Preload("Category").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") })
}

// filtered builds the title query for the given filter
func (r *TitleRepository) filtered(ctx context.Context, filter dto.TitleFilter) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Title{})

	if filter.Name != "" {
		db = db.Where(ilike("titles.name"), containsPattern(filter.Name))
	}
	if filter.Year != nil {
		db = db.Where("titles.year = ?", *filter.Year)
	}
	if filter.Category != "" {
		db = db.Where("titles.category_id IN (?)",
			r.db.Model(&models.Category{}).Select("id").Where("slug = ?", filter.Category))
	}
	if filter.Genre != "" {
		db = db.Where("titles.id IN (?)",
			r.db.Table("title_genres").
				Select("title_genres.title_id").
				Joins("JOIN genres ON genres.id = title_genres.genre_id").
				Where("genres.slug = ?", filter.Genre))
	}
	return db
}

// FindWithPagination retrieves titles with filtering and pagination
func (r *TitleRepository) FindWithPagination(ctx context.Context, filter dto.TitleFilter) ([]models.Title, int64, error) {
	var titles []models.Title
	var totalCount int64

	if err := r.filtered(ctx, filter).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	db := r.withRelations(r.filtered(ctx, filter))
	if err := db.Order("titles.id asc").Scopes(Paginate(filter.Page, filter.PageSize)).Find(&titles).Error; err != nil {
		return nil, 0, err
	}

	return titles, totalCount, nil
}

// FindByID retrieves a title with its category, genres and rating
func (r *TitleRepository) FindByID(ctx context.Context, id uint) (models.Title, error) {
	var title models.Title
	db := r.withRelations(r.db.WithContext(ctx).Model(&models.Title{}))
	result := db.Where("titles.id = ?", id).First(&title)
	return title, result.Error
}

// Exists checks if a title exists
func (r *TitleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Title{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new title and links its genres
func (r *TitleRepository) Create(ctx context.Context, title models.Title) (models.Title, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := title.Genres
		title.Genres = nil
		title.Category = nil
		if err := tx.Omit("Category", "Genres", "Reviews").Create(&title).Error; err != nil {
			return err
		}
		if len(genres) > 0 {
			if err := tx.Model(&title).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		title.Genres = genres
		return nil
	})
	return title, err
}

// Update saves the scalar fields and, when genres is non-nil, replaces the genre set
func (r *TitleRepository) Update(ctx context.Context, title models.Title, genres []models.Genre) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Title{}).Where("id = ?", title.ID).Updates(map[string]interface{}{
			"name":        title.Name,
			"year":        title.Year,
			"description": title.Description,
			"category_id": title.CategoryID,
		}).Error; err != nil {
			return err
		}
		if genres == nil {
			return nil
		}
		target := models.Title{ID: title.ID}
		if len(genres) == 0 {
			return tx.Model(&target).Association("Genres").Clear()
		}
		return tx.Model(&target).Association("Genres").Replace(genres)
	})
}

// Delete removes a title with its reviews and their comments
func (r *TitleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("title_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM title_genres WHERE title_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Title{}, "id = ?", id).Error
	})
}
