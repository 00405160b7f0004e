package repositories

import (
	"context"

	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindBySlug retrieves a category by its slug
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, "slug = ?", slug)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(ctx context.Context, category models.Category) (models.Category, error) {
	result := r.db.WithContext(ctx).Create(&category)
	return category, result.Error
}

// Delete removes a category; titles in it are kept without a category
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Title{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}

// FindWithPagination retrieves categories searched by name
func (r *CategoryRepository) FindWithPagination(ctx context.Context, page, pageSize int, search string) ([]models.Category, int64, error) {
	var categories []models.Category
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&models.Category{})
	if search != "" {
		db = db.Where(ilike("name"), containsPattern(search))
	}

	if err := db.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("name asc").Scopes(Paginate(page, pageSize)).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, totalCount, nil
}
