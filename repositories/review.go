package repositories

import (
	"context"

	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func withReviewRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Title").Preload("Author")
}

// FindByTitleID retrieves the reviews of a title, oldest first
func (r *ReviewRepository) FindByTitleID(ctx context.Context, titleID uint, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&models.Review{}).Where("title_id = ?", titleID)
	if err := db.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := withReviewRelations(db).
		Order("pub_date asc, id asc").
		Scopes(Paginate(page, pageSize)).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, totalCount, nil
}

// FindByID retrieves a review belonging to the given title
func (r *ReviewRepository) FindByID(ctx context.Context, titleID, id uint) (models.Review, error) {
	var review models.Review
	result := withReviewRelations(r.db.WithContext(ctx)).
		Where("title_id = ?", titleID).
		First(&review, "id = ?", id)
	return review, result.Error
}

// ExistsByTitleAndAuthor checks the one-review-per-author rule
func (r *ReviewRepository) ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("title_id = ? AND author_id = ?", titleID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new review into the database
func (r *ReviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	result := r.db.WithContext(ctx).Omit("Title", "Author", "Comments").Create(&review)
	return review, result.Error
}

// Update modifies the text and score of a review
func (r *ReviewRepository) Update(ctx context.Context, review models.Review) error {
	result := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{"text": review.Text, "score": review.Score})
	return result.Error
}

// Delete removes a review and its comments
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, "id = ?", id).Error
	})
}
