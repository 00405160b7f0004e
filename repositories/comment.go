package repositories

import (
	"context"

	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func withCommentRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Review").Preload("Author")
}

// FindByReviewID retrieves the comments of a review, oldest first
func (r *CommentRepository) FindByReviewID(ctx context.Context, reviewID uint, page, pageSize int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&models.Comment{}).Where("review_id = ?", reviewID)
	if err := db.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := withCommentRelations(db).
		Order("pub_date asc, id asc").
		Scopes(Paginate(page, pageSize)).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, totalCount, nil
}

// FindByID retrieves a comment belonging to the given review
func (r *CommentRepository) FindByID(ctx context.Context, reviewID, id uint) (models.Comment, error) {
	var comment models.Comment
	result := withCommentRelations(r.db.WithContext(ctx)).
		Where("review_id = ?", reviewID).
		First(&comment, "id = ?", id)
	return comment, result.Error
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	result := r.db.WithContext(ctx).Omit("Review", "Author").Create(&comment)
	return comment, result.Error
}

// Update modifies the text of a comment
func (r *CommentRepository) Update(ctx context.Context, comment models.Comment) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("text", comment.Text)
	return result.Error
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
