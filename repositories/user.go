package repositories

import (
	"context"

	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	return user, result.Error
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "username = ?", username)
	return user, result.Error
}

// FindByUsernameOrEmail returns every user clashing with either unique field
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = LOWER(?)", username, email).
		Find(&users)
	return users, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	result := r.db.WithContext(ctx).Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	result := r.db.WithContext(ctx).Save(&user)
	return result.Error
}

// SetConfirmationCode stores a new confirmation code hash (empty clears it)
func (r *UserRepository) SetConfirmationCode(ctx context.Context, id uint, hash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("confirmation_code", hash)
	return result.Error
}

// ConsumeConfirmationCode clears the code only if it still equals hash and
// reports whether this call cleared it
func (r *UserRepository) ConsumeConfirmationCode(ctx context.Context, id uint, hash string) (bool, error) {
	if hash == "" {
		return false, nil
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND confirmation_code = ?", id, hash).
		Update("confirmation_code", "")
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete removes a user together with their reviews and comments
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// comments written by the user or left under the user's reviews
		if err := tx.Where("author_id = ? OR review_id IN (?)", id,
			tx.Model(&models.Review{}).Select("id").Where("author_id = ?", id),
		).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

// FindWithPagination retrieves users ordered by username, optionally searched by username
func (r *UserRepository) FindWithPagination(ctx context.Context, page, pageSize int, search string) ([]models.User, int64, error) {
	var users []models.User
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&models.User{})
	if search != "" {
		db = db.Where(ilike("username"), containsPattern(search))
	}

	if err := db.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("username asc").Scopes(Paginate(page, pageSize)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, totalCount, nil
}
