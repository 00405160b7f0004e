package repositories

import (
	"errors"
	"strings"

	"github.com/yamdb-api/dto"
	"gorm.io/gorm"
)

// Paginate applies limit/offset for a 1-based page
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q := dto.PageQuery{Page: page, PageSize: pageSize}.Normalize(10)
		return db.Limit(q.PageSize).Offset(q.Offset())
	}
}

// containsPattern builds a case-insensitive LIKE pattern for both postgres and sqlite
func containsPattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))
	return "%" + s + "%"
}

// ilike is a portable case-insensitive LIKE on column
func ilike(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

// IsUniqueViolation reports a unique constraint failure from any supported driver
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
