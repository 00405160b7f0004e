package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(repo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: repo}
}

// ListCategories returns categories searched by name
func (s *CategoryService) ListCategories(ctx context.Context, q dto.PageQuery, search string) (dto.PageResponse[dto.ClassifierResponse], error) {
	categories, total, err := s.categoryRepo.FindWithPagination(ctx, q.Page, q.PageSize, strings.TrimSpace(search))
	if err != nil {
		return dto.PageResponse[dto.ClassifierResponse]{}, err
	}

	results := make([]dto.ClassifierResponse, 0, len(categories))
	for _, c := range categories {
		results = append(results, dto.NewCategoryResponse(c))
	}
	return dto.PageResponse[dto.ClassifierResponse]{Count: total, Results: results}, nil
}

// CreateCategory is admin only; slugs are unique
func (s *CategoryService) CreateCategory(ctx context.Context, actor *Actor, req dto.ClassifierRequest) (dto.ClassifierResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.ClassifierResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.ClassifierResponse{}, err
	}

	category, err := s.categoryRepo.Create(ctx, models.Category{Name: req.Name, Slug: req.Slug})
	if err != nil {
		return dto.ClassifierResponse{}, uniqueViolation(err, "slug", "category with this slug already exists")
	}
	return dto.NewCategoryResponse(category), nil
}

// DeleteCategory is admin only
func (s *CategoryService) DeleteCategory(ctx context.Context, actor *Actor, slug string) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}

	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return notFound(err, "category %q", slug)
	}
	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("delete category %q: %w", slug, err)
	}
	return nil
}
