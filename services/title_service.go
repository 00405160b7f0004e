package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
	"gorm.io/gorm"
)

// TitleService handles business logic for titles
type TitleService struct {
	titleRepo    *repositories.TitleRepository
	categoryRepo *repositories.CategoryRepository
	genreRepo    *repositories.GenreRepository
}

// NewTitleService creates a new title service instance
func NewTitleService(titles *repositories.TitleRepository, categories *repositories.CategoryRepository, genres *repositories.GenreRepository) *TitleService {
	return &TitleService{
		titleRepo:    titles,
		categoryRepo: categories,
		genreRepo:    genres,
	}
}

// ListTitles retrieves titles with filtering and pagination
func (s *TitleService) ListTitles(ctx context.Context, filter dto.TitleFilter) (dto.PageResponse[dto.TitleResponse], error) {
	filter.Name = strings.TrimSpace(filter.Name)

	titles, total, err := s.titleRepo.FindWithPagination(ctx, filter)
	if err != nil {
		return dto.PageResponse[dto.TitleResponse]{}, err
	}

	results := make([]dto.TitleResponse, 0, len(titles))
	for _, t := range titles {
		results = append(results, dto.NewTitleResponse(t))
	}
	return dto.PageResponse[dto.TitleResponse]{Count: total, Results: results}, nil
}

// GetTitle retrieves a title with its rating
func (s *TitleService) GetTitle(ctx context.Context, id uint) (dto.TitleResponse, error) {
	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		return dto.TitleResponse{}, notFound(err, "title %d", id)
	}
	return dto.NewTitleResponse(title), nil
}

// CreateTitle is admin only
func (s *TitleService) CreateTitle(ctx context.Context, actor *Actor, req dto.CreateTitleRequest) (dto.TitleResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.TitleResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.TitleResponse{}, err
	}

	title := models.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	if req.Category != nil {
		categoryID, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return dto.TitleResponse{}, err
		}
		title.CategoryID = &categoryID
	}

	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return dto.TitleResponse{}, err
	}
	title.Genres = genres

	created, err := s.titleRepo.Create(ctx, title)
	if err != nil {
		return dto.TitleResponse{}, fmt.Errorf("create title: %w", err)
	}
	return s.GetTitle(ctx, created.ID)
}

// UpdateTitle applies a partial update; admin only
func (s *TitleService) UpdateTitle(ctx context.Context, actor *Actor, id uint, req dto.UpdateTitleRequest) (dto.TitleResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.TitleResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.TitleResponse{}, err
	}

	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		return dto.TitleResponse{}, notFound(err, "title %d", id)
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		categoryID, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return dto.TitleResponse{}, err
		}
		title.CategoryID = &categoryID
	}

	// nil keeps the current genres, an empty list clears them
	var genres []models.Genre
	if req.Genre != nil {
		genres, err = s.resolveGenres(ctx, *req.Genre)
		if err != nil {
			return dto.TitleResponse{}, err
		}
	}

	if err := s.titleRepo.Update(ctx, title, genres); err != nil {
		return dto.TitleResponse{}, fmt.Errorf("update title %d: %w", id, err)
	}
	return s.GetTitle(ctx, id)
}

// DeleteTitle removes a title with its reviews and comments; admin only
func (s *TitleService) DeleteTitle(ctx context.Context, actor *Actor, id uint) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}

	exists, err := s.titleRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("title %d: %w", id, ErrNotFound)
	}
	return s.titleRepo.Delete(ctx, id)
}

// requireTitle is shared by the review and comment services
func requireTitle(ctx context.Context, titles *repositories.TitleRepository, id uint) error {
	exists, err := titles.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("title %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *TitleService) resolveCategory(ctx context.Context, slug string) (uint, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, NewFieldError("category", fmt.Sprintf("category %q does not exist", slug))
		}
		return 0, err
	}
	return category.ID, nil
}

// resolveGenres returns a non-nil slice so callers can tell "clear" from "keep"
func (s *TitleService) resolveGenres(ctx context.Context, slugs []string) ([]models.Genre, error) {
	if len(slugs) == 0 {
		return []models.Genre{}, nil
	}

	genres, err := s.genreRepo.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(genres))
	for _, g := range genres {
		found[g.Slug] = true
	}
	for _, slug := range slugs {
		if !found[slug] {
			return nil, NewFieldError("genre", fmt.Sprintf("genre %q does not exist", slug))
		}
	}
	return genres, nil
}
