package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
)

// GenreService handles business logic for genres
type GenreService struct {
	genreRepo *repositories.GenreRepository
}

// NewGenreService creates a new genre service instance
func NewGenreService(repo *repositories.GenreRepository) *GenreService {
	return &GenreService{genreRepo: repo}
}

// ListGenres returns genres searched by name
func (s *GenreService) ListGenres(ctx context.Context, q dto.PageQuery, search string) (dto.PageResponse[dto.ClassifierResponse], error) {
	genres, total, err := s.genreRepo.FindWithPagination(ctx, q.Page, q.PageSize, strings.TrimSpace(search))
	if err != nil {
		return dto.PageResponse[dto.ClassifierResponse]{}, err
	}

	results := make([]dto.ClassifierResponse, 0, len(genres))
	for _, g := range genres {
		results = append(results, dto.NewGenreResponse(g))
	}
	return dto.PageResponse[dto.ClassifierResponse]{Count: total, Results: results}, nil
}

// CreateGenre is admin only; slugs are unique
func (s *GenreService) CreateGenre(ctx context.Context, actor *Actor, req dto.ClassifierRequest) (dto.ClassifierResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.ClassifierResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.ClassifierResponse{}, err
	}

	genre, err := s.genreRepo.Create(ctx, models.Genre{Name: req.Name, Slug: req.Slug})
	if err != nil {
		return dto.ClassifierResponse{}, uniqueViolation(err, "slug", "genre with this slug already exists")
	}
	return dto.NewGenreResponse(genre), nil
}

// DeleteGenre is admin only
func (s *GenreService) DeleteGenre(ctx context.Context, actor *Actor, slug string) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}

	genre, err := s.genreRepo.FindBySlug(ctx, slug)
	if err != nil {
		return notFound(err, "genre %q", slug)
	}
	if err := s.genreRepo.Delete(ctx, genre.ID); err != nil {
		return fmt.Errorf("delete genre %q: %w", slug, err)
	}
	return nil
}
