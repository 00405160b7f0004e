package services

import (
	"context"
	"fmt"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
)

const duplicateReviewMessage = "you have already reviewed this title"

// ReviewService handles business logic for reviews of a title
type ReviewService struct {
	reviewRepo *repositories.ReviewRepository
	titleRepo  *repositories.TitleRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews *repositories.ReviewRepository, titles *repositories.TitleRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviews, titleRepo: titles}
}

// ListReviews returns the reviews of a title, oldest first
func (s *ReviewService) ListReviews(ctx context.Context, titleID uint, q dto.PageQuery) (dto.PageResponse[dto.ReviewResponse], error) {
	if err := requireTitle(ctx, s.titleRepo, titleID); err != nil {
		return dto.PageResponse[dto.ReviewResponse]{}, err
	}

	reviews, total, err := s.reviewRepo.FindByTitleID(ctx, titleID, q.Page, q.PageSize)
	if err != nil {
		return dto.PageResponse[dto.ReviewResponse]{}, err
	}

	results := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		results = append(results, dto.NewReviewResponse(r))
	}
	return dto.PageResponse[dto.ReviewResponse]{Count: total, Results: results}, nil
}

// GetReview retrieves a review of the given title
func (s *ReviewService) GetReview(ctx context.Context, titleID, id uint) (dto.ReviewResponse, error) {
	review, err := s.find(ctx, titleID, id)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	return dto.NewReviewResponse(review), nil
}

// CreateReview adds the actor's single review of a title
func (s *ReviewService) CreateReview(ctx context.Context, actor *Actor, titleID uint, req dto.CreateReviewRequest) (dto.ReviewResponse, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return dto.ReviewResponse{}, err
	}
	if err := requireTitle(ctx, s.titleRepo, titleID); err != nil {
		return dto.ReviewResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.ReviewResponse{}, err
	}

	exists, err := s.reviewRepo.ExistsByTitleAndAuthor(ctx, titleID, actor.ID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	if exists {
		return dto.ReviewResponse{}, NewFieldError("non_field_errors", duplicateReviewMessage)
	}

	created, err := s.reviewRepo.Create(ctx, models.Review{
		TitleID:  titleID,
		AuthorID: actor.ID,
		Text:     req.Text,
		Score:    *req.Score,
	})
	if err != nil {
		return dto.ReviewResponse{}, uniqueViolation(err, "non_field_errors", duplicateReviewMessage)
	}
	return s.GetReview(ctx, titleID, created.ID)
}

// UpdateReview applies a partial update; author or moderator tier
func (s *ReviewService) UpdateReview(ctx context.Context, actor *Actor, titleID, id uint, req dto.UpdateReviewRequest) (dto.ReviewResponse, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return dto.ReviewResponse{}, err
	}
	review, err := s.find(ctx, titleID, id)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	if err := RequireAuthorOrModerator(actor, review.AuthorID); err != nil {
		return dto.ReviewResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.ReviewResponse{}, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return dto.ReviewResponse{}, fmt.Errorf("update review %d: %w", id, err)
	}
	return dto.NewReviewResponse(review), nil
}

// DeleteReview removes a review with its comments; author or moderator tier
func (s *ReviewService) DeleteReview(ctx context.Context, actor *Actor, titleID, id uint) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	review, err := s.find(ctx, titleID, id)
	if err != nil {
		return err
	}
	if err := RequireAuthorOrModerator(actor, review.AuthorID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, review.ID)
}

func (s *ReviewService) find(ctx context.Context, titleID, id uint) (models.Review, error) {
	if err := requireTitle(ctx, s.titleRepo, titleID); err != nil {
		return models.Review{}, err
	}
	review, err := s.reviewRepo.FindByID(ctx, titleID, id)
	if err != nil {
		return models.Review{}, notFound(err, "review %d", id)
	}
	return review, nil
}
