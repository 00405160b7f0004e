package services

import (
	"context"
	"fmt"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
)

// CommentService handles business logic for comments under a review
type CommentService struct {
	commentRepo *repositories.CommentRepository
	reviewRepo  *repositories.ReviewRepository
	titleRepo   *repositories.TitleRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService(comments *repositories.CommentRepository, reviews *repositories.ReviewRepository, titles *repositories.TitleRepository) *CommentService {
	return &CommentService{commentRepo: comments, reviewRepo: reviews, titleRepo: titles}
}

// ListComments returns the comments of a review, oldest first
func (s *CommentService) ListComments(ctx context.Context, titleID, reviewID uint, q dto.PageQuery) (dto.PageResponse[dto.CommentResponse], error) {
	if _, err := s.review(ctx, titleID, reviewID); err != nil {
		return dto.PageResponse[dto.CommentResponse]{}, err
	}

	comments, total, err := s.commentRepo.FindByReviewID(ctx, reviewID, q.Page, q.PageSize)
	if err != nil {
		return dto.PageResponse[dto.CommentResponse]{}, err
	}

	results := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		results = append(results, dto.NewCommentResponse(c))
	}
	return dto.PageResponse[dto.CommentResponse]{Count: total, Results: results}, nil
}

// GetComment retrieves one comment of a review
func (s *CommentService) GetComment(ctx context.Context, titleID, reviewID, id uint) (dto.CommentResponse, error) {
	comment, err := s.find(ctx, titleID, reviewID, id)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	return dto.NewCommentResponse(comment), nil
}

// CreateComment requires an authenticated actor
func (s *CommentService) CreateComment(ctx context.Context, actor *Actor, titleID, reviewID uint, req dto.CommentRequest) (dto.CommentResponse, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return dto.CommentResponse{}, err
	}
	if _, err := s.review(ctx, titleID, reviewID); err != nil {
		return dto.CommentResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.CommentResponse{}, err
	}

	created, err := s.commentRepo.Create(ctx, models.Comment{
		ReviewID: reviewID,
		AuthorID: actor.ID,
		Text:     req.Text,
	})
	if err != nil {
		return dto.CommentResponse{}, fmt.Errorf("create comment: %w", err)
	}
	return s.GetComment(ctx, titleID, reviewID, created.ID)
}

// UpdateComment replaces the text; author or moderator tier
func (s *CommentService) UpdateComment(ctx context.Context, actor *Actor, titleID, reviewID, id uint, req dto.CommentRequest) (dto.CommentResponse, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return dto.CommentResponse{}, err
	}
	comment, err := s.find(ctx, titleID, reviewID, id)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	if err := RequireAuthorOrModerator(actor, comment.AuthorID); err != nil {
		return dto.CommentResponse{}, err
	}
	if err := validate(req); err != nil {
		return dto.CommentResponse{}, err
	}

	comment.Text = req.Text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return dto.CommentResponse{}, fmt.Errorf("update comment %d: %w", id, err)
	}
	return dto.NewCommentResponse(comment), nil
}

// DeleteComment removes a comment; author or moderator tier
func (s *CommentService) DeleteComment(ctx context.Context, actor *Actor, titleID, reviewID, id uint) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	comment, err := s.find(ctx, titleID, reviewID, id)
	if err != nil {
		return err
	}
	if err := RequireAuthorOrModerator(actor, comment.AuthorID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, comment.ID)
}

func (s *CommentService) review(ctx context.Context, titleID, reviewID uint) (models.Review, error) {
	if err := requireTitle(ctx, s.titleRepo, titleID); err != nil {
		return models.Review{}, err
	}
	review, err := s.reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return models.Review{}, notFound(err, "review %d", reviewID)
	}
	return review, nil
}

func (s *CommentService) find(ctx context.Context, titleID, reviewID, id uint) (models.Comment, error) {
	if _, err := s.review(ctx, titleID, reviewID); err != nil {
		return models.Comment{}, err
	}
	comment, err := s.commentRepo.FindByID(ctx, reviewID, id)
	if err != nil {
		return models.Comment{}, notFound(err, "comment %d", id)
	}
	return comment, nil
}
