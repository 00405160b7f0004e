package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/yamdb-api/models"
)

// CreateReviewRequest represents the request payload for a new review
type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score *int   `json:"score"`
}

// Validate will run validation rules
func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Score, validation.NotNil, validation.By(scoreInRange)),
	)
}

// UpdateReviewRequest is a partial update of a review
type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

// Validate will run validation rules
func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.NilOrNotEmpty),
		validation.Field(&r.Score, validation.By(scoreInRange)),
	)
}

// ReviewResponse represents a review; title is shown by name, author by username
type ReviewResponse struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

// NewReviewResponse maps a model (with Title and Author loaded) to its response
func NewReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Title:   r.Title.Name,
		Text:    r.Text,
		Author:  r.Author.Username,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

// CommentRequest creates or updates a comment
type CommentRequest struct {
	Text string `json:"text"`
}

// Validate will run validation rules
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

// CommentResponse represents a comment; review is shown by its text
type CommentResponse struct {
	ID      uint      `json:"id"`
	Review  string    `json:"review"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

// NewCommentResponse maps a model (with Review and Author loaded) to its response
func NewCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Review:  c.Review.Text,
		Text:    c.Text,
		Author:  c.Author.Username,
		PubDate: c.PubDate,
	}
}
