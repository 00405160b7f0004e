package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/yamdb-api/models"
)

// ClassifierRequest creates a category or a genre
type ClassifierRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Validate will run validation rules
func (r ClassifierRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, models.ClassifierNameMaxLength)),
		validation.Field(&r.Slug, append([]validation.Rule{validation.Required}, slugRules()...)...),
	)
}

// ClassifierResponse is the public representation of a category or genre
type ClassifierResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategoryResponse(c models.Category) ClassifierResponse {
	return ClassifierResponse{Name: c.Name, Slug: c.Slug}
}

func NewGenreResponse(g models.Genre) ClassifierResponse {
	return ClassifierResponse{Name: g.Name, Slug: g.Slug}
}
