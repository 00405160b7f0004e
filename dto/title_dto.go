package dto

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/yamdb-api/models"
)

// TitleFilter represents filter criteria for titles
type TitleFilter struct {
	Name     string
	Year     *int
	Category string
	Genre    string
	Page     int
	PageSize int
}

// CreateTitleRequest uses category and genre slugs
type CreateTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

// notFutureYear rejects years after the current one
func notFutureYear(value interface{}) error {
	var year int
	switch v := value.(type) {
	case int:
		year = v
	case *int:
		if v == nil {
			return nil
		}
		year = *v
	}
	if year > time.Now().Year() {
		return errors.New("year cannot be in the future")
	}
	return nil
}

func noBlankSlugs(value interface{}) error {
	var slugs []string
	switch v := value.(type) {
	case []string:
		slugs = v
	case *[]string:
		if v == nil {
			return nil
		}
		slugs = *v
	}
	for _, s := range slugs {
		if strings.TrimSpace(s) == "" {
			return errors.New("genre slugs cannot be blank")
		}
	}
	return nil
}

// Validate will run validation rules
func (r CreateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Year, validation.Required, validation.By(notFutureYear)),
		validation.Field(&r.Category, validation.NilOrNotEmpty),
		validation.Field(&r.Genre, validation.By(noBlankSlugs)),
	)
}

// UpdateTitleRequest is a partial update; nil fields are left untouched
type UpdateTitleRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

// Validate will run validation rules
func (r UpdateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 256)),
		validation.Field(&r.Year, validation.By(notFutureYear)),
		validation.Field(&r.Category, validation.NilOrNotEmpty),
		validation.Field(&r.Genre, validation.By(noBlankSlugs)),
	)
}

// TitleResponse nests the category and genres and carries the mean rating
type TitleResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Year        int                  `json:"year"`
	Rating      *float64             `json:"rating"`
	Description string               `json:"description"`
	Genre       []ClassifierResponse `json:"genre"`
	Category    *ClassifierResponse  `json:"category"`
}

// NewTitleResponse maps a model (with Category and Genres loaded) to its response
func NewTitleResponse(t models.Title) TitleResponse {
	resp := TitleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.Rating,
		Description: t.Description,
		Genre:       make([]ClassifierResponse, 0, len(t.Genres)),
	}
	if t.Category != nil {
		c := NewCategoryResponse(*t.Category)
		resp.Category = &c
	}
	for _, g := range t.Genres {
		resp.Genre = append(resp.Genre, NewGenreResponse(g))
	}
	return resp
}
