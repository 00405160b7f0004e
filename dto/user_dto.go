package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/yamdb-api/models"
)

// UserResponse is the public profile representation
type UserResponse struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio"`
	Role      models.Role `json:"role"`
}

// NewUserResponse maps a model to its response
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      u.Role,
	}
}

// CreateUserRequest is used by admins to create accounts directly
type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

// Validate will run validation rules
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, append([]validation.Rule{validation.Required}, usernameRules()...)...),
		validation.Field(&r.Email, validation.Required, validation.Length(3, models.EmailMaxLength), is.Email),
		validation.Field(&r.FirstName, validation.Length(0, models.NameMaxLength)),
		validation.Field(&r.LastName, validation.Length(0, models.NameMaxLength)),
		validation.Field(&r.Role, validation.By(optionalRole)),
	)
}

// UpdateUserRequest is a partial profile update; nil fields are left untouched
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

// Validate will run validation rules
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, append([]validation.Rule{validation.NilOrNotEmpty}, usernameRules()...)...),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.Length(3, models.EmailMaxLength), is.Email),
		validation.Field(&r.FirstName, validation.Length(0, models.NameMaxLength)),
		validation.Field(&r.LastName, validation.Length(0, models.NameMaxLength)),
		validation.Field(&r.Role, validation.By(validRole)),
	)
}
