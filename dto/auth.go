package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yamdb-api/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// SignupRequest represents registration data
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Validate will run validation rules
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, append([]validation.Rule{validation.Required}, usernameRules()...)...),
		validation.Field(&r.Email,
			validation.Required,
			validation.Length(3, models.EmailMaxLength),
			is.Email,
			validation.By(notReservedEmail),
		),
	)
}

// SignupResponse is the public view of a freshly signed up user
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest exchanges a confirmation code for an access token
type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

// Validate will run validation rules
func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.ConfirmationCode, validation.Required),
	)
}

// TokenResponse carries the issued bearer token
type TokenResponse struct {
	Token string `json:"token"`
}
