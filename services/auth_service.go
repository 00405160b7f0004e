package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/logging"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/notifier"
	"github.com/yamdb-api/repositories"
	"github.com/yamdb-api/utils"
	"gorm.io/gorm"
)

const confirmationSubject = "API access confirmation code"

// AuthService handles signup by email code and token issuance
type AuthService struct {
	users    *repositories.UserRepository
	tokens   *TokenService
	notifier notifier.Notifier
	logger   logging.Logger
	now      func() time.Time
	hashCost int
}

// NewAuthService creates a new auth service instance
func NewAuthService(users *repositories.UserRepository, tokens *TokenService, n notifier.Notifier, logger logging.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		notifier: n,
		logger:   logger,
		now:      time.Now,
	}
}

// WithHashCost overrides the bcrypt cost used for confirmation codes
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hashCost = cost
	return s
}

// Signup registers a user (or finds the identical existing one) and mails a fresh confirmation code
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return dto.SignupResponse{}, err
	}

	user, err := s.findOrCreate(ctx, req)
	if err != nil {
		return dto.SignupResponse{}, err
	}

	code := utils.GenerateConfirmationCode()
	hash, err := utils.HashConfirmationCode(code, s.hashCost)
	if err != nil {
		return dto.SignupResponse{}, fmt.Errorf("hash confirmation code: %w", err)
	}
	if err := s.users.SetConfirmationCode(ctx, user.ID, hash); err != nil {
		return dto.SignupResponse{}, fmt.Errorf("store confirmation code: %w", err)
	}

	msg := notifier.Message{
		To:      user.Email,
		Subject: confirmationSubject,
		Body:    fmt.Sprintf("%s, %s!\nConfirmation code for API access: %s", utils.Greeting(s.now()), user.Username, code),
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Error(ctx, "confirmation code delivery failed", "username", user.Username, "error", err)
		return dto.SignupResponse{}, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	s.logger.Info(ctx, "confirmation code sent", "username", user.Username)
	return dto.SignupResponse{Username: user.Username, Email: user.Email}, nil
}

func (s *AuthService) findOrCreate(ctx context.Context, req dto.SignupRequest) (models.User, error) {
	existing, err := s.users.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range existing {
		sameName := u.Username == req.Username
		sameEmail := strings.EqualFold(u.Email, req.Email)
		switch {
		case sameName && sameEmail:
			return u, nil
		case sameName:
			return models.User{}, NewFieldError("username", "a user with that username already exists")
		case sameEmail:
			return models.User{}, NewFieldError("email", "a user with that email already exists")
		}
	}

	user, err := s.users.Create(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.RoleUser,
	})
	if err != nil {
		// lost a race against a concurrent signup
		return models.User{}, uniqueViolation(err, "username", "a user with that username or email already exists")
	}
	return user, nil
}

// IssueToken exchanges a username and confirmation code for a bearer token
func (s *AuthService) IssueToken(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error) {
	if err := validate(req); err != nil {
		return dto.TokenResponse{}, err
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenResponse{}, &FieldError{Field: "username", Message: "user not found", Err: ErrNotFound}
		}
		return dto.TokenResponse{}, err
	}

	if !utils.CheckConfirmationCode(user.ConfirmationCode, req.ConfirmationCode) {
		return dto.TokenResponse{}, &FieldError{Field: "confirmation_code", Message: ErrBadCredentials.Error(), Err: ErrBadCredentials}
	}

	// a concurrent exchange of the same code loses here
	consumed, err := s.users.ConsumeConfirmationCode(ctx, user.ID, user.ConfirmationCode)
	if err != nil {
		return dto.TokenResponse{}, fmt.Errorf("consume confirmation code: %w", err)
	}
	if !consumed {
		return dto.TokenResponse{}, &FieldError{Field: "confirmation_code", Message: ErrBadCredentials.Error(), Err: ErrBadCredentials}
	}

	token, _, err := s.tokens.Generate(user)
	if err != nil {
		return dto.TokenResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return dto.TokenResponse{Token: token}, nil
}
