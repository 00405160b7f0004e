package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/logging"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
)

// UserService handles profile management
type UserService struct {
	userRepo *repositories.UserRepository
	logger   logging.Logger
}

// NewUserService creates a new user service instance
func NewUserService(repo *repositories.UserRepository, logger logging.Logger) *UserService {
	return &UserService{userRepo: repo, logger: logger}
}

// ListUsers returns users searched by username; admin only
func (s *UserService) ListUsers(ctx context.Context, actor *Actor, q dto.PageQuery, search string) (dto.PageResponse[dto.UserResponse], error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.PageResponse[dto.UserResponse]{}, err
	}

	users, total, err := s.userRepo.FindWithPagination(ctx, q.Page, q.PageSize, strings.TrimSpace(search))
	if err != nil {
		return dto.PageResponse[dto.UserResponse]{}, err
	}

	results := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		results = append(results, dto.NewUserResponse(u))
	}
	return dto.PageResponse[dto.UserResponse]{Count: total, Results: results}, nil
}

// CreateUser creates an account directly, without a confirmation round trip; admin only
func (s *UserService) CreateUser(ctx context.Context, actor *Actor, req dto.CreateUserRequest) (dto.UserResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.UserResponse{}, err
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return dto.UserResponse{}, err
	}
	if err := s.checkUnique(ctx, 0, req.Username, req.Email); err != nil {
		return dto.UserResponse{}, err
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleUser
	}

	user, err := s.userRepo.Create(ctx, models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	})
	if err != nil {
		return dto.UserResponse{}, uniqueViolation(err, "username", "a user with that username or email already exists")
	}

	s.logger.Info(ctx, "user created", "username", user.Username, "role", user.Role, "by", actor.Username)
	return dto.NewUserResponse(user), nil
}

// GetUser retrieves any profile by username; admin only
func (s *UserService) GetUser(ctx context.Context, actor *Actor, username string) (dto.UserResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.UserResponse{}, err
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return dto.UserResponse{}, notFound(err, "user %q", username)
	}
	return dto.NewUserResponse(user), nil
}

// UpdateUser applies a partial update including role; admin only
func (s *UserService) UpdateUser(ctx context.Context, actor *Actor, username string, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	if err := RequireAdmin(actor); err != nil {
		return dto.UserResponse{}, err
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return dto.UserResponse{}, notFound(err, "user %q", username)
	}
	return s.update(ctx, actor, user, req, true)
}

// DeleteUser removes a user with their reviews and comments; admin only
func (s *UserService) DeleteUser(ctx context.Context, actor *Actor, username string) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return notFound(err, "user %q", username)
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}

	s.logger.Info(ctx, "user deleted", "username", username, "by", actor.Username)
	return nil
}

// Me returns the actor's own profile
func (s *UserService) Me(ctx context.Context, actor *Actor) (dto.UserResponse, error) {
	user, err := s.current(ctx, actor)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// UpdateMe updates the actor's own profile; role changes are ignored below admin tier
func (s *UserService) UpdateMe(ctx context.Context, actor *Actor, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	user, err := s.current(ctx, actor)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return s.update(ctx, actor, user, req, user.Role.IsAdmin())
}

func (s *UserService) current(ctx context.Context, actor *Actor) (models.User, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return models.User{}, err
	}
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return models.User{}, notFound(err, "user %d", actor.ID)
	}
	return user, nil
}

func (s *UserService) update(ctx context.Context, actor *Actor, user models.User, req dto.UpdateUserRequest, allowRole bool) (dto.UserResponse, error) {
	if !allowRole {
		req.Role = nil
	}
	if err := validate(req); err != nil {
		return dto.UserResponse{}, err
	}

	username, email := user.Username, user.Email
	if req.Username != nil {
		username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		email = strings.TrimSpace(*req.Email)
	}
	if err := s.checkUnique(ctx, user.ID, username, email); err != nil {
		return dto.UserResponse{}, err
	}

	user.Username = username
	user.Email = email
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil && models.Role(*req.Role) != user.Role {
		s.logger.Info(ctx, "role changed", "username", user.Username, "from", user.Role, "to", *req.Role, "by", actor.Username)
		user.Role = models.Role(*req.Role)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return dto.UserResponse{}, uniqueViolation(err, "username", "a user with that username or email already exists")
	}
	return dto.NewUserResponse(user), nil
}

// checkUnique reports the first unique field already held by another user
func (s *UserService) checkUnique(ctx context.Context, selfID uint, username, email string) error {
	clashes, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return err
	}
	for _, u := range clashes {
		if u.ID == selfID {
			continue
		}
		if u.Username == username {
			return NewFieldError("username", "a user with that username already exists")
		}
		return NewFieldError("email", "a user with that email already exists")
	}
	return nil
}
