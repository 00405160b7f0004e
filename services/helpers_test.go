package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yamdb-api/database/testdb"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/logging"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/notifier"
	"github.com/yamdb-api/repositories"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	users      *repositories.UserRepository
	categories *repositories.CategoryRepository
	genres     *repositories.GenreRepository
	titles     *repositories.TitleRepository
	reviews    *repositories.ReviewRepository
	comments   *repositories.CommentRepository

	outbox *notifier.Recorder
	tokens *TokenService

	auth        *AuthService
	userSvc     *UserService
	categorySvc *CategoryService
	genreSvc    *GenreService
	titleSvc    *TitleService
	reviewSvc   *ReviewService
	commentSvc  *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.New(t)
	log := logging.Discard()

	e := &testEnv{
		users:      repositories.NewUserRepository(db),
		categories: repositories.NewCategoryRepository(db),
		genres:     repositories.NewGenreRepository(db),
		titles:     repositories.NewTitleRepository(db),
		reviews:    repositories.NewReviewRepository(db),
		comments:   repositories.NewCommentRepository(db),
		outbox:     notifier.NewRecorder(),
		tokens:     NewTokenService("test-secret", time.Hour),
	}
	e.auth = NewAuthService(e.users, e.tokens, e.outbox, log).WithHashCost(bcrypt.MinCost)
	e.userSvc = NewUserService(e.users, log)
	e.categorySvc = NewCategoryService(e.categories)
	e.genreSvc = NewGenreService(e.genres)
	e.titleSvc = NewTitleService(e.titles, e.categories, e.genres)
	e.reviewSvc = NewReviewService(e.reviews, e.titles)
	e.commentSvc = NewCommentService(e.comments, e.reviews, e.titles)
	return e
}

// actor creates a user with the given role and returns it as a caller
func (e *testEnv) actor(t *testing.T, username string, role models.Role) *Actor {
	t.Helper()
	u, err := e.users.Create(context.Background(), models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return &Actor{ID: u.ID, Username: u.Username, Role: u.Role}
}

func (e *testEnv) title(t *testing.T, admin *Actor, name string) dto.TitleResponse {
	t.Helper()
	title, err := e.titleSvc.CreateTitle(context.Background(), admin, dto.CreateTitleRequest{Name: name, Year: 2000})
	require.NoError(t, err)
	return title
}

// lastCode extracts the confirmation code from the most recent message
func (e *testEnv) lastCode(t *testing.T) string {
	t.Helper()
	msg, ok := e.outbox.Last()
	require.True(t, ok, "no message sent")
	idx := strings.LastIndex(msg.Body, ": ")
	require.GreaterOrEqual(t, idx, 0)
	return strings.TrimSpace(msg.Body[idx+2:])
}

func ptr[T any](v T) *T { return &v }
