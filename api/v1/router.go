package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/logging"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/notifier"
	"github.com/yamdb-api/repositories"
	"github.com/yamdb-api/services"
	"gorm.io/gorm"
)

// Dependencies wires the v1 API to its collaborators
type Dependencies struct {
	DB          *gorm.DB
	Notifier    notifier.Notifier
	Logger      logging.Logger
	JWTSecret   string
	JWTTTL      time.Duration
	PageSize    int
	ServiceName string

	// HashCost overrides the bcrypt cost for confirmation codes; zero uses the default
	HashCost int
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	if deps.PageSize <= 0 {
		deps.PageSize = 10
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	userRepo := repositories.NewUserRepository(deps.DB)
	categoryRepo := repositories.NewCategoryRepository(deps.DB)
	genreRepo := repositories.NewGenreRepository(deps.DB)
	titleRepo := repositories.NewTitleRepository(deps.DB)
	reviewRepo := repositories.NewReviewRepository(deps.DB)
	commentRepo := repositories.NewCommentRepository(deps.DB)

	tokens := services.NewTokenService(deps.JWTSecret, deps.JWTTTL)
	authService := services.NewAuthService(userRepo, tokens, deps.Notifier, deps.Logger.With("component", "auth")).
		WithHashCost(deps.HashCost)

	// Health check endpoint
	router.GET("/health", NewHealthController(deps.DB, deps.ServiceName).HealthCheck)

	// Auth endpoints are public
	NewAuthController(authService).RegisterRoutes(router)

	// Everything else resolves the optional bearer token first
	api := router.Group("", middleware.Authenticate(tokens, userRepo))
	NewCategoryController(services.NewCategoryService(categoryRepo), deps.PageSize).RegisterRoutes(api)
	NewGenreController(services.NewGenreService(genreRepo), deps.PageSize).RegisterRoutes(api)
	NewTitleController(services.NewTitleService(titleRepo, categoryRepo, genreRepo), deps.PageSize).RegisterRoutes(api)
	NewReviewController(services.NewReviewService(reviewRepo, titleRepo), deps.PageSize).RegisterRoutes(api)
	NewCommentController(services.NewCommentService(commentRepo, reviewRepo, titleRepo), deps.PageSize).RegisterRoutes(api)
	NewUserController(services.NewUserService(userRepo, deps.Logger.With("component", "users")), deps.PageSize).RegisterRoutes(api)
}
