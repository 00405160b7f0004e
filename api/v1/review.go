package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/services"
)

// ReviewController handles reviews nested under a title
type ReviewController struct {
	reviewService *services.ReviewService
	pageSize      int
}

// NewReviewController creates a new review controller
func NewReviewController(reviewService *services.ReviewService, pageSize int) *ReviewController {
	return &ReviewController{reviewService: reviewService, pageSize: pageSize}
}

// RegisterRoutes registers review routes
func (ctrl *ReviewController) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/titles/:title_id/reviews", middleware.AuthenticatedOrReadOnly())
	{
		reviews.GET("/", ctrl.ListReviews)
		reviews.POST("/", ctrl.CreateReview)
		reviews.GET("/:review_id/", ctrl.GetReview)
		reviews.PATCH("/:review_id/", ctrl.UpdateReview)
		reviews.DELETE("/:review_id/", ctrl.DeleteReview)
	}
}

func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	q := pageQuery(c, ctrl.pageSize)
	resp, err := ctrl.reviewService.ListReviews(c.Request.Context(), titleID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, q, resp))
}

func (ctrl *ReviewController) GetReview(c *gin.Context) {
	titleID, id, ok := reviewPath(c)
	if !ok {
		return
	}
	resp, err := ctrl.reviewService.GetReview(c.Request.Context(), titleID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateReview adds the caller's review; one per title
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.reviewService.CreateReview(c.Request.Context(), middleware.CurrentActor(c), titleID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	titleID, id, ok := reviewPath(c)
	if !ok {
		return
	}
	var req dto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.reviewService.UpdateReview(c.Request.Context(), middleware.CurrentActor(c), titleID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	titleID, id, ok := reviewPath(c)
	if !ok {
		return
	}
	if err := ctrl.reviewService.DeleteReview(c.Request.Context(), middleware.CurrentActor(c), titleID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func reviewPath(c *gin.Context) (titleID, reviewID uint, ok bool) {
	if titleID, ok = pathID(c, "title_id"); !ok {
		return 0, 0, false
	}
	if reviewID, ok = pathID(c, "review_id"); !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}
