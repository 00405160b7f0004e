package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/services"
)

// CommentController handles comments nested under a review
type CommentController struct {
	commentService *services.CommentService
	pageSize       int
}

// NewCommentController creates a new comment controller
func NewCommentController(commentService *services.CommentService, pageSize int) *CommentController {
	return &CommentController{commentService: commentService, pageSize: pageSize}
}

// RegisterRoutes registers comment routes
func (ctrl *CommentController) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/titles/:title_id/reviews/:review_id/comments", middleware.AuthenticatedOrReadOnly())
	{
		comments.GET("/", ctrl.ListComments)
		comments.POST("/", ctrl.CreateComment)
		comments.GET("/:comment_id/", ctrl.GetComment)
		comments.PATCH("/:comment_id/", ctrl.UpdateComment)
		comments.DELETE("/:comment_id/", ctrl.DeleteComment)
	}
}

func (ctrl *CommentController) ListComments(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}
	q := pageQuery(c, ctrl.pageSize)
	resp, err := ctrl.commentService.ListComments(c.Request.Context(), titleID, reviewID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, q, resp))
}

func (ctrl *CommentController) GetComment(c *gin.Context) {
	titleID, reviewID, id, ok := commentPath(c)
	if !ok {
		return
	}
	resp, err := ctrl.commentService.GetComment(c.Request.Context(), titleID, reviewID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *CommentController) CreateComment(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.commentService.CreateComment(c.Request.Context(), middleware.CurrentActor(c), titleID, reviewID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	titleID, reviewID, id, ok := commentPath(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.commentService.UpdateComment(c.Request.Context(), middleware.CurrentActor(c), titleID, reviewID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	titleID, reviewID, id, ok := commentPath(c)
	if !ok {
		return
	}
	if err := ctrl.commentService.DeleteComment(c.Request.Context(), middleware.CurrentActor(c), titleID, reviewID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func commentPath(c *gin.Context) (titleID, reviewID, commentID uint, ok bool) {
	if titleID, reviewID, ok = reviewPath(c); !ok {
		return 0, 0, 0, false
	}
	if commentID, ok = pathID(c, "comment_id"); !ok {
		return 0, 0, 0, false
	}
	return titleID, reviewID, commentID, true
}
