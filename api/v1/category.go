package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/services"
)

// CategoryController handles category endpoints
type CategoryController struct {
	categoryService *services.CategoryService
	pageSize        int
}

// NewCategoryController creates a new category controller
func NewCategoryController(categoryService *services.CategoryService, pageSize int) *CategoryController {
	return &CategoryController{categoryService: categoryService, pageSize: pageSize}
}

// RegisterRoutes registers category routes
func (ctrl *CategoryController) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories", middleware.AdminOrReadOnly())
	{
		categories.GET("/", ctrl.ListCategories)
		categories.POST("/", ctrl.CreateCategory)
		categories.DELETE("/:slug/", ctrl.DeleteCategory)
	}
}

// ListCategories returns categories, searchable by name with ?search=
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	q := pageQuery(c, ctrl.pageSize)
	resp, err := ctrl.categoryService.ListCategories(c.Request.Context(), q, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, q, resp))
}

func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.ClassifierRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.categoryService.CreateCategory(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), middleware.CurrentActor(c), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
