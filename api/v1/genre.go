package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/services"
)

// GenreController handles genre endpoints
type GenreController struct {
	genreService *services.GenreService
	pageSize     int
}

// NewGenreController creates a new genre controller
func NewGenreController(genreService *services.GenreService, pageSize int) *GenreController {
	return &GenreController{genreService: genreService, pageSize: pageSize}
}

// RegisterRoutes registers genre routes
func (ctrl *GenreController) RegisterRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres", middleware.AdminOrReadOnly())
	{
		genres.GET("/", ctrl.ListGenres)
		genres.POST("/", ctrl.CreateGenre)
		genres.DELETE("/:slug/", ctrl.DeleteGenre)
	}
}

// ListGenres returns genres, searchable by name with ?search=
func (ctrl *GenreController) ListGenres(c *gin.Context) {
	q := pageQuery(c, ctrl.pageSize)
	resp, err := ctrl.genreService.ListGenres(c.Request.Context(), q, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, q, resp))
}

// CreateGenre is admin only
func (ctrl *GenreController) CreateGenre(c *gin.Context) {
	var req dto.ClassifierRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.genreService.CreateGenre(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *GenreController) DeleteGenre(c *gin.Context) {
	if err := ctrl.genreService.DeleteGenre(c.Request.Context(), middleware.CurrentActor(c), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
