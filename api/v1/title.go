package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/services"
)

// TitleController handles title endpoints
type TitleController struct {
	titleService *services.TitleService
	pageSize     int
}

// NewTitleController creates a new title controller
func NewTitleController(titleService *services.TitleService, pageSize int) *TitleController {
	return &TitleController{titleService: titleService, pageSize: pageSize}
}

// RegisterRoutes registers title routes
func (ctrl *TitleController) RegisterRoutes(router *gin.RouterGroup) {
	titles := router.Group("/titles", middleware.AdminOrReadOnly())
	{
		titles.GET("/", ctrl.ListTitles)
		titles.POST("/", ctrl.CreateTitle)
		titles.GET("/:title_id/", ctrl.GetTitle)
		titles.PATCH("/:title_id/", ctrl.UpdateTitle)
		titles.DELETE("/:title_id/", ctrl.DeleteTitle)
	}
}

// ListTitles supports ?name= (substring), ?year= (exact), ?category= and ?genre= (slugs)
func (ctrl *TitleController) ListTitles(c *gin.Context) {
	q := pageQuery(c, ctrl.pageSize)
	filter := dto.TitleFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Genre:    c.Query("genre"),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, services.NewFieldError("year", "enter a whole number"))
			return
		}
		filter.Year = &year
	}

	resp, err := ctrl.titleService.ListTitles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, q, resp))
}

func (ctrl *TitleController) GetTitle(c *gin.Context) {
	id, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	resp, err := ctrl.titleService.GetTitle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *TitleController) CreateTitle(c *gin.Context) {
	var req dto.CreateTitleRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.titleService.CreateTitle(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *TitleController) UpdateTitle(c *gin.Context) {
	id, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	var req dto.UpdateTitleRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.titleService.UpdateTitle(c.Request.Context(), middleware.CurrentActor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *TitleController) DeleteTitle(c *gin.Context) {
	id, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	if err := ctrl.titleService.DeleteTitle(c.Request.Context(), middleware.CurrentActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
