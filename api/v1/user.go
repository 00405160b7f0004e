package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/services"
)

// UserController handles profile endpoints
type UserController struct {
	userService *services.UserService
	pageSize    int
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService, pageSize int) *UserController {
	return &UserController{userService: userService, pageSize: pageSize}
}

// RegisterRoutes registers user routes; everything except /users/me/ is admin tier
func (ctrl *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")

	self := users.Group("/me", middleware.RequireAuth())
	{
		self.GET("/", ctrl.GetMe)
		self.PATCH("/", ctrl.UpdateMe)
	}

	admin := users.Group("", middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/", ctrl.ListUsers)
		admin.POST("/", ctrl.CreateUser)
		admin.GET("/:username/", ctrl.GetUser)
		admin.PATCH("/:username/", ctrl.UpdateUser)
		admin.DELETE("/:username/", ctrl.DeleteUser)
	}
}

// ListUsers supports ?search= on username
func (ctrl *UserController) ListUsers(c *gin.Context) {
	q := pageQuery(c, ctrl.pageSize)
	resp, err := ctrl.userService.ListUsers(c.Request.Context(), middleware.CurrentActor(c), q, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, q, resp))
}

func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.userService.CreateUser(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *UserController) GetUser(c *gin.Context) {
	resp, err := ctrl.userService.GetUser(c.Request.Context(), middleware.CurrentActor(c), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.userService.UpdateUser(c.Request.Context(), middleware.CurrentActor(c), c.Param("username"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *UserController) DeleteUser(c *gin.Context) {
	if err := ctrl.userService.DeleteUser(c.Request.Context(), middleware.CurrentActor(c), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMe returns the caller's own profile
func (ctrl *UserController) GetMe(c *gin.Context) {
	resp, err := ctrl.userService.Me(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMe edits the caller's own profile; role is only honoured for admins
func (ctrl *UserController) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.userService.UpdateMe(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
