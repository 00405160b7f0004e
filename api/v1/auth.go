package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/services"
)

// AuthController handles signup and token issuance
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers auth routes
func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup/", ctrl.Signup)
		auth.POST("/token/", ctrl.Token)
	}
}

// Signup registers a user and mails a confirmation code
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctrl.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Token exchanges a confirmation code for a bearer token
func (ctrl *AuthController) Token(c *gin.Context) {
	var req dto.TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctrl.authService.IssueToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
