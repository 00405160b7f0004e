package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/services"
	"gorm.io/gorm"
)

const actorKey = "actor"

// TokenValidator parses bearer tokens
type TokenValidator interface {
	Validate(token string) (*dto.TokenClaims, error)
}

// UserFinder loads the account behind a token
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (models.User, error)
}

// Authenticate resolves an optional bearer token into the request actor.
// Requests without a token continue anonymously; a bad token is rejected.
func Authenticate(tokens TokenValidator, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, tok, ok := strings.Cut(header, " ")
		if !ok || !(strings.EqualFold(scheme, "Bearer") || strings.EqualFold(scheme, "JWT")) || strings.TrimSpace(tok) == "" {
			abort(c, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(tok))
		if err != nil {
			abort(c, http.StatusUnauthorized, "Given token not valid for any token type")
			return
		}

		// role is read from the store so promotions and deletions apply immediately
		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abort(c, http.StatusUnauthorized, "User not found")
				return
			}
			abort(c, http.StatusInternalServerError, "Failed to load user")
			return
		}

		c.Set(actorKey, &services.Actor{ID: user.ID, Username: user.Username, Role: user.Role})
		c.Set("userId", user.ID)
		c.Set("username", user.Username)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

// CurrentActor returns the authenticated caller, or nil for anonymous requests
func CurrentActor(c *gin.Context) *services.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*services.Actor)
	return actor
}

// RequireAuth rejects anonymous requests
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentActor(c).Authenticated() {
			abort(c, http.StatusUnauthorized, services.ErrUnauthorized.Error())
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers below the given tier
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if !actor.Authenticated() {
			abort(c, http.StatusUnauthorized, services.ErrUnauthorized.Error())
			return
		}
		if !actor.Role.AtLeast(min) {
			abort(c, http.StatusForbidden, services.ErrForbidden.Error())
			return
		}
		c.Next()
	}
}

// AdminOrReadOnly lets safe methods through and requires admin tier for the rest
func AdminOrReadOnly() gin.HandlerFunc {
	admin := RequireRole(models.RoleAdmin)
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}
		admin(c)
	}
}

// AuthenticatedOrReadOnly lets safe methods through and requires a user for the rest
func AuthenticatedOrReadOnly() gin.HandlerFunc {
	auth := RequireAuth()
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}
		auth(c)
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
