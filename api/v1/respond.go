package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/repositories"
	"github.com/yamdb-api/services"
	"gorm.io/gorm"
)

// respondError maps a service error onto a status code and the error envelope
func respondError(c *gin.Context, err error) {
	status, body := errorBody(err)
	if status >= http.StatusInternalServerError {
		// surfaced in the access log
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}

func errorBody(err error) (int, gin.H) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  verr.Fields,
		}
	}

	status := statusFor(err)
	body := gin.H{"status": "error", "message": messageFor(status, err)}

	var ferr *services.FieldError
	if errors.As(err, &ferr) && status < http.StatusInternalServerError {
		body["errors"] = map[string]string{ferr.Field: ferr.Message}
	}
	return status, body
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBadCredentials), errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case repositories.IsUniqueViolation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(status int, err error) string {
	switch status {
	case http.StatusInternalServerError:
		if errors.Is(err, services.ErrNotificationFailed) {
			return services.ErrNotificationFailed.Error()
		}
		return "Internal server error"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusBadRequest:
		if repositories.IsUniqueViolation(err) {
			return "Resource already exists"
		}
	}
	return err.Error()
}

// bindJSON decodes the body; an empty body decodes as an empty object
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return false
	}
	return true
}

// pathID parses a numeric path parameter; malformed IDs are reported as not found
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found",
		})
		return 0, false
	}
	return uint(id), true
}
