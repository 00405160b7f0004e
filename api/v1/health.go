package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports service and database liveness
type HealthController struct {
	db      *gorm.DB
	service string
}

func NewHealthController(db *gorm.DB, service string) *HealthController {
	return &HealthController{db: db, service: service}
}

// HealthCheck handles the health check endpoint
func (ctrl *HealthController) HealthCheck(c *gin.Context) {
	status, code := "ok", http.StatusOK
	database := "ok"

	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		status, code = "degraded", http.StatusServiceUnavailable
		database = err.Error()
	}

	c.JSON(code, gin.H{
		"status":   status,
		"service":  ctrl.service,
		"version":  "1.0.0",
		"database": database,
	})
}
