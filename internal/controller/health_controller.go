package controller

import (
	"coding_lessons_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB          *gorm.DB
	ServiceName string
}

func NewHealthController(db *gorm.DB, serviceName string) *HealthController {
	return &HealthController{DB: db, ServiceName: serviceName}
}

// Status godoc
// @Summary Service status
// @Tags system
// @Produce json
// @Router /api [get]
func (c *HealthController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   c.ServiceName,
	})
}

// HealthCheck godoc
// @Summary Health check including database ping
// @Tags system
// @Produce json
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
