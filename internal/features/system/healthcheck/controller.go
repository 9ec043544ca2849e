package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.CheckHealth)
}

// CheckHealth
// @Summary Liveness probe with memory and disk headroom
// @Tags system
// @Router /health [get]
func (c *HealthcheckController) CheckHealth(ctx *gin.Context) {
	status, err := c.healthcheckService.CheckHealth()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
