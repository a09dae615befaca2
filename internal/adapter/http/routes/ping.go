package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

func addPingRoutes(rg *gin.RouterGroup) {
	// Ping godoc
	// @Summary  Health check
	// @Tags     health
	// @Success  200  {object}  map[string]string
	// @Router   /ping [get]
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
