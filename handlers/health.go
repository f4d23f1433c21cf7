package handlers

import (
	"net/http"

	"courtcredits/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and the last dependency check.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm courtcredits",
		"dependencies": utils.GetHealthStatus(),
	})
}
