package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mess-menu/backend/internal/types"
)

// Version is reported by the health endpoint
const Version = "v1.0.0"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Mess menu API is running",
		"version": Version,
	})
}

// NotFound answers unmatched routes; only /api paths get a JSON body
func NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, types.MessageResponse{Message: "API endpoint not found"})
		return
	}
	c.Status(http.StatusNotFound)
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, types.MessageResponse{Message: message})
}

// withMiddleware prepends mw to the final handler
func withMiddleware(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(mw)+1)
	chain = append(chain, mw...)
	return append(chain, h)
}
