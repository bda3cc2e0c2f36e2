package handlers

import (
	"context"
	"net/http"
	"time"

	"exam-service/internal/db"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness and mongo connectivity. Consul polls this
// endpoint for its service check.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"mongo":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
