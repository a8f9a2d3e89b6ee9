package handlers

import (
	"net/http"
	"time"

	"food-ordering-api/config"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service and database status
func HealthCheck(c *gin.Context) {
	database := "Connected"
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		database = "Disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Food Ordering API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
