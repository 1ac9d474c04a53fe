package controllers

import (
	"time"

	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /
func HealthCheck(c *gin.Context) {
	utils.Success(c, utils.MsgServerRunning, gin.H{
		"service":   utils.AppName,
		"timestamp": time.Now().UTC(),
	})
}
