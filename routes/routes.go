package routes

import (
	"path/filepath"

	"github.com/Govind-619/TurboLeague/controllers"
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// Dependencies is everything the router needs to build its handlers
type Dependencies struct {
	Auth          *services.AuthService
	Registrations *services.RegistrationService
	Payments      *services.PaymentService
	Reminders     *services.ReminderService
	Uploads       *services.UploadService
	Leads         *services.LeadService

	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
	// LocalUploadDir is served statically when files are kept on local disk
	LocalUploadDir string
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(deps Dependencies) *gin.Engine {
	utils.RegisterTagNames()

	router := gin.New()
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware(deps.CORSOrigin))
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.RateLimitMiddleware(deps.RateLimitRPS, deps.RateLimitBurst))
	router.NoRoute(utils.NotFoundHandler())

	router.GET("/", controllers.HealthCheck)
	if deps.LocalUploadDir != "" {
		router.Static("/"+filepath.Base(deps.LocalUploadDir), deps.LocalUploadDir)
	}

	api := router.Group(utils.APIPrefix)
	{
		initAuthRoutes(api, deps)
		initRegistrationRoutes(api, deps)
		initPaymentRoutes(api, deps)
		initUploadRoutes(api, deps)
		initLeadRoutes(api, deps)
		initEmailRoutes(api, deps)
	}

	return router
}
