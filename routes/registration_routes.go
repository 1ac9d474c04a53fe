package routes

import (
	"github.com/Govind-619/TurboLeague/controllers"
	"github.com/Govind-619/TurboLeague/middleware"
	"github.com/gin-gonic/gin"
)

func initRegistrationRoutes(api *gin.RouterGroup, deps Dependencies) {
	rc := controllers.NewRegistrationController(deps.Registrations)

	registrations := api.Group("/registrations")
	{
		registrations.POST("", rc.Create)

		staff := registrations.Group("", middleware.Authenticate(deps.Auth), middleware.RequireStaff())
		{
			staff.GET("", rc.List)
			staff.GET("/export", rc.Export)
			staff.GET("/:id", rc.Get)
			staff.PATCH("/:id/status", rc.UpdateStatus)
			staff.DELETE("/:id", middleware.RequireAdmin(), rc.Delete)
		}
	}
}
