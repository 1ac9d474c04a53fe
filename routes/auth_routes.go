package routes

import (
	"github.com/Govind-619/TurboLeague/controllers"
	"github.com/Govind-619/TurboLeague/middleware"
	"github.com/gin-gonic/gin"
)

func initAuthRoutes(api *gin.RouterGroup, deps Dependencies) {
	ac := controllers.NewAuthController(deps.Auth)
	authenticated := middleware.Authenticate(deps.Auth)

	auth := api.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/logout", authenticated, ac.Logout)
	}

	users := api.Group("/users", authenticated)
	{
		users.GET("/me", ac.Me)
		users.GET("", middleware.RequireAdmin(), ac.ListUsers)
	}
}
