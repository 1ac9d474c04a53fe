package routes

import (
	"github.com/Govind-619/TurboLeague/controllers"
	"github.com/Govind-619/TurboLeague/middleware"
	"github.com/gin-gonic/gin"
)

func initUploadRoutes(api *gin.RouterGroup, deps Dependencies) {
	uc := controllers.NewUploadController(deps.Uploads)

	upload := api.Group("/upload", middleware.Authenticate(deps.Auth))
	{
		upload.POST("/single", uc.UploadSingle)
		upload.POST("/multiple", uc.UploadMultiple)
		upload.DELETE("/*key", uc.Delete)
	}
}

func initLeadRoutes(api *gin.RouterGroup, deps Dependencies) {
	lc := controllers.NewLeadController(deps.Leads)

	leads := api.Group("/leads")
	{
		leads.POST("", lc.Create)
		leads.GET("", middleware.Authenticate(deps.Auth), middleware.RequireStaff(), lc.List)
	}
}

func initEmailRoutes(api *gin.RouterGroup, deps Dependencies) {
	ec := controllers.NewEmailController(deps.Reminders)

	emails := api.Group("/emails", middleware.Authenticate(deps.Auth), middleware.RequireStaff())
	{
		emails.POST("/payment-reminders", ec.SendPaymentReminders)
		emails.POST("/payment-reminder/:registrationId", ec.SendPaymentReminder)
	}
}
