package routes

import (
	"github.com/Govind-619/TurboLeague/controllers"
	"github.com/gin-gonic/gin"
)

func initPaymentRoutes(api *gin.RouterGroup, deps Dependencies) {
	pc := controllers.NewPaymentController(deps.Payments)

	payments := api.Group("/payments")
	{
		payments.POST("/initialize", pc.Initialize)
		payments.POST("/verify", pc.Verify)
		payments.POST("/webhook", pc.Webhook)
		payments.GET("/:paymentId", pc.Status)
		payments.GET("/:paymentId/receipt", pc.Receipt)
	}
}
