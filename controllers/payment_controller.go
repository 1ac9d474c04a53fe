package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps the webhook payload read into memory
const maxWebhookBody = 1 << 20

// PaymentController serves the payment endpoints
type PaymentController struct {
	payments *services.PaymentService
}

// NewPaymentController creates a PaymentController
func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// POST /api/payments/initialize
func (pc *PaymentController) Initialize(c *gin.Context) {
	utils.LogInfo("InitializePayment called")

	var req struct {
		RegistrationID string `json:"registrationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid initialize request: %v", err)
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	result, err := pc.payments.Initialize(c.Request.Context(), req.RegistrationID)
	if err != nil {
		utils.LogError("Failed to initialize payment for registration %s: %v", req.RegistrationID, err)
		utils.RespondError(c, err)
		return
	}

	if !result.Created {
		utils.Success(c, utils.MsgPaymentAlreadyInitialized, result)
		return
	}
	utils.LogInfo("Payment %s initialized for registration %s", result.PaymentID, req.RegistrationID)
	utils.Created(c, utils.MsgPaymentInitialized, result)
}

// POST /api/payments/verify
func (pc *PaymentController) Verify(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
		PaymentID         string `json:"paymentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verify request: %v", err)
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	payment, err := pc.payments.Verify(c.Request.Context(), services.VerifyInput{
		PaymentID:        req.PaymentID,
		OrderID:          req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
	})
	if err != nil {
		utils.LogError("Payment verification failed for payment %s: %v", req.PaymentID, err)
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgPaymentVerified, payment)
}

// POST /api/payments/webhook
func (pc *PaymentController) Webhook(c *gin.Context) {
	utils.LogInfo("PaymentWebhook called")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.BadRequest(c, utils.ErrInvalidWebhookPayload, err.Error())
		return
	}

	if err := pc.payments.HandleWebhook(c.Request.Context(), body, c.GetHeader("X-Razorpay-Signature")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgWebhookProcessed, nil)
}

// GET /api/payments/:paymentId
func (pc *PaymentController) Status(c *gin.Context) {
	paymentID := c.Param("paymentId")
	utils.LogInfo("GetPaymentStatus called for payment %s", paymentID)

	payment, err := pc.payments.Status(c.Request.Context(), paymentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgPaymentStatusRetrieved, payment)
}

// GET /api/payments/:paymentId/receipt
func (pc *PaymentController) Receipt(c *gin.Context) {
	paymentID := c.Param("paymentId")
	utils.LogInfo("DownloadReceipt called for payment %s", paymentID)

	pdf, payment, err := pc.payments.Receipt(c.Request.Context(), paymentID)
	if err != nil {
		utils.LogError("Failed to generate receipt for payment %s: %v", paymentID, err)
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", payment.Receipt))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
