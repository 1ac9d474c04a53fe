package controllers

import (
	"fmt"

	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// EmailController serves the reminder endpoints
type EmailController struct {
	reminders *services.ReminderService
}

// NewEmailController creates an EmailController
func NewEmailController(reminders *services.ReminderService) *EmailController {
	return &EmailController{reminders: reminders}
}

// POST /api/emails/payment-reminders
func (ec *EmailController) SendPaymentReminders(c *gin.Context) {
	utils.LogInfo("SendPaymentReminders called")

	summary, err := ec.reminders.SendReminders(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if summary.Total == 0 {
		utils.Success(c, utils.MsgNoPendingPayments, summary)
		return
	}
	utils.Success(c, fmt.Sprintf("Payment reminders sent. %d successful, %d failed.", summary.Sent, summary.Failed), summary)
}

// POST /api/emails/payment-reminder/:registrationId
func (ec *EmailController) SendPaymentReminder(c *gin.Context) {
	registrationID := c.Param("registrationId")
	utils.LogInfo("SendPaymentReminder called for registration %s", registrationID)

	if err := ec.reminders.SendReminder(c.Request.Context(), registrationID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgReminderSent, nil)
}
