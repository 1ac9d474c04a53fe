package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegistrationController serves the registration endpoints
type RegistrationController struct {
	registrations *services.RegistrationService
}

// NewRegistrationController creates a RegistrationController
func NewRegistrationController(registrations *services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrations: registrations}
}

// POST /api/registrations
func (rc *RegistrationController) Create(c *gin.Context) {
	utils.LogInfo("CreateRegistration called")

	var req services.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	reg, err := rc.registrations.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, utils.MsgRegistrationSuccess, reg)
}

// GET /api/registrations
func (rc *RegistrationController) List(c *gin.Context) {
	utils.LogInfo("ListRegistrations called")

	var q services.RegistrationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.LogError("Invalid registration query: %v", err)
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	regs, p, err := rc.registrations.List(c.Request.Context(), q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, utils.MsgRegistrationsRetrieved, regs, p)
}

// GET /api/registrations/export
func (rc *RegistrationController) Export(c *gin.Context) {
	utils.LogInfo("ExportRegistrations called")

	var q services.RegistrationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	data, err := rc.registrations.Export(c.Request.Context(), q)
	if err != nil {
		utils.LogError("Failed to export registrations: %v", err)
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=registrations_%s.xlsx", time.Now().Format("20060102")))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GET /api/registrations/:id
func (rc *RegistrationController) Get(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("GetRegistration called for %s", id)

	reg, err := rc.registrations.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgRegistrationRetrieved, reg)
}

// PATCH /api/registrations/:id/status
func (rc *RegistrationController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("UpdateRegistrationStatus called for %s", id)

	var req struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	reg, err := rc.registrations.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.LogError("Failed to update status of registration %s: %v", id, err)
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgStatusUpdated, reg)
}

// DELETE /api/registrations/:id
func (rc *RegistrationController) Delete(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("DeleteRegistration called for %s", id)

	if err := rc.registrations.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgRegistrationDeleted, nil)
}
