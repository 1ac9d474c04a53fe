package controllers

import (
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// LeadController serves the contact form endpoints
type LeadController struct {
	leads *services.LeadService
}

// NewLeadController creates a LeadController
func NewLeadController(leads *services.LeadService) *LeadController {
	return &LeadController{leads: leads}
}

// POST /api/leads
func (lc *LeadController) Create(c *gin.Context) {
	utils.LogInfo("CreateLead called")

	var req services.LeadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	lead, err := lc.leads.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, utils.MsgLeadCreated, lead)
}

// GET /api/leads
func (lc *LeadController) List(c *gin.Context) {
	utils.LogInfo("ListLeads called")

	p := utils.PaginationFromQuery(c)
	leads, err := lc.leads.List(c.Request.Context(), p)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, utils.MsgLeadsRetrieved, leads, p)
}
