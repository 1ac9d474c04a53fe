package services

import (
	"context"
	"strings"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/utils"
)

// LeadInput is the public contact form
type LeadInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
}

// LeadService stores contact-form messages
type LeadService struct {
	leads *repository.LeadRepository
}

// NewLeadService creates a LeadService
func NewLeadService(leads *repository.LeadRepository) *LeadService {
	return &LeadService{leads: leads}
}

// Create stores a lead
func (s *LeadService) Create(ctx context.Context, in LeadInput) (*models.Lead, error) {
	lead := &models.Lead{
		Name:    strings.TrimSpace(in.Name),
		Email:   utils.NormalizeEmail(in.Email),
		Message: strings.TrimSpace(in.Message),
	}

	fields := map[string]string{}
	if lead.Name == "" {
		fields["name"] = "Name is required"
	}
	if !utils.ValidateEmail(lead.Email) {
		fields["email"] = "Please provide a valid email"
	}
	if len([]rune(lead.Message)) < 10 {
		fields["message"] = "Message must be at least 10 characters"
	}
	if len(fields) > 0 {
		return nil, utils.ValidationFailed(utils.ErrValidation, fields)
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, utils.InternalError("Failed to save your message", err)
	}
	utils.LogInfo("Lead %s received from %s", lead.ID, lead.Email)
	return lead, nil
}

// List returns one page of leads, newest first
func (s *LeadService) List(ctx context.Context, p *utils.Pagination) ([]models.Lead, error) {
	leads, err := s.leads.List(ctx, p)
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve leads", err)
	}
	return leads, nil
}
