package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/reports"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/utils"
)

// RegistrationInput is the public signup form
type RegistrationInput struct {
	LeagueType   string   `json:"leagueType"`
	Name         string   `json:"name" binding:"required"`
	Age          int      `json:"age" binding:"required,min=10,max=30"`
	Mobile       string   `json:"mobile" binding:"required,len=10,numeric"`
	Email        string   `json:"email" binding:"required,email"`
	District     string   `json:"district" binding:"required"`
	State        string   `json:"state" binding:"required"`
	Role         string   `json:"role" binding:"required,oneof=Batsman Bowler All-rounder Wicketkeeper"`
	ProfileImage *string  `json:"profileImage" binding:"omitempty,url"`
	Documents    []string `json:"documents" binding:"omitempty,dive,url"`
}

// RegistrationQuery holds the list and export parameters
type RegistrationQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// RegistrationService manages league signups
type RegistrationService struct {
	registrations *repository.RegistrationRepository
	pricing       *Pricing
	now           func() time.Time
}

// NewRegistrationService creates a RegistrationService
func NewRegistrationService(registrations *repository.RegistrationRepository, pricing *Pricing) *RegistrationService {
	return &RegistrationService{registrations: registrations, pricing: pricing, now: time.Now}
}

// Create stores a new signup. One e-mail may register once per league.
func (s *RegistrationService) Create(ctx context.Context, in RegistrationInput) (*models.Registration, error) {
	reg := &models.Registration{
		LeagueType: strings.TrimSpace(in.LeagueType),
		Name:       strings.TrimSpace(in.Name),
		Age:        in.Age,
		Mobile:     strings.TrimSpace(in.Mobile),
		Email:      utils.NormalizeEmail(in.Email),
		District:   strings.TrimSpace(in.District),
		State:      strings.TrimSpace(in.State),
		Role:       in.Role,
		Documents:  in.Documents,
		Status:     models.RegistrationPending,
	}
	if reg.LeagueType == "" {
		reg.LeagueType = models.DefaultLeagueType
	}
	if in.ProfileImage != nil && strings.TrimSpace(*in.ProfileImage) != "" {
		img := strings.TrimSpace(*in.ProfileImage)
		reg.ProfileImage = &img
	}
	if reg.Documents == nil {
		reg.Documents = []string{}
	}

	if fields := s.validate(reg); len(fields) > 0 {
		return nil, utils.ValidationFailed(utils.ErrValidation, fields)
	}

	_, err := s.registrations.FindByEmailAndLeague(ctx, reg.Email, reg.LeagueType)
	if err == nil {
		utils.LogInfo("Duplicate registration for %s in %s", reg.Email, reg.LeagueType)
		return nil, utils.ConflictError(utils.ErrEmailAlreadyRegistered, nil)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, utils.InternalError("Failed to create registration", err)
	}

	reg.RegisteredAt = s.now()
	err = s.registrations.Create(ctx, reg)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, utils.ConflictError(utils.ErrEmailAlreadyRegistered, nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to create registration", err)
	}
	utils.LogInfo("Registration %s created for %s in %s", reg.ID, reg.Email, reg.LeagueType)
	return reg, nil
}

// validate covers what binding tags cannot: trimmed values and the league list
func (s *RegistrationService) validate(reg *models.Registration) map[string]string {
	fields := map[string]string{}
	if reg.Name == "" {
		fields["name"] = "Name is required"
	}
	if reg.District == "" {
		fields["district"] = "District is required"
	}
	if reg.State == "" {
		fields["state"] = "State is required"
	}
	if !utils.ValidateEmail(reg.Email) {
		fields["email"] = "Please provide a valid email"
	}
	if !utils.ValidateMobile(reg.Mobile) {
		fields["mobile"] = "Please provide a valid 10-digit mobile number"
	}
	if reg.Age < utils.MinPlayerAge || reg.Age > utils.MaxPlayerAge {
		fields["age"] = fmt.Sprintf("Age must be between %d and %d", utils.MinPlayerAge, utils.MaxPlayerAge)
	}
	if !s.pricing.IsKnown(reg.LeagueType) {
		fields["leagueType"] = fmt.Sprintf("%s. Must be one of %s", utils.ErrUnknownLeague, strings.Join(s.pricing.Leagues(), ", "))
	}
	return fields
}

func (q RegistrationQuery) filter() (repository.RegistrationFilter, error) {
	f := repository.RegistrationFilter{Sort: q.Sort, Order: strings.ToLower(q.Order)}
	if q.Status != "" {
		status, ok := models.ParseRegistrationStatus(q.Status)
		if !ok {
			return f, utils.BadRequestError(utils.ErrInvalidStatus, nil)
		}
		f.Status = status
	}
	if !repository.IsSortableRegistrationField(f.Sort) {
		f.Sort = repository.DefaultRegistrationSort
	}
	return f, nil
}

// List returns one page of registrations
func (s *RegistrationService) List(ctx context.Context, q RegistrationQuery) ([]models.Registration, *utils.Pagination, error) {
	f, err := q.filter()
	if err != nil {
		return nil, nil, err
	}
	p := utils.NewPagination(q.Page, q.Limit)
	regs, err := s.registrations.List(ctx, f, p)
	if err != nil {
		return nil, nil, utils.InternalError("Failed to retrieve registrations", err)
	}
	return regs, p, nil
}

// Get returns one registration
func (s *RegistrationService) Get(ctx context.Context, id string) (*models.Registration, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFoundError(utils.ErrRegistrationNotFound, nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve registration", err)
	}
	return reg, nil
}

// UpdateStatus moves a registration to pending, approved or rejected
func (s *RegistrationService) UpdateStatus(ctx context.Context, id, status string) (*models.Registration, error) {
	parsed, ok := models.ParseRegistrationStatus(status)
	if !ok {
		return nil, utils.BadRequestError(utils.ErrInvalidStatus, nil)
	}
	reg, err := s.registrations.UpdateStatus(ctx, id, parsed)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFoundError(utils.ErrRegistrationNotFound, nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to update registration status", err)
	}
	utils.LogInfo("Registration %s status set to %s", id, parsed)
	return reg, nil
}

// Delete removes a registration. Registrations with payment records are kept.
func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	err := s.registrations.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFoundError(utils.ErrRegistrationNotFound, nil)
	}
	if errors.Is(err, repository.ErrReferenced) {
		return utils.ConflictError(utils.ErrRegistrationHasPayments, nil)
	}
	if err != nil {
		return utils.InternalError("Failed to delete registration", err)
	}
	utils.LogInfo("Registration %s deleted", id)
	return nil
}

// Export renders every registration matching the query's status filter as XLSX
func (s *RegistrationService) Export(ctx context.Context, q RegistrationQuery) ([]byte, error) {
	f, err := q.filter()
	if err != nil {
		return nil, err
	}
	regs, err := s.registrations.ListAll(ctx, f)
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve registrations", err)
	}
	data, err := reports.RegistrationsWorkbook(regs)
	if err != nil {
		return nil, utils.InternalError("Failed to export registrations", err)
	}
	utils.LogInfo("Exported %d registrations", len(regs))
	return data, nil
}
