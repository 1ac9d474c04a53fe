package repository

import (
	"context"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/utils"
	"gorm.io/gorm"
)

// LeadRepository persists contact-form messages
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a LeadRepository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return translate(r.db.WithContext(ctx).Create(lead).Error)
}

// List returns one page of leads, newest first
func (r *LeadRepository) List(ctx context.Context, p *utils.Pagination) ([]models.Lead, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, translate(err)
	}
	p.SetTotal(total)

	var leads []models.Lead
	err := r.db.WithContext(ctx).
		Order("created_at desc, id asc").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&leads).Error
	if err != nil {
		return nil, translate(err)
	}
	return leads, nil
}
