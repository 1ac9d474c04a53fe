package repository

import (
	"context"
	"fmt"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/utils"
	"gorm.io/gorm"
)

// registrationSortColumns maps the public field names clients may sort by to columns
var registrationSortColumns = map[string]string{
	"id":           "id",
	"leagueType":   "league_type",
	"name":         "name",
	"age":          "age",
	"mobile":       "mobile",
	"email":        "email",
	"district":     "district",
	"state":        "state",
	"role":         "role",
	"status":       "status",
	"registeredAt": "registered_at",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

// DefaultRegistrationSort is applied when no or an unknown sort field is given
const DefaultRegistrationSort = "registeredAt"

// RegistrationFilter narrows and orders registration listings
type RegistrationFilter struct {
	Status models.RegistrationStatus
	Sort   string
	Order  string
}

// IsSortableRegistrationField reports whether field can be used in RegistrationFilter.Sort
func IsSortableRegistrationField(field string) bool {
	_, ok := registrationSortColumns[field]
	return ok
}

// RegistrationRepository persists league signups
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a RegistrationRepository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a registration
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	return translate(r.db.WithContext(ctx).Create(reg).Error)
}

// FindByID retrieves a registration by id
func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reg).Error; err != nil {
		return nil, translate(err)
	}
	return &reg, nil
}

// FindByEmailAndLeague retrieves the signup for an e-mail in one league
func (r *RegistrationRepository) FindByEmailAndLeague(ctx context.Context, email, leagueType string) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.WithContext(ctx).
		Where("email = ? AND league_type = ?", email, leagueType).
		First(&reg).Error
	if err != nil {
		return nil, translate(err)
	}
	return &reg, nil
}

func (r *RegistrationRepository) filtered(ctx context.Context, f RegistrationFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Registration{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	return query
}

func registrationOrderClause(f RegistrationFilter) string {
	column, ok := registrationSortColumns[f.Sort]
	if !ok {
		column = registrationSortColumns[DefaultRegistrationSort]
	}
	// id breaks ties so pages stay stable when the sort column repeats
	return fmt.Sprintf("%s %s, id asc", column, normalizeOrder(f.Order))
}

// List returns one page of registrations and records the total on p
func (r *RegistrationRepository) List(ctx context.Context, f RegistrationFilter, p *utils.Pagination) ([]models.Registration, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, translate(err)
	}
	p.SetTotal(total)

	var regs []models.Registration
	err := r.filtered(ctx, f).
		Order(registrationOrderClause(f)).
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&regs).Error
	if err != nil {
		return nil, translate(err)
	}
	utils.LogDebug("Listed %d of %d registrations (page %d, limit %d)", len(regs), total, p.Page, p.Limit)
	return regs, nil
}

// ListAll returns every registration matching f, unpaginated
func (r *RegistrationRepository) ListAll(ctx context.Context, f RegistrationFilter) ([]models.Registration, error) {
	var regs []models.Registration
	if err := r.filtered(ctx, f).Order(registrationOrderClause(f)).Find(&regs).Error; err != nil {
		return nil, translate(err)
	}
	return regs, nil
}

// ListWithoutCompletedPayment returns registrations nobody has paid for yet,
// oldest first.
func (r *RegistrationRepository) ListWithoutCompletedPayment(ctx context.Context) ([]models.Registration, error) {
	paid := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("registration_id").
		Where("status = ?", models.PaymentCompleted)

	var regs []models.Registration
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", paid).
		Order("registered_at asc, id asc").
		Find(&regs).Error
	if err != nil {
		return nil, translate(err)
	}
	return regs, nil
}

// UpdateStatus sets the review status and returns the updated row
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) (*models.Registration, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a registration together with its payment attempts
func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Registration{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&models.Payment{}).Where("registration_id = ?", id).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count > 0 {
			return ErrReferenced
		}
		return translate(tx.Where("id = ?", id).Delete(&models.Registration{}).Error)
	})
}
