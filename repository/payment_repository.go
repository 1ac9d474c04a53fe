package repository

import (
	"context"

	"github.com/Govind-619/TurboLeague/models"
	"gorm.io/gorm"
)

// PaymentRepository persists gateway payment attempts
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a PaymentRepository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a payment. A second active payment for the same
// registration, or a reused order id, yields ErrDuplicate.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

// FindByID retrieves a payment by id
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// FindByIDWithRegistration retrieves a payment with its registration preloaded
func (r *PaymentRepository) FindByIDWithRegistration(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).Preload("Registration").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// FindByOrderID retrieves the payment created for a gateway order
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).Where("razorpay_order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// FindActiveByRegistration returns the pending or completed attempt of a registration.
// Failed attempts are history and never returned here.
func (r *PaymentRepository) FindActiveByRegistration(ctx context.Context, registrationID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.WithContext(ctx).
		Where("registration_id = ? AND status <> ?", registrationID, models.PaymentFailed).
		Order("created_at desc").
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// HasCompleted reports whether a registration has been paid for
func (r *PaymentRepository) HasCompleted(ctx context.Context, registrationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("registration_id = ? AND status = ?", registrationID, models.PaymentCompleted).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// MarkCompleted moves a payment that is not yet completed to completed. The
// update is guarded on status so it happens at most once; the result reports
// whether this call performed the transition. Reviving a failed attempt while
// another one is active yields ErrDuplicate.
func (r *PaymentRepository) MarkCompleted(ctx context.Context, id, gatewayPaymentID, signature string) (bool, error) {
	updates := map[string]interface{}{
		"razorpay_payment_id": gatewayPaymentID,
		"status":              models.PaymentCompleted,
	}
	if signature != "" {
		updates["razorpay_signature"] = signature
	}
	res := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ? AND status <> ?", id, models.PaymentCompleted).
		Updates(updates)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

// MarkFailed moves a pending payment to failed
func (r *PaymentRepository) MarkFailed(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentPending).
		Update("status", models.PaymentFailed)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}
