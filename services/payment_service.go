package services

import (
	"context"
	"errors"
	"time"

	"github.com/Govind-619/TurboLeague/events"
	"github.com/Govind-619/TurboLeague/gateway"
	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/reports"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/utils"
)

// PaymentService runs the registration payment lifecycle
type PaymentService struct {
	payments      *repository.PaymentRepository
	registrations *repository.RegistrationRepository
	gateway       gateway.Gateway
	publisher     events.Publisher
	pricing       *Pricing
	now           func() time.Time
}

// NewPaymentService creates a PaymentService
func NewPaymentService(
	payments *repository.PaymentRepository,
	registrations *repository.RegistrationRepository,
	gw gateway.Gateway,
	publisher events.Publisher,
	pricing *Pricing,
) *PaymentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &PaymentService{
		payments:      payments,
		registrations: registrations,
		gateway:       gw,
		publisher:     publisher,
		pricing:       pricing,
		now:           time.Now,
	}
}

// InitializeResult is what the checkout widget needs to open an order.
// Amount is in rupees.
type InitializeResult struct {
	PaymentID string  `json:"paymentId"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	KeyID     string  `json:"keyId"`

	// Created is false when an existing pending order was returned
	Created bool `json:"-"`
}

func (s *PaymentService) resultFor(p *models.Payment, created bool) *InitializeResult {
	return &InitializeResult{
		PaymentID: p.ID,
		OrderID:   p.RazorpayOrderID,
		Amount:    gateway.ToRupees(p.Amount).InexactFloat64(),
		Currency:  p.Currency,
		KeyID:     s.gateway.KeyID(),
		Created:   created,
	}
}

// Initialize creates a gateway order for a registration, or returns the one
// already pending. Each registration has at most one active attempt.
func (s *PaymentService) Initialize(ctx context.Context, registrationID string) (*InitializeResult, error) {
	reg, err := s.registrations.FindByID(ctx, registrationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFoundError(utils.ErrRegistrationNotFound, nil)
	}
	if err != nil {
		return nil, utils.InternalError(utils.ErrPaymentInitFailed, err)
	}

	if result, err := s.existingAttempt(ctx, reg.ID); result != nil || err != nil {
		return result, err
	}

	amount := gateway.ToPaise(s.pricing.PriceFor(reg.LeagueType))
	receipt := gateway.BuildReceipt(reg.ID, s.now())
	order, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   amount,
		Currency: models.CurrencyINR,
		Receipt:  receipt,
		Notes: map[string]string{
			"registrationId": reg.ID,
			"leagueType":     reg.LeagueType,
			"email":          reg.Email,
		},
	})
	if err != nil {
		utils.LogError("Failed to create gateway order for registration %s: %v", reg.ID, err)
		return nil, utils.InternalError(utils.ErrPaymentInitFailed, err)
	}
	utils.LogInfo("Created gateway order %s for registration %s (%d paise)", order.ID, reg.ID, amount)

	payment := &models.Payment{
		RegistrationID:  reg.ID,
		Amount:          amount,
		Currency:        models.CurrencyINR,
		Receipt:         receipt,
		RazorpayOrderID: order.ID,
		Status:          models.PaymentPending,
	}
	if order.Amount > 0 {
		payment.Amount = order.Amount
	}

	err = s.payments.Create(ctx, payment)
	if errors.Is(err, repository.ErrDuplicate) {
		// a concurrent initialize stored its attempt first; hand back the winner
		utils.LogInfo("Concurrent initialize for registration %s, discarding order %s", reg.ID, order.ID)
		if result, err := s.existingAttempt(ctx, reg.ID); result != nil || err != nil {
			return result, err
		}
		return nil, utils.InternalError(utils.ErrPaymentInitFailed, err)
	}
	if err != nil {
		utils.LogError("Failed to save payment for order %s: %v", order.ID, err)
		return nil, utils.InternalError(utils.ErrPaymentInitFailed, err)
	}

	return s.resultFor(payment, true), nil
}

// existingAttempt returns the pending attempt of a registration, a conflict
// when it is paid, or (nil, nil) when a new attempt may be created.
func (s *PaymentService) existingAttempt(ctx context.Context, registrationID string) (*InitializeResult, error) {
	active, err := s.payments.FindActiveByRegistration(ctx, registrationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.InternalError(utils.ErrPaymentInitFailed, err)
	}

	if !active.IsActive() {
		return nil, nil
	}
	if active.Status == models.PaymentCompleted {
		return nil, utils.ConflictError(utils.ErrPaymentAlreadyCompleted, nil)
	}
	utils.LogInfo("Returning pending payment %s for registration %s", active.ID, registrationID)
	return s.resultFor(active, false), nil
}

// VerifyInput carries what the checkout widget hands back after payment
type VerifyInput struct {
	PaymentID        string
	OrderID          string
	GatewayPaymentID string
	Signature        string
}

// Verify checks the checkout signature and completes the payment. Verifying
// an already completed payment again returns it unchanged.
func (s *PaymentService) Verify(ctx context.Context, in VerifyInput) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, in.PaymentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFoundError(utils.ErrPaymentRecordNotFound, nil)
	}
	if err != nil {
		return nil, utils.InternalError(utils.ErrPaymentVerifyFailed, err)
	}

	if payment.RazorpayOrderID != in.OrderID {
		utils.LogError("Order mismatch for payment %s: stored %s, received %s", payment.ID, payment.RazorpayOrderID, in.OrderID)
		return nil, utils.BadRequestError(utils.ErrOrderMismatch, nil)
	}
	if !s.gateway.VerifyPaymentSignature(payment.RazorpayOrderID, in.GatewayPaymentID, in.Signature) {
		utils.LogError("Invalid signature for payment %s", payment.ID)
		return nil, utils.BadRequestError(utils.ErrInvalidSignature, nil)
	}
	if payment.Status == models.PaymentCompleted {
		utils.LogInfo("Payment %s already completed", payment.ID)
		return payment, nil
	}

	changed, err := s.payments.MarkCompleted(ctx, payment.ID, in.GatewayPaymentID, in.Signature)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, utils.ConflictError(utils.ErrPaymentSuperseded, nil)
	}
	if err != nil {
		return nil, utils.InternalError(utils.ErrPaymentVerifyFailed, err)
	}

	updated, err := s.payments.FindByID(ctx, payment.ID)
	if err != nil {
		return nil, utils.InternalError(utils.ErrPaymentVerifyFailed, err)
	}
	if changed {
		utils.LogInfo("Payment %s completed with gateway payment %s", updated.ID, in.GatewayPaymentID)
		s.publishCompleted(ctx, updated)
	}
	return updated, nil
}

func (s *PaymentService) publishCompleted(ctx context.Context, p *models.Payment) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       events.PaymentCompleted,
		OccurredAt: s.now().UTC(),
		Data: map[string]interface{}{
			"paymentId":         p.ID,
			"registrationId":    p.RegistrationID,
			"razorpayOrderId":   p.RazorpayOrderID,
			"razorpayPaymentId": p.RazorpayPaymentID,
			"amount":            p.Amount,
			"currency":          p.Currency,
		},
	})
	if err != nil {
		utils.LogError("Failed to publish %s for payment %s: %v", events.PaymentCompleted, p.ID, err)
	}
}

// Status returns a payment with its registration
func (s *PaymentService) Status(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := s.payments.FindByIDWithRegistration(ctx, paymentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFoundError(utils.ErrPaymentNotFound, nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve payment status", err)
	}
	return payment, nil
}

// HandleWebhook applies a signed gateway notification. Events for unknown
// orders and event types the service does not track are acknowledged.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.gateway.VerifyWebhookSignature(body, signature) {
		utils.LogError("Rejected webhook with invalid signature")
		return utils.UnauthorizedError(utils.ErrInvalidWebhook, nil)
	}
	ev, err := gateway.ParseWebhookEvent(body)
	if err != nil {
		return utils.BadRequestError(utils.ErrInvalidWebhookPayload, err)
	}
	utils.LogInfo("Webhook %s for order %s", ev.Event, ev.OrderID)

	if ev.Event != gateway.EventPaymentCaptured && ev.Event != gateway.EventPaymentFailed {
		utils.LogDebug("Ignoring webhook event %s", ev.Event)
		return nil
	}

	payment, err := s.payments.FindByOrderID(ctx, ev.OrderID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.LogInfo("Webhook for unknown order %s acknowledged", ev.OrderID)
		return nil
	}
	if err != nil {
		return utils.InternalError("Failed to process webhook", err)
	}

	switch ev.Event {
	case gateway.EventPaymentCaptured:
		changed, err := s.payments.MarkCompleted(ctx, payment.ID, ev.PaymentID, "")
		if errors.Is(err, repository.ErrDuplicate) {
			utils.LogError("Captured payment %s for order %s but another attempt is active", ev.PaymentID, ev.OrderID)
			return nil
		}
		if err != nil {
			return utils.InternalError("Failed to process webhook", err)
		}
		if changed {
			updated, err := s.payments.FindByID(ctx, payment.ID)
			if err != nil {
				return utils.InternalError("Failed to process webhook", err)
			}
			utils.LogInfo("Payment %s completed by webhook", payment.ID)
			s.publishCompleted(ctx, updated)
		}
	case gateway.EventPaymentFailed:
		changed, err := s.payments.MarkFailed(ctx, payment.ID)
		if err != nil {
			return utils.InternalError("Failed to process webhook", err)
		}
		if changed {
			utils.LogInfo("Payment %s marked failed by webhook", payment.ID)
		}
	}
	return nil
}

// Receipt renders the PDF receipt of a completed payment
func (s *PaymentService) Receipt(ctx context.Context, paymentID string) ([]byte, *models.Payment, error) {
	payment, err := s.Status(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if payment.Status != models.PaymentCompleted {
		return nil, nil, utils.BadRequestError(utils.ErrPaymentNotCompleted, nil)
	}
	pdf, err := reports.PaymentReceipt(payment, s.now())
	if err != nil {
		return nil, nil, utils.InternalError(utils.ErrReceiptFailed, err)
	}
	return pdf, payment, nil
}
