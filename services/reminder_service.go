package services

import (
	"context"
	"errors"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/notification"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/utils"
	"golang.org/x/sync/errgroup"
)

// DefaultReminderConcurrency bounds parallel SMTP sends when none is configured
const DefaultReminderConcurrency = 4

// ReminderResult is the outcome for one recipient
type ReminderResult struct {
	RegistrationID string `json:"registrationId"`
	Email          string `json:"email"`
	Sent           bool   `json:"sent"`
	Error          string `json:"error,omitempty"`
}

// ReminderSummary is returned by a reminder batch. Results follow target order.
type ReminderSummary struct {
	Sent    int              `json:"sent"`
	Failed  int              `json:"failed"`
	Total   int              `json:"total"`
	Results []ReminderResult `json:"results"`
}

// ReminderService e-mails players whose registration is not paid yet
type ReminderService struct {
	registrations *repository.RegistrationRepository
	payments      *repository.PaymentRepository
	mailer        notification.Mailer
	pricing       *Pricing
	concurrency   int
}

// NewReminderService creates a ReminderService
func NewReminderService(
	registrations *repository.RegistrationRepository,
	payments *repository.PaymentRepository,
	mailer notification.Mailer,
	pricing *Pricing,
	concurrency int,
) *ReminderService {
	if concurrency < 1 {
		concurrency = DefaultReminderConcurrency
	}
	return &ReminderService{
		registrations: registrations,
		payments:      payments,
		mailer:        mailer,
		pricing:       pricing,
		concurrency:   concurrency,
	}
}

func (s *ReminderService) send(ctx context.Context, reg *models.Registration) error {
	return s.mailer.SendPaymentReminder(ctx, reg.Email, reg.Name, reg.LeagueType, s.pricing.PriceFor(reg.LeagueType), reg.ID)
}

// SendReminders e-mails every registration without a completed payment. A
// failed send is counted and logged; it never stops the rest of the batch.
func (s *ReminderService) SendReminders(ctx context.Context) (*ReminderSummary, error) {
	targets, err := s.registrations.ListWithoutCompletedPayment(ctx)
	if err != nil {
		return nil, utils.InternalError("Failed to send payment reminders", err)
	}

	summary := &ReminderSummary{Total: len(targets), Results: make([]ReminderResult, len(targets))}
	if len(targets) == 0 {
		return summary, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range targets {
		i := i
		g.Go(func() error {
			reg := &targets[i]
			res := ReminderResult{RegistrationID: reg.ID, Email: reg.Email}
			if err := s.send(gctx, reg); err != nil {
				utils.LogError("Failed to send reminder to %s: %v", reg.Email, err)
				res.Error = err.Error()
			} else {
				res.Sent = true
			}
			// each worker owns its slot
			summary.Results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range summary.Results {
		if r.Sent {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}
	utils.LogInfo("Payment reminders sent. %d successful, %d failed.", summary.Sent, summary.Failed)
	return summary, nil
}

// SendReminder e-mails one registration that has not paid yet
func (s *ReminderService) SendReminder(ctx context.Context, registrationID string) error {
	reg, err := s.registrations.FindByID(ctx, registrationID)
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFoundError(utils.ErrRegistrationNotFound, nil)
	}
	if err != nil {
		return utils.InternalError("Failed to send payment reminder", err)
	}

	paid, err := s.payments.HasCompleted(ctx, reg.ID)
	if err != nil {
		return utils.InternalError("Failed to send payment reminder", err)
	}
	if paid {
		return utils.ConflictError(utils.ErrPaymentAlreadyCompleted, nil)
	}

	if err := s.send(ctx, reg); err != nil {
		utils.LogError("Failed to send reminder to %s: %v", reg.Email, err)
		return utils.InternalError("Failed to send payment reminder", err)
	}
	utils.LogInfo("Payment reminder sent to %s for registration %s", reg.Email, reg.ID)
	return nil
}
