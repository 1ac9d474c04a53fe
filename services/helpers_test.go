package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testPrices = map[string]int64{
	"trial":    1000,
	"t20-2026": 5000,
}

type harness struct {
	db            *gorm.DB
	registrations *repository.RegistrationRepository
	payments      *repository.PaymentRepository
	users         *repository.UserRepository
	gateway       *testutil.FakeGateway
	publisher     *testutil.FakePublisher
	mailer        *testutil.FakeMailer
	pricing       *Pricing
}

func newHarness(t *testing.T) *harness {
	db := testutil.NewDB(t)
	return &harness{
		db:            db,
		registrations: repository.NewRegistrationRepository(db),
		payments:      repository.NewPaymentRepository(db),
		users:         repository.NewUserRepository(db),
		gateway:       &testutil.FakeGateway{},
		publisher:     &testutil.FakePublisher{},
		mailer:        &testutil.FakeMailer{},
		pricing:       NewPricing(testPrices, 1000),
	}
}

func (h *harness) paymentService() *PaymentService {
	return NewPaymentService(h.payments, h.registrations, h.gateway, h.publisher, h.pricing)
}

var baseTime = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

// addRegistration stores a pending signup registered i minutes after baseTime
func (h *harness) addRegistration(t *testing.T, email, league string, i int) *models.Registration {
	t.Helper()
	reg := &models.Registration{
		LeagueType:   league,
		Name:         fmt.Sprintf("Player %d", i),
		Age:          20,
		Mobile:       "9876543210",
		Email:        email,
		District:     "Ernakulam",
		State:        "Kerala",
		Role:         models.PlayerRoleBatsman,
		Documents:    []string{},
		Status:       models.RegistrationPending,
		RegisteredAt: baseTime.Add(time.Duration(i) * time.Minute),
	}
	require.NoError(t, h.registrations.Create(context.Background(), reg))
	return reg
}

func (h *harness) addPayment(t *testing.T, regID, orderID string, status models.PaymentStatus) *models.Payment {
	t.Helper()
	p := &models.Payment{
		RegistrationID:  regID,
		Amount:          100000,
		Currency:        models.CurrencyINR,
		RazorpayOrderID: orderID,
		Status:          status,
	}
	require.NoError(t, h.payments.Create(context.Background(), p))
	return p
}
