package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRegistration(t *testing.T, repo *RegistrationRepository, email string) *models.Registration {
	t.Helper()
	reg := &models.Registration{
		LeagueType:   "trial",
		Name:         "Player",
		Age:          18,
		Mobile:       "9876543210",
		Email:        email,
		District:     "Kannur",
		State:        "Kerala",
		Role:         models.PlayerRoleAllRounder,
		Documents:    []string{},
		Status:       models.RegistrationPending,
		RegisteredAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), reg))
	return reg
}

func TestOneActivePaymentPerRegistration(t *testing.T) {
	db := testutil.NewDB(t)
	regs := NewRegistrationRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()
	reg := seedRegistration(t, regs, "a@x.com")

	first := &models.Payment{RegistrationID: reg.ID, Amount: 100000, Currency: "INR", RazorpayOrderID: "O1", Status: models.PaymentPending}
	require.NoError(t, payments.Create(ctx, first))

	second := &models.Payment{RegistrationID: reg.ID, Amount: 100000, Currency: "INR", RazorpayOrderID: "O2", Status: models.PaymentPending}
	assert.ErrorIs(t, payments.Create(ctx, second), ErrDuplicate)

	changed, err := payments.MarkFailed(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	second.ID = ""
	require.NoError(t, payments.Create(ctx, second))

	active, err := payments.FindActiveByRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "O2", active.RazorpayOrderID)

	// the failed attempt cannot come back while O2 is active
	_, err = payments.MarkCompleted(ctx, first.ID, "P1", "sig")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMarkCompletedHappensOnce(t *testing.T) {
	db := testutil.NewDB(t)
	regs := NewRegistrationRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()
	reg := seedRegistration(t, regs, "a@x.com")

	p := &models.Payment{RegistrationID: reg.ID, Amount: 100000, Currency: "INR", RazorpayOrderID: "O1", Status: models.PaymentPending}
	require.NoError(t, payments.Create(ctx, p))

	changed, err := payments.MarkCompleted(ctx, p.ID, "P1", "sig")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = payments.MarkCompleted(ctx, p.ID, "P2", "sig2")
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := payments.FindByOrderID(ctx, "O1")
	require.NoError(t, err)
	require.NotNil(t, stored.RazorpayPaymentID)
	assert.Equal(t, "P1", *stored.RazorpayPaymentID)

	paid, err := payments.HasCompleted(ctx, reg.ID)
	require.NoError(t, err)
	assert.True(t, paid)

	changed, err = payments.MarkFailed(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = payments.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateRegistrationPerLeague(t *testing.T) {
	db := testutil.NewDB(t)
	regs := NewRegistrationRepository(db)
	seedRegistration(t, regs, "a@x.com")

	dup := &models.Registration{
		LeagueType: "trial", Name: "Again", Age: 18, Mobile: "9876543210", Email: "a@x.com",
		District: "Kannur", State: "Kerala", Role: models.PlayerRoleBowler, Documents: []string{},
		Status: models.RegistrationPending, RegisteredAt: time.Now(),
	}
	assert.ErrorIs(t, regs.Create(context.Background(), dup), ErrDuplicate)
}

func TestTokenBlacklist(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, users.BlacklistToken(ctx, "live", now.Add(time.Hour)))
	require.NoError(t, users.BlacklistToken(ctx, "live", now.Add(time.Hour)))
	require.NoError(t, users.BlacklistToken(ctx, "stale", now.Add(-time.Hour)))

	purged, err := users.PurgeExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	revoked, err := users.IsTokenBlacklisted(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = users.IsTokenBlacklisted(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNormalizeOrder(t *testing.T) {
	assert.Equal(t, "asc", normalizeOrder("asc"))
	assert.Equal(t, "desc", normalizeOrder("desc"))
	assert.Equal(t, "desc", normalizeOrder(""))
	assert.Equal(t, "desc", normalizeOrder("ASC; DROP TABLE payments"))
}
