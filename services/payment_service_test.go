package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/Govind-619/TurboLeague/events"
	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/testutil"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesOrder(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "t20-2026", 1)

	result, err := h.paymentService().Initialize(context.Background(), reg.ID)
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, "order_test_1", result.OrderID)
	assert.Equal(t, 5000.0, result.Amount)
	assert.Equal(t, models.CurrencyINR, result.Currency)
	assert.Equal(t, "rzp_test_key", result.KeyID)

	require.Len(t, h.gateway.Requests, 1)
	req := h.gateway.Requests[0]
	assert.Equal(t, int64(500000), req.Amount)
	assert.Equal(t, models.CurrencyINR, req.Currency)
	assert.NotEmpty(t, req.Receipt)
	assert.LessOrEqual(t, len(req.Receipt), 40)
	assert.Equal(t, reg.ID, req.Notes["registrationId"])

	stored, err := h.payments.FindByID(context.Background(), result.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, stored.Status)
	assert.Equal(t, int64(500000), stored.Amount)
	assert.Equal(t, req.Receipt, stored.Receipt)
}

func TestInitializeReturnsPendingAttempt(t *testing.T) {
	h := newHarness(t)
	h.gateway.NextOrderIDs = []string{"O1"}
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	svc := h.paymentService()

	first, err := svc.Initialize(context.Background(), reg.ID)
	require.NoError(t, err)
	second, err := svc.Initialize(context.Background(), reg.ID)
	require.NoError(t, err)

	assert.Equal(t, "O1", first.OrderID)
	assert.Equal(t, "O1", second.OrderID)
	assert.Equal(t, first.PaymentID, second.PaymentID)
	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, 1, h.gateway.Calls())
}

func TestInitializeConcurrentCallsShareOneAttempt(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	svc := h.paymentService()

	const n = 6
	results := make([]*InitializeResult, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Initialize(context.Background(), reg.ID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].PaymentID, results[i].PaymentID)
		assert.Equal(t, results[0].OrderID, results[i].OrderID)
	}

	var active int64
	require.NoError(t, h.db.Model(&models.Payment{}).
		Where("registration_id = ? AND status <> ?", reg.ID, models.PaymentFailed).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestInitializeRejectsPaidRegistration(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	h.addPayment(t, reg.ID, "order_paid", models.PaymentCompleted)

	_, err := h.paymentService().Initialize(context.Background(), reg.ID)
	require.Error(t, err)
	assert.True(t, utils.IsConflictError(err))
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
	assert.Equal(t, utils.ErrPaymentAlreadyCompleted, utils.GetAppError(err).Message)
	assert.Equal(t, 0, h.gateway.Calls())
}

func TestInitializeUnknownRegistration(t *testing.T) {
	h := newHarness(t)

	_, err := h.paymentService().Initialize(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.Equal(t, utils.ErrRegistrationNotFound, utils.GetAppError(err).Message)
}

func TestInitializeAfterFailedAttempt(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	failed := h.addPayment(t, reg.ID, "order_old", models.PaymentFailed)

	result, err := h.paymentService().Initialize(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEqual(t, failed.ID, result.PaymentID)

	old, err := h.payments.FindByID(context.Background(), failed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentFailed, old.Status)
}

func TestInitializeGatewayFailure(t *testing.T) {
	h := newHarness(t)
	h.gateway.Err = errors.New("gateway unavailable")
	reg := h.addRegistration(t, "a@x.com", "trial", 1)

	_, err := h.paymentService().Initialize(context.Background(), reg.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, utils.StatusOf(err))

	var count int64
	require.NoError(t, h.db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVerifyCompletesPayment(t *testing.T) {
	h := newHarness(t)
	h.gateway.NextOrderIDs = []string{"O1"}
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	svc := h.paymentService()

	started, err := svc.Initialize(context.Background(), reg.ID)
	require.NoError(t, err)

	in := VerifyInput{
		PaymentID:        started.PaymentID,
		OrderID:          "O1",
		GatewayPaymentID: "P1",
		Signature:        testutil.Sign("O1", "P1"),
	}
	payment, err := svc.Verify(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
	require.NotNil(t, payment.RazorpayPaymentID)
	assert.Equal(t, "P1", *payment.RazorpayPaymentID)
	require.NotNil(t, payment.RazorpaySignature)
	assert.Equal(t, in.Signature, *payment.RazorpaySignature)

	published := h.publisher.Published()
	require.Len(t, published, 1)
	assert.Equal(t, events.PaymentCompleted, published[0].Type)
	assert.Equal(t, started.PaymentID, published[0].Data["paymentId"])

	again, err := svc.Verify(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, again.Status)
	assert.Len(t, h.publisher.Published(), 1)

	_, err = svc.Initialize(context.Background(), reg.ID)
	assert.True(t, utils.IsConflictError(err))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	svc := h.paymentService()
	started, err := svc.Initialize(context.Background(), reg.ID)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), VerifyInput{
		PaymentID:        started.PaymentID,
		OrderID:          started.OrderID,
		GatewayPaymentID: "P1",
		Signature:        testutil.Sign(started.OrderID, "P2"),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
	assert.Equal(t, utils.ErrInvalidSignature, utils.GetAppError(err).Message)

	stored, err := h.payments.FindByID(context.Background(), started.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, stored.Status)
	assert.Nil(t, stored.RazorpayPaymentID)
	assert.Empty(t, h.publisher.Published())
}

func TestVerifyRejectsOrderMismatch(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	svc := h.paymentService()
	started, err := svc.Initialize(context.Background(), reg.ID)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), VerifyInput{
		PaymentID:        started.PaymentID,
		OrderID:          "order_other",
		GatewayPaymentID: "P1",
		Signature:        testutil.Sign("order_other", "P1"),
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrOrderMismatch, utils.GetAppError(err).Message)
}

func TestVerifyUnknownPayment(t *testing.T) {
	h := newHarness(t)

	_, err := h.paymentService().Verify(context.Background(), VerifyInput{PaymentID: "missing", OrderID: "O1"})
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.Equal(t, utils.ErrPaymentRecordNotFound, utils.GetAppError(err).Message)
}

func TestVerifySupersededAttempt(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	old := h.addPayment(t, reg.ID, "order_old", models.PaymentFailed)
	svc := h.paymentService()
	_, err := svc.Initialize(context.Background(), reg.ID)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), VerifyInput{
		PaymentID:        old.ID,
		OrderID:          "order_old",
		GatewayPaymentID: "P1",
		Signature:        testutil.Sign("order_old", "P1"),
	})
	require.Error(t, err)
	assert.True(t, utils.IsConflictError(err))
	assert.Equal(t, utils.ErrPaymentSuperseded, utils.GetAppError(err).Message)
}

func TestVerifyRevivesFailedAttempt(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	old := h.addPayment(t, reg.ID, "order_old", models.PaymentFailed)

	payment, err := h.paymentService().Verify(context.Background(), VerifyInput{
		PaymentID:        old.ID,
		OrderID:          "order_old",
		GatewayPaymentID: "P1",
		Signature:        testutil.Sign("order_old", "P1"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
}

func webhookBody(event, orderID, paymentID string) []byte {
	return []byte(fmt.Sprintf(`{"event":%q,"payload":{"payment":{"entity":{"id":%q,"order_id":%q}}}}`, event, paymentID, orderID))
}

func TestWebhookCapturedCompletesPayment(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	p := h.addPayment(t, reg.ID, "O1", models.PaymentPending)
	svc := h.paymentService()

	body := webhookBody("payment.captured", "O1", "P1")
	require.NoError(t, svc.HandleWebhook(context.Background(), body, testutil.SignWebhook(body)))

	stored, err := h.payments.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, stored.Status)
	require.NotNil(t, stored.RazorpayPaymentID)
	assert.Equal(t, "P1", *stored.RazorpayPaymentID)
	assert.Nil(t, stored.RazorpaySignature)
	assert.Len(t, h.publisher.Published(), 1)

	// redelivery is a no-op
	require.NoError(t, svc.HandleWebhook(context.Background(), body, testutil.SignWebhook(body)))
	assert.Len(t, h.publisher.Published(), 1)
}

func TestWebhookFailedMarksPayment(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	p := h.addPayment(t, reg.ID, "O1", models.PaymentPending)

	body := webhookBody("payment.failed", "O1", "P1")
	require.NoError(t, h.paymentService().HandleWebhook(context.Background(), body, testutil.SignWebhook(body)))

	stored, err := h.payments.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentFailed, stored.Status)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	h := newHarness(t)
	body := webhookBody("payment.captured", "O1", "P1")

	err := h.paymentService().HandleWebhook(context.Background(), body, "bad")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, utils.StatusOf(err))
}

func TestWebhookUnknownOrderIsAcknowledged(t *testing.T) {
	h := newHarness(t)
	body := webhookBody("payment.captured", "order_unknown", "P1")

	assert.NoError(t, h.paymentService().HandleWebhook(context.Background(), body, testutil.SignWebhook(body)))
}

func TestStatusIncludesRegistration(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	p := h.addPayment(t, reg.ID, "O1", models.PaymentPending)

	payment, err := h.paymentService().Status(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, payment.Registration)
	assert.Equal(t, "a@x.com", payment.Registration.Email)

	_, err = h.paymentService().Status(context.Background(), "missing")
	assert.True(t, utils.IsNotFoundError(err))
}

func TestReceipt(t *testing.T) {
	h := newHarness(t)
	reg := h.addRegistration(t, "a@x.com", "trial", 1)
	pending := h.addPayment(t, reg.ID, "O1", models.PaymentPending)
	svc := h.paymentService()

	_, _, err := svc.Receipt(context.Background(), pending.ID)
	require.Error(t, err)
	assert.Equal(t, utils.ErrPaymentNotCompleted, utils.GetAppError(err).Message)

	_, err = h.payments.MarkCompleted(context.Background(), pending.ID, "P1", "sig")
	require.NoError(t, err)

	pdf, payment, err := svc.Receipt(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, payment.ID)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
