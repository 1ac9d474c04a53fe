// Package gateway talks to the payment provider. Services only see the
// Gateway interface so tests can swap the Razorpay client for a fake.
package gateway

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidOrder is returned when the provider answers without a usable order id
var ErrInvalidOrder = errors.New("gateway returned an order without id")

// OrderRequest describes an order to create. Amount is in paise.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is the provider's view of a created order
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// Gateway creates orders and checks the signatures the provider issues
type Gateway interface {
	// KeyID is the public key the checkout widget is opened with
	KeyID() string
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

// ToRupees converts an amount in paise to rupees
func ToRupees(paise int64) decimal.Decimal {
	return decimal.New(paise, -2)
}

// ToPaise converts whole rupees to paise
func ToPaise(rupees int64) int64 {
	return decimal.NewFromInt(rupees).Shift(2).IntPart()
}
