package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/spf13/cast"
)

// orderAPI is the subset of the Razorpay SDK used here
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Razorpay is the Gateway backed by razorpay-go
type Razorpay struct {
	keyID         string
	keySecret     string
	webhookSecret string
	orders        orderAPI
}

// NewRazorpay creates a Razorpay gateway from API credentials
func NewRazorpay(keyID, keySecret, webhookSecret string) *Razorpay {
	client := razorpay.NewClient(keyID, keySecret)
	return &Razorpay{
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		orders:        client.Order,
	}
}

// KeyID returns the public API key
func (r *Razorpay) KeyID() string {
	return r.keyID
}

// CreateOrder creates a remote order. The SDK has no context support, so ctx
// is only checked before the call.
func (r *Razorpay) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"notes":           notes,
		"payment_capture": 1,
	}

	resp, err := r.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return parseOrder(resp)
}

// parseOrder reads the loosely typed SDK response. Numbers arrive as float64
// after JSON decoding.
func parseOrder(resp map[string]interface{}) (*Order, error) {
	id := cast.ToString(resp["id"])
	if id == "" {
		return nil, ErrInvalidOrder
	}
	amount, err := cast.ToInt64E(resp["amount"])
	if err != nil {
		return nil, fmt.Errorf("razorpay order %s: invalid amount %v", id, resp["amount"])
	}
	return &Order{
		ID:       id,
		Amount:   amount,
		Currency: cast.ToString(resp["currency"]),
		Receipt:  cast.ToString(resp["receipt"]),
		Status:   cast.ToString(resp["status"]),
	}, nil
}

// VerifyPaymentSignature checks the signature returned by the checkout widget
func (r *Razorpay) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	expected := ComputeSignature(r.keySecret, PaymentSignaturePayload(orderID, paymentID))
	return signatureMatches(expected, signature)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the raw body
func (r *Razorpay) VerifyWebhookSignature(body []byte, signature string) bool {
	if r.webhookSecret == "" || signature == "" {
		return false
	}
	return signatureMatches(ComputeSignature(r.webhookSecret, body), signature)
}
