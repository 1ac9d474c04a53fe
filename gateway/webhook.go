package gateway

import (
	"encoding/json"
	"fmt"
)

// Webhook event names handled by the payment service
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

// WebhookEvent is the part of a provider webhook the service acts on
type WebhookEvent struct {
	Event     string
	OrderID   string
	PaymentID string
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseWebhookEvent decodes a webhook body. Signature checks happen before this.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("invalid webhook body: %w", err)
	}
	if p.Event == "" {
		return nil, fmt.Errorf("webhook body has no event")
	}
	return &WebhookEvent{
		Event:     p.Event,
		OrderID:   p.Payload.Payment.Entity.OrderID,
		PaymentID: p.Payload.Payment.Entity.ID,
	}, nil
}
