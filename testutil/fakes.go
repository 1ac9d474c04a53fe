package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Govind-619/TurboLeague/events"
	"github.com/Govind-619/TurboLeague/gateway"
)

// GatewaySecret and WebhookSecret are the secrets FakeGateway signs with
const (
	GatewaySecret = "test_key_secret"
	WebhookSecret = "test_webhook_secret"
)

// FakeGateway creates orders in memory and checks real HMAC signatures
type FakeGateway struct {
	mu       sync.Mutex
	Requests []gateway.OrderRequest
	// NextOrderIDs are handed out first; afterwards ids are generated
	NextOrderIDs []string
	Err          error
	counter      int
}

// KeyID returns a fixed test key
func (g *FakeGateway) KeyID() string { return "rzp_test_key" }

// CreateOrder records the request and returns an order
func (g *FakeGateway) CreateOrder(_ context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Requests = append(g.Requests, req)
	if g.Err != nil {
		return nil, g.Err
	}
	g.counter++
	id := fmt.Sprintf("order_test_%d", g.counter)
	if len(g.NextOrderIDs) > 0 {
		id, g.NextOrderIDs = g.NextOrderIDs[0], g.NextOrderIDs[1:]
	}
	return &gateway.Order{ID: id, Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
}

// Calls returns how many orders were requested
func (g *FakeGateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Requests)
}

// VerifyPaymentSignature checks against GatewaySecret
func (g *FakeGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return Sign(orderID, paymentID) == signature
}

// VerifyWebhookSignature checks against WebhookSecret
func (g *FakeGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	return gateway.ComputeSignature(WebhookSecret, body) == signature
}

// Sign returns the checkout signature FakeGateway accepts
func Sign(orderID, paymentID string) string {
	return gateway.ComputeSignature(GatewaySecret, gateway.PaymentSignaturePayload(orderID, paymentID))
}

// SignWebhook returns the webhook signature FakeGateway accepts
func SignWebhook(body []byte) string {
	return gateway.ComputeSignature(WebhookSecret, body)
}

// SentReminder is one reminder captured by FakeMailer
type SentReminder struct {
	Email          string
	Name           string
	LeagueType     string
	Amount         int64
	RegistrationID string
}

// FakeMailer records e-mails. Sends to addresses in FailFor return an error.
type FakeMailer struct {
	mu        sync.Mutex
	Reminders []SentReminder
	Emails    []string
	FailFor   map[string]bool
}

// SendPaymentReminder records a reminder
func (m *FakeMailer) SendPaymentReminder(_ context.Context, email, name, leagueType string, amount int64, registrationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailFor[email] {
		return fmt.Errorf("smtp: mailbox %s unavailable", email)
	}
	m.Reminders = append(m.Reminders, SentReminder{email, name, leagueType, amount, registrationID})
	return nil
}

// SendEmail records the recipient
func (m *FakeMailer) SendEmail(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailFor[to] {
		return fmt.Errorf("smtp: mailbox %s unavailable", to)
	}
	m.Emails = append(m.Emails, to)
	return nil
}

// Sent returns a copy of the recorded reminders
func (m *FakeMailer) Sent() []SentReminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentReminder(nil), m.Reminders...)
}

// FakeStore keeps objects in memory
type FakeStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

// NewFakeStore creates an empty FakeStore
func NewFakeStore() *FakeStore {
	return &FakeStore{Objects: map[string][]byte{}}
}

// Put stores body under key
func (s *FakeStore) Put(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = buf.Bytes()
	return "https://files.test/" + key, nil
}

// Delete removes key
func (s *FakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, strings.TrimPrefix(key, "https://files.test/"))
	return nil
}

// Has reports whether key is stored
func (s *FakeStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Objects[key]
	return ok
}

// FakePublisher records published events
type FakePublisher struct {
	mu     sync.Mutex
	Events []events.Event
	Err    error
}

// Publish records event
func (p *FakePublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return p.Err
}

// Published returns a copy of the recorded events
func (p *FakePublisher) Published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.Events...)
}
