package subscription

import (
	"context"
	"time"
)

// BillingProvider is the payment-collection collaborator. The manager
// never interprets payment detail: it only consumes the completion
// signal, either through a checkout result or a webhook event.
type BillingProvider interface {
	// CreateCheckoutLink creates a hosted checkout session for a plan.
	CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)

	// ParseWebhook validates and parses incoming webhook data.
	// Must validate the signature to prevent webhook spoofing.
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}

// CheckoutRequest contains data needed to create a checkout session.
type CheckoutRequest struct {
	PriceID    string // provider's price identifier for the tier
	CustomerID string // our tenant ID
	Email      string // optional billing email
	SuccessURL string // redirect after successful payment
	CancelURL  string // redirect if the customer cancels
}

// CheckoutLink represents a hosted checkout session.
type CheckoutLink struct {
	URL       string
	SessionID string
	ExpiresAt time.Time
}

// PaymentResult is the completion signal the payment flow yields.
type PaymentResult struct {
	Success bool
	Reason  string // set only on failure
}

// EventType represents the normalized billing event type.
type EventType string

const (
	EventSubscriptionCreated   EventType = "subscription_created"
	EventSubscriptionUpdated   EventType = "subscription_updated"
	EventSubscriptionCancelled EventType = "subscription_cancelled"
	EventPaymentSucceeded      EventType = "payment_succeeded"
	EventPaymentFailed         EventType = "payment_failed"
)

// WebhookEvent is a normalized webhook event from the billing provider.
type WebhookEvent struct {
	Type          EventType
	ProviderEvent string         // original provider event name
	CustomerID    string         // our tenant ID, from checkout custom data
	Tier          string         // plan tier token mapped from the price ID
	Raw           map[string]any // full provider payload
}
