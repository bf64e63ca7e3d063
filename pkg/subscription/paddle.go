package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"

	"github.com/juristech/lexkit/pkg/plan"
)

// PaddleConfig holds configuration for the Paddle billing provider.
// Each tier maps to a Paddle catalog price so checkout and webhook
// processing can translate between the two id spaces.
type PaddleConfig struct {
	APIKey        string `env:"PADDLE_API_KEY,required"`
	WebhookSecret string `env:"PADDLE_WEBHOOK_SECRET,required"`
	Environment   string `env:"PADDLE_ENVIRONMENT" envDefault:"production"`

	PriceBasic      string `env:"PADDLE_PRICE_BASIC,required"`
	PricePremium    string `env:"PADDLE_PRICE_PREMIUM,required"`
	PriceEnterprise string `env:"PADDLE_PRICE_ENTERPRISE,required"`
}

// PaddleProvider implements BillingProvider for Paddle.
type PaddleProvider struct {
	client      *paddle.SDK
	verifier    *paddle.WebhookVerifier
	priceByTier map[plan.Tier]string
	tierByPrice map[string]plan.Tier
}

// NewPaddleProvider creates a new Paddle billing provider.
func NewPaddleProvider(cfg PaddleConfig) (*PaddleProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.WebhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}

	var client *paddle.SDK
	var err error
	switch strings.ToLower(cfg.Environment) {
	case "sandbox":
		client, err = paddle.NewSandbox(cfg.APIKey)
	case "production", "":
		client, err = paddle.New(cfg.APIKey)
	default:
		return nil, errors.Join(ErrInvalidProviderEnv, fmt.Errorf("environment %q", cfg.Environment))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create paddle client: %w", err)
	}

	priceByTier := map[plan.Tier]string{
		plan.TierBasic:      cfg.PriceBasic,
		plan.TierPremium:    cfg.PricePremium,
		plan.TierEnterprise: cfg.PriceEnterprise,
	}
	tierByPrice := make(map[string]plan.Tier, len(priceByTier))
	for tier, price := range priceByTier {
		if price == "" {
			return nil, fmt.Errorf("paddle price ID for tier %q is required", tier)
		}
		tierByPrice[price] = tier
	}

	return &PaddleProvider{
		client:      client,
		verifier:    paddle.NewWebhookVerifier(cfg.WebhookSecret),
		priceByTier: priceByTier,
		tierByPrice: tierByPrice,
	}, nil
}

// PriceIDFor returns the Paddle price ID for a plan tier.
func (p *PaddleProvider) PriceIDFor(tier plan.Tier) string {
	return p.priceByTier[tier]
}

// CreateCheckoutLink creates a hosted checkout session in Paddle.
func (p *PaddleProvider) CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	if req.PriceID == "" {
		return nil, errors.New("price ID is required")
	}
	if req.CustomerID == "" {
		return nil, errors.New("customer ID is required")
	}

	item := paddle.NewCreateTransactionItemsTransactionItemFromCatalog(&paddle.TransactionItemFromCatalog{
		PriceID:  req.PriceID,
		Quantity: 1,
	})

	transactionReq := &paddle.CreateTransactionRequest{
		Items: []paddle.CreateTransactionItems{*item},
		CustomData: paddle.CustomData{
			"customer_id": req.CustomerID,
		},
	}
	if req.Email != "" {
		transactionReq.CustomData["email"] = req.Email
	}
	if req.SuccessURL != "" {
		transactionReq.Checkout = &paddle.TransactionCheckout{
			URL: paddle.PtrTo(req.SuccessURL),
		}
	}

	transaction, err := p.client.TransactionsClient.CreateTransaction(ctx, transactionReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create paddle transaction: %w", err)
	}

	if transaction.Checkout == nil || transaction.Checkout.URL == nil {
		return nil, ErrNoCheckoutURL
	}

	return &CheckoutLink{
		URL:       *transaction.Checkout.URL,
		SessionID: transaction.ID,
		ExpiresAt: time.Now().Add(24 * time.Hour), // Paddle checkout links expire in 24 hours
	}, nil
}

// ParseWebhook validates and parses incoming webhook data from Paddle.
func (p *PaddleProvider) ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/webhook", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for verification: %w", err)
	}
	req.Header.Set("Paddle-Signature", signature)

	valid, err := p.verifier.Verify(req)
	if err != nil {
		return nil, errors.Join(ErrWebhookVerificationFailed, err)
	}
	if !valid {
		return nil, ErrWebhookVerificationFailed
	}

	var paddleEvent struct {
		EventType string         `json:"event_type"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(payload, &paddleEvent); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	event := &WebhookEvent{
		Type:          mapPaddleEventType(paddleEvent.EventType),
		ProviderEvent: paddleEvent.EventType,
		Raw:           paddleEvent.Data,
	}

	if customData, ok := paddleEvent.Data["custom_data"].(map[string]any); ok {
		if customerID, ok := customData["customer_id"].(string); ok {
			event.CustomerID = customerID
		}
	}

	if priceID := extractPriceID(paddleEvent.EventType, paddleEvent.Data); priceID != "" {
		if tier, ok := p.tierByPrice[priceID]; ok {
			event.Tier = string(tier)
		}
	}

	return event, nil
}

// extractPriceID digs the catalog price out of the event payload.
// Subscription and transaction events nest it differently.
func extractPriceID(eventType string, data map[string]any) string {
	items, ok := data["items"].([]any)
	if !ok || len(items) == 0 {
		return ""
	}
	item, ok := items[0].(map[string]any)
	if !ok {
		return ""
	}

	if strings.HasPrefix(eventType, "subscription.") {
		if price, ok := item["price"].(map[string]any); ok {
			if id, ok := price["id"].(string); ok {
				return id
			}
		}
		return ""
	}

	if id, ok := item["price_id"].(string); ok {
		return id
	}
	return ""
}

// mapPaddleEventType maps Paddle event types to internal EventType.
func mapPaddleEventType(paddleEvent string) EventType {
	switch paddleEvent {
	case "transaction.completed", "transaction.payment_succeeded":
		return EventPaymentSucceeded
	case "subscription.created":
		return EventSubscriptionCreated
	case "subscription.updated":
		return EventSubscriptionUpdated
	case "subscription.canceled":
		return EventSubscriptionCancelled
	case "transaction.payment_failed":
		return EventPaymentFailed
	default:
		return EventType(paddleEvent)
	}
}
