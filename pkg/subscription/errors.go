package subscription

import "errors"

var (
	ErrNotFound          = errors.New("subscription not found")
	ErrWriteFailed       = errors.New("subscription write failed")
	ErrInvalidTransition = errors.New("invalid subscription state transition")
	ErrUnknownTier       = errors.New("unknown subscription tier")

	// Provider-specific errors
	ErrMissingAPIKey             = errors.New("billing provider API key is required")
	ErrMissingWebhookSecret      = errors.New("billing provider webhook secret is required")
	ErrInvalidProviderEnv        = errors.New("invalid billing provider environment")
	ErrWebhookVerificationFailed = errors.New("webhook signature verification failed")
	ErrNoCheckoutURL             = errors.New("no checkout URL returned from provider")
)
