package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// Config holds email notification configuration. Tokens are optional
// so development environments can run with the noop notifier instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
}

var (
	ErrInvalidConfig      = errors.New("invalid notification configuration")
	ErrFailedToSendNotice = errors.New("failed to send notice")
)

type postmarkNotifier struct {
	client *postmark.Client
	sender string
}

// NewPostmarkNotifier creates a Postmark-backed Notifier.
// All fields are required for runtime operation; misconfiguration is
// surfaced here rather than on the first send.
func NewPostmarkNotifier(cfg Config) (Notifier, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}

	return &postmarkNotifier{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		sender: cfg.SenderEmail,
	}, nil
}

func (n *postmarkNotifier) PlanChanged(ctx context.Context, change PlanChange) error {
	if change.Recipient == "" {
		return fmt.Errorf("%w: recipient is required", ErrFailedToSendNotice)
	}

	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your <strong>%s</strong> plan is now active. "+
			"It is valid until %s.</p>",
		change.FirmName, change.Tier, change.ExpiresAt.Format("January 2, 2006"),
	)

	resp, err := n.client.SendEmail(ctx, postmark.Email{
		From:     n.sender,
		To:       change.Recipient,
		Subject:  fmt.Sprintf("Your %s plan is active", change.Tier),
		Tag:      "plan-changed",
		HTMLBody: body,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendNotice, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrFailedToSendNotice,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}

type noopNotifier struct{}

// NewNoopNotifier returns a Notifier that drops every notice.
// Used in development and tests.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) PlanChanged(ctx context.Context, change PlanChange) error {
	return nil
}
