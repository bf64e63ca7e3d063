package notification

import (
	"context"
	"time"
)

// PlanChange describes a committed plan change for the notice sent to
// the firm's billing contact.
type PlanChange struct {
	Recipient string // billing email address
	FirmName  string
	Tier      string // activated tier token
	ExpiresAt time.Time
}

// Notifier dispatches user-facing notices. The entitlement core only
// cares whether the send succeeded; transport detail stays behind this
// interface.
type Notifier interface {
	PlanChanged(ctx context.Context, change PlanChange) error
}
