// Package notification delivers plan lifecycle notices to firm admins.
// Postmark is the production transport; the noop notifier serves local
// development and tests.
package notification
