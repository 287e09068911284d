package billing

import "errors"

var (
	// ErrInvalidSignature is returned when webhook signature verification
	// fails.
	ErrInvalidSignature = errors.New("webhook signature verification failed")

	// ErrInvalidPayload is returned when a webhook payload cannot be
	// parsed.
	ErrInvalidPayload = errors.New("invalid webhook payload")

	// ErrMissingWorkspace is returned when a subscription event carries no
	// workspace reference in its custom data.
	ErrMissingWorkspace = errors.New("webhook event has no workspace reference")

	// ErrFailedToSyncSubscription wraps persistence failures during
	// webhook processing.
	ErrFailedToSyncSubscription = errors.New("failed to sync subscription state")
)
