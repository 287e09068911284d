package tier

import "errors"

var (
	// ErrTierNotFound is returned when a workspace has no legacy tier
	// assignment.
	ErrTierNotFound = errors.New("workspace tier not found")

	// ErrSubscriptionNotFound is returned when a workspace has no active
	// service subscription.
	ErrSubscriptionNotFound = errors.New("service subscription not found")

	// ErrServiceTierNotFound is returned when a subscription references a
	// service tier that does not exist.
	ErrServiceTierNotFound = errors.New("service tier not found")

	// ErrFailedToFetchTier wraps infrastructure failures while reading
	// tier records.
	ErrFailedToFetchTier = errors.New("failed to fetch tier records")

	// ErrFailedToSaveSubscription wraps infrastructure failures while
	// persisting a service subscription.
	ErrFailedToSaveSubscription = errors.New("failed to save service subscription")
)
