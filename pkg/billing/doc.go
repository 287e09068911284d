// Package billing syncs service subscription state from the billing
// provider's webhooks into the tier store.
//
// The Provider interface abstracts webhook verification and parsing; the
// Paddle implementation is included. The Syncer applies parsed events to
// the subscription store and is the only write path into the service
// subscription model.
//
// # Quick Start
//
//	cfg := config.MustLoad[billing.PaddleConfig]()
//	provider, err := billing.NewPaddleProvider(cfg)
//	if err != nil {
//		// invalid configuration
//	}
//
//	syncer := billing.NewSyncer(store, log)
//
//	event, err := provider.ParseWebhook(ctx, payload, signature)
//	if err != nil {
//		// reject with 400; Paddle retries failed deliveries
//	}
//	if err := syncer.Process(ctx, event); err != nil {
//		// reject with 500 to trigger a retry
//	}
//
// Checkout sessions attach workspace_id and service_tier_id as custom
// data, which Paddle echoes back on every subscription event; the syncer
// uses them to key the subscription to a workspace.
package billing
