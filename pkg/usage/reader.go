package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Reader takes usage snapshots by fanning out the registered counters.
type Reader struct {
	registry *Registry
}

// NewReader creates a Reader over the given registry. Panics on a nil
// registry to fail fast during initialization.
func NewReader(registry *Registry) *Reader {
	if registry == nil {
		panic("usage: Registry is required")
	}
	return &Reader{registry: registry}
}

// Snapshot counts every known resource for the workspace. The counters are
// independent queries, so they run concurrently; any single failure fails
// the whole snapshot and propagates to the caller's one error boundary.
// Resources without a registered counter report 0.
func (r *Reader) Snapshot(ctx context.Context, workspaceID uuid.UUID) (Snapshot, error) {
	var (
		snap Snapshot
		g, gctx = errgroup.WithContext(ctx)
		results = make([]int64, len(allResources))
	)

	for i, res := range allResources {
		counter, ok := r.registry.Get(res)
		if !ok {
			continue
		}
		g.Go(func() error {
			n, err := counter(gctx, workspaceID)
			if err != nil {
				return errors.Join(ErrFailedToCountResource, err)
			}
			results[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	for i, res := range allResources {
		snap.set(res, results[i])
	}
	return snap, nil
}
