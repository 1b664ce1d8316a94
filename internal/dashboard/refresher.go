package dashboard

import (
	"context"
	"time"
)

// InventoryLoader reloads the app inventory from the scan service.
type InventoryLoader interface {
	LoadInventory(ctx context.Context)
}

// Refresher re-fetches the inventory on a fixed interval so apps added to
// the scan service show up without a dashboard restart. The startup fetch
// is the caller's responsibility.
type Refresher struct {
	Loader   InventoryLoader
	Interval time.Duration
}

func (r *Refresher) Run(ctx context.Context) {
	if r.Loader == nil || r.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Loader.LoadInventory(ctx)
		}
	}
}
