package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/safedroid/safedroid/internal/metrics"
	"github.com/safedroid/safedroid/internal/scanapi"
)

// ScanClient is the slice of the scan service contract the workflow needs.
type ScanClient interface {
	ListApps(ctx context.Context) ([]scanapi.Application, error)
	ListPermissionCategories(ctx context.Context) (map[string]scanapi.PermissionCategory, error)
	SubmitScan(ctx context.Context, appName string) (scanapi.ScanResult, error)
}

var (
	// ErrNoAppSelected is returned when a scan is requested with no selection.
	ErrNoAppSelected = errors.New("select an app to scan first")
	// ErrUnknownApp is returned when the selection is not in the inventory.
	ErrUnknownApp = errors.New("selected app is not in the inventory")
)

// Controller orchestrates scan requests end-to-end against the state store.
type Controller struct {
	state  *State
	client ScanClient
	logger *slog.Logger

	// group collapses concurrent triggers for the same app into one request.
	group singleflight.Group
}

// NewController wires a workflow controller to its state store and client.
func NewController(state *State, client ScanClient, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{state: state, client: client, logger: logger}
}

// LoadInventory issues the two startup fetches concurrently. Failures are
// logged and leave the corresponding field empty; the dashboard degrades
// instead of refusing to start.
func (c *Controller) LoadInventory(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		apps, err := c.client.ListApps(ctx)
		if err != nil {
			metrics.InventoryFetchFailures.WithLabelValues("apps").Inc()
			c.logger.Warn("app inventory fetch failed", "error", err)
			return nil
		}
		c.state.SetApps(apps)
		return nil
	})
	g.Go(func() error {
		categories, err := c.client.ListPermissionCategories(ctx)
		if err != nil {
			metrics.InventoryFetchFailures.WithLabelValues("permission_categories").Inc()
			c.logger.Warn("permission category fetch failed", "error", err)
			return nil
		}
		c.state.SetCategories(categories)
		return nil
	})

	_ = g.Wait()
}

// RunScan validates the current selection, marks the state loading, submits
// exactly one scan request, and commits the result. The previous result is
// cleared as soon as the request is accepted; the loading flag is released
// on every exit path. Concurrent triggers for the same app join the
// in-flight request instead of issuing a second one.
func (c *Controller) RunScan(ctx context.Context) (scanapi.ScanResult, error) {
	snap := c.state.Snapshot()
	if snap.SelectedApp == "" {
		metrics.ScanRequests.WithLabelValues("rejected").Inc()
		return scanapi.ScanResult{}, ErrNoAppSelected
	}
	if !snap.HasApp(snap.SelectedApp) {
		metrics.ScanRequests.WithLabelValues("rejected").Inc()
		return scanapi.ScanResult{}, ErrUnknownApp
	}

	selected := snap.SelectedApp
	v, err, _ := c.group.Do(selected, func() (any, error) {
		c.state.SetLoading(true)
		c.state.SetScanResult(nil)
		defer c.state.SetLoading(false)

		started := time.Now()
		result, err := c.client.SubmitScan(ctx, selected)
		metrics.ScanDuration.Observe(time.Since(started).Seconds())
		if err != nil {
			metrics.ScanRequests.WithLabelValues("error").Inc()
			c.logger.Error("scan request failed", "app", selected, "error", err)
			return nil, err
		}

		c.state.SetScanResult(&result)
		metrics.ScanRequests.WithLabelValues("ok").Inc()
		c.logger.Info("scan completed",
			"app", selected,
			"risk_score", result.RiskScore,
			"risk_level", result.RiskLevel,
			"permissions", len(result.ExtractedPermissions),
			"warnings", len(result.Explanations),
		)
		return result, nil
	})
	if err != nil {
		return scanapi.ScanResult{}, err
	}
	return v.(scanapi.ScanResult), nil
}
