// Package scand is the scan service: it serves the app inventory, the
// permission taxonomy, and on-demand risk assessments over HTTP.
package scand

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/safedroid/safedroid/internal/appcatalog"
	"github.com/safedroid/safedroid/internal/metrics"
	"github.com/safedroid/safedroid/internal/riskengine"
	"github.com/safedroid/safedroid/internal/scanapi"
)

const notFoundDetail = "App not found in extracted metadata database"

// Handlers groups the scan service HTTP handlers.
type Handlers struct{}

type detailResponse struct {
	Detail string `json:"detail"`
}

// HandleListApps returns the scannable app inventory sorted by name.
func (h *Handlers) HandleListApps(c *echo.Context) error {
	catalog := appcatalog.Apps()
	out := make([]scanapi.Application, 0, len(catalog))
	for _, app := range catalog {
		out = append(out, scanapi.Application{
			Name:            app.Name,
			Publisher:       app.Publisher,
			PermissionCount: len(app.Permissions),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// HandleListPermissionCategories returns the permission category taxonomy.
func (h *Handlers) HandleListPermissionCategories(c *echo.Context) error {
	return c.JSON(http.StatusOK, appcatalog.Categories())
}

// HandleListPermissions returns the metadata for every known permission.
func (h *Handlers) HandleListPermissions(c *echo.Context) error {
	return c.JSON(http.StatusOK, appcatalog.Permissions())
}

// HandleScan runs a risk assessment for the requested app.
func (h *Handlers) HandleScan(c *echo.Context) error {
	var req struct {
		AppName string `json:"app_name"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		metrics.ScandScanRequests.WithLabelValues("bad_request").Inc()
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "request body must be JSON with app_name"})
	}
	appName := strings.TrimSpace(req.AppName)
	if appName == "" {
		metrics.ScandScanRequests.WithLabelValues("bad_request").Inc()
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "app_name is required"})
	}

	app, ok := appcatalog.Lookup(appName)
	if !ok {
		metrics.ScandScanRequests.WithLabelValues("not_found").Inc()
		return c.JSON(http.StatusNotFound, detailResponse{Detail: notFoundDetail})
	}

	assessment := riskengine.Calculate(app.Permissions)
	metrics.ScandScanRequests.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, scanapi.ScanResult{
		AppName:               app.Name,
		RiskScore:             assessment.Score,
		ExtractedPermissions:  app.Permissions,
		Explanations:          assessment.Explanations,
		RiskLevel:             assessment.Level,
		DangerousCombinations: riskengine.DangerousCombinations(app.Permissions),
		TrustedPublisher:      appcatalog.TrustedPublisher(app.Publisher),
	})
}

// HandleHealthz returns a simple health check response.
func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
