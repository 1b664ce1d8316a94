package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/safedroid/safedroid/internal/dashboard"
	"github.com/safedroid/safedroid/internal/http/viewmodels"
	"github.com/safedroid/safedroid/internal/http/views"
	"github.com/safedroid/safedroid/internal/scanapi"
)

// HandleDashboard renders the dashboard page for the requested tab.
func (h *Handlers) HandleDashboard(c *echo.Context) error {
	if tab := strings.TrimSpace(c.QueryParam("tab")); tab != "" {
		h.State.SetActiveTab(dashboard.Tab(tab))
	}
	snap := h.State.Snapshot()

	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	layout := viewmodels.LayoutData{
		Title:     tabTitle(snap.ActiveTab),
		CSRFToken: csrfToken,
		Notice:    h.popNotice(c),
	}

	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.RenderDashboard(c.Response(), buildDashboardView(snap, layout)); err != nil {
		return h.RenderError(c, err)
	}
	return nil
}

// HandleScanSubmit records the user's selection, runs the scan workflow,
// and redirects back to the scan tab with a notice on failure.
func (h *Handlers) HandleScanSubmit(c *echo.Context) error {
	h.State.SetSelectedApp(strings.TrimSpace(c.FormValue("app")))

	_, err := h.Scanner.RunScan(c.Request().Context())
	var apiErr *scanapi.APIError
	switch {
	case err == nil:
	case errors.Is(err, dashboard.ErrNoAppSelected):
		h.setNotice(c, viewmodels.NoticeViewData{Category: "warning", Message: "Select an app to scan first."})
	case errors.Is(err, dashboard.ErrUnknownApp):
		h.setNotice(c, viewmodels.NoticeViewData{Category: "warning", Message: "The selected app is not in the inventory."})
	case errors.As(err, &apiErr):
		message := "Scan failed. The scan service returned an error."
		if apiErr.Detail != "" {
			message = "Scan failed: " + apiErr.Detail
		}
		h.setNotice(c, viewmodels.NoticeViewData{Category: "error", Message: message})
	default:
		h.setNotice(c, viewmodels.NoticeViewData{
			Category: "error",
			Message:  "Scan failed. The scan service could not be reached or returned an invalid response.",
		})
	}

	return c.Redirect(http.StatusSeeOther, "/?tab=scan")
}

// HandleHealthz returns a simple health check response.
func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func buildDashboardView(snap dashboard.Snapshot, layout viewmodels.LayoutData) viewmodels.DashboardViewData {
	tabs := make([]viewmodels.TabViewData, 0, len(dashboard.Tabs()))
	for _, tab := range dashboard.Tabs() {
		tabs = append(tabs, viewmodels.TabViewData{
			ID:     string(tab),
			Label:  tabLabel(tab),
			Href:   "/?tab=" + string(tab),
			Active: tab == snap.ActiveTab,
		})
	}

	data := viewmodels.DashboardViewData{
		Layout:    layout,
		Tabs:      tabs,
		ActiveTab: string(snap.ActiveTab),
		ScanTab:   snap.ActiveTab == dashboard.TabScan,
	}

	if !data.ScanTab {
		data.PlaceholderName = tabLabel(snap.ActiveTab)
		return data
	}

	data.HasApps = len(snap.Apps) > 0
	data.SelectedApp = snap.SelectedApp
	data.Loading = snap.Loading
	data.Apps = make([]viewmodels.AppOption, 0, len(snap.Apps))
	for _, app := range snap.Apps {
		data.Apps = append(data.Apps, viewmodels.AppOption{
			Name:     app.Name,
			Selected: app.Name == snap.SelectedApp,
		})
	}

	if result := snap.ScanResult; result != nil {
		data.Result = &viewmodels.ScanResultViewData{
			AppName:               result.AppName,
			RiskScore:             result.RiskScore,
			PermissionCount:       len(result.ExtractedPermissions),
			WarningCount:          len(result.Explanations),
			RiskLevel:             result.RiskLevel,
			Permissions:           result.ExtractedPermissions,
			Explanations:          result.Explanations,
			DangerousCombinations: result.DangerousCombinations,
			TrustedPublisher:      result.TrustedPublisher,
		}
	}
	return data
}

func tabLabel(tab dashboard.Tab) string {
	switch tab {
	case dashboard.TabScan:
		return "Scan"
	case dashboard.TabAnalyze:
		return "Analyze"
	case dashboard.TabThreats:
		return "Threats"
	case dashboard.TabCompare:
		return "Compare"
	case dashboard.TabPermissions:
		return "Permissions"
	default:
		return string(tab)
	}
}

func tabTitle(tab dashboard.Tab) string {
	return tabLabel(tab)
}
