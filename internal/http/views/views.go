// Package views renders the dashboard pages from embedded HTML templates.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/safedroid/safedroid/internal/http/viewmodels"
)

//go:embed templates
var content embed.FS

var dashboardTmpl = template.Must(
	template.New("dashboard").Funcs(template.FuncMap{
		"badgeClass": RiskBadgeClass,
	}).ParseFS(content, "templates/*.html"),
)

// RenderDashboard writes the full dashboard page. The page is rendered to a
// buffer first so a template error never produces a half-written response.
func RenderDashboard(w io.Writer, data viewmodels.DashboardViewData) error {
	var buf bytes.Buffer
	if err := dashboardTmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
