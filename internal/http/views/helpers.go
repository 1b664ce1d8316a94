package views

import "strings"

// RiskBadgeClass maps a risk level to the CSS class of the result badge.
// Unrecognized levels get a neutral badge instead of failing.
func RiskBadgeClass(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return "badge badge-low"
	case "medium":
		return "badge badge-medium"
	case "high":
		return "badge badge-high"
	case "critical":
		return "badge badge-critical"
	default:
		return "badge badge-unknown"
	}
}
