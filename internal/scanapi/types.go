// Package scanapi defines the wire contract of the scan service and the
// HTTP client the dashboard uses to reach it.
package scanapi

import (
	"errors"
	"fmt"
	"strings"
)

// Application is one entry of the scannable app inventory. The dashboard
// consumes only Name; the remaining fields are informational.
type Application struct {
	Name            string `json:"name"`
	Publisher       string `json:"publisher,omitempty"`
	PermissionCount int    `json:"permission_count,omitempty"`
}

// PermissionCategory is the display metadata for one permission category.
type PermissionCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScanResult is the risk assessment returned for one app.
type ScanResult struct {
	AppName               string   `json:"app_name"`
	RiskScore             int      `json:"risk_score"`
	ExtractedPermissions  []string `json:"extracted_permissions"`
	Explanations          []string `json:"explanations"`
	RiskLevel             string   `json:"risk_level"`
	DangerousCombinations []string `json:"dangerous_combinations,omitempty"`
	TrustedPublisher      bool     `json:"trusted_publisher,omitempty"`
}

// ErrAPI is the sentinel all scan service API errors unwrap to.
var ErrAPI = errors.New("scan service api error")

// APIError is a non-2xx response from the scan service.
type APIError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	status := strings.TrimSpace(e.Status)
	detail := strings.TrimSpace(e.Detail)
	if status != "" && detail != "" {
		return fmt.Sprintf("scan service api error: %s: %s", status, detail)
	}
	if status != "" {
		return fmt.Sprintf("scan service api error: %s", status)
	}
	if detail != "" {
		return fmt.Sprintf("scan service api error: %s", detail)
	}
	return "scan service api error"
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}
