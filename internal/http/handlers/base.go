// Package handlers contains the dashboard HTTP handler logic.
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/safedroid/safedroid/internal/config"
	"github.com/safedroid/safedroid/internal/dashboard"
	"github.com/safedroid/safedroid/internal/scanapi"
)

const (
	// ContextKeyRequestID stores the request id for logging and client error references.
	ContextKeyRequestID = "request_id"

	// InternalErrorCode is a stable error code safe to return to clients.
	InternalErrorCode = "INTERNAL_ERROR"
)

// ScanRunner triggers the scan workflow.
type ScanRunner interface {
	RunScan(ctx context.Context) (scanapi.ScanResult, error)
}

// Handlers groups the dashboard HTTP handlers and shared dependencies.
type Handlers struct {
	Cfg     config.Config
	State   *dashboard.State
	Scanner ScanRunner
}

// RenderError returns a generic error response with a request reference.
func (h *Handlers) RenderError(c *echo.Context, err error) error {
	requestID, _ := c.Get(ContextKeyRequestID).(string)
	path := ""
	if req := c.Request(); req != nil && req.URL != nil {
		path = req.URL.Path
	}
	method := ""
	if req := c.Request(); req != nil {
		method = req.Method
	}
	c.Logger().Error("http error",
		"request_id", requestID,
		"method", method,
		"path", path,
		"ip", c.RealIP(),
		"error", err,
	)

	msg := "Internal server error."
	if requestID != "" {
		msg = fmt.Sprintf("%s Reference: %s.", msg, requestID)
	}
	msg = fmt.Sprintf("%s Code: %s.", msg, InternalErrorCode)
	return c.String(http.StatusInternalServerError, msg)
}
