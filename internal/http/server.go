package httpapp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/safedroid/safedroid/internal/config"
	"github.com/safedroid/safedroid/internal/dashboard"
	"github.com/safedroid/safedroid/internal/http/handlers"
)

// EchoServer is the dashboard HTTP application. It is mounted into a
// net/http server by the caller.
type EchoServer struct {
	h *handlers.Handlers
	e *echo.Echo
}

// NewEchoServer creates the dashboard HTTP application.
func NewEchoServer(cfg config.Config, state *dashboard.State, scanner handlers.ScanRunner, logger *slog.Logger) (*EchoServer, error) {
	h := &handlers.Handlers{Cfg: cfg, State: state, Scanner: scanner}
	e := echo.New()
	if logger != nil {
		e.Logger = logger
	}
	es := &EchoServer{h: h, e: e}
	es.e.HTTPErrorHandler = es.httpErrorHandler
	es.registerRoutes()
	return es, nil
}

func (es *EchoServer) registerRoutes() {
	es.e.Use(requestID())

	es.e.GET("/healthz", es.h.HandleHealthz)

	pages := es.e.Group("")
	pages.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	pages.GET("/", es.h.HandleDashboard)
	pages.POST("/scan", es.h.HandleScanSubmit)

	es.e.Static("/static", "web/static")
}

// Handler returns the root HTTP handler.
func (es *EchoServer) Handler() http.Handler {
	return es.e
}

// requestID assigns every request an identifier used to correlate error
// pages with log lines.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(handlers.ContextKeyRequestID, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// httpErrorHandler writes error responses without leaking internal error
// text to the client.
func (es *EchoServer) httpErrorHandler(c *echo.Context, err error) {
	status := httpStatusFromError(err)

	switch {
	case status == http.StatusNotFound:
		_ = c.String(http.StatusNotFound, "404 page not found")
	case status >= http.StatusInternalServerError:
		requestID, _ := c.Get(handlers.ContextKeyRequestID).(string)
		c.Logger().Error("request failed",
			"request_id", requestID,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		msg := fmt.Sprintf("Internal server error. Reference: %s. Code: %s.", requestID, handlers.InternalErrorCode)
		_ = c.String(status, msg)
	default:
		_ = c.String(status, http.StatusText(status))
	}
}

func httpStatusFromError(err error) int {
	var httpErr echo.HTTPStatusCoder
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode()
	}
	return http.StatusInternalServerError
}
