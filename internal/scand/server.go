package scand

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

// EchoServer is the scan service HTTP application. It is mounted into a
// net/http server by the caller.
type EchoServer struct {
	h *Handlers
	e *echo.Echo
}

// NewEchoServer creates the scan service HTTP application.
func NewEchoServer(logger *slog.Logger) *EchoServer {
	e := echo.New()
	if logger != nil {
		e.Logger = logger
	}
	es := &EchoServer{h: &Handlers{}, e: e}
	es.registerRoutes()
	return es
}

func (es *EchoServer) registerRoutes() {
	// The dashboard may be served from a different origin during development.
	es.e.Use(middleware.CORS("*"))

	es.e.GET("/healthz", es.h.HandleHealthz)
	es.e.GET("/apps", es.h.HandleListApps)
	es.e.GET("/permission-categories", es.h.HandleListPermissionCategories)
	es.e.GET("/permissions", es.h.HandleListPermissions)
	es.e.POST("/scan", es.h.HandleScan)
}

// Handler returns the root HTTP handler.
func (es *EchoServer) Handler() http.Handler {
	return es.e
}
