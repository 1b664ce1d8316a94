// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultScandHTTPAddr  = ":8000"
	defaultScanServiceURL = "http://127.0.0.1:8000"
)

type Config struct {
	// HTTPAddr is the dashboard listen address.
	HTTPAddr string
	// ScanServiceURL is the base address of the remote scan service.
	ScanServiceURL string
	// ScandHTTPAddr is the scan service listen address.
	ScandHTTPAddr string
	// MetricsAddr enables the Prometheus endpoint when non-empty ("off" disables).
	MetricsAddr string
	// CookieSecure marks the CSRF and notice cookies as Secure.
	CookieSecure bool
	// InventoryRefresh re-fetches the app inventory on this interval.
	// Zero disables periodic refresh; the inventory is still loaded at startup.
	InventoryRefresh time.Duration
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		HTTPAddr:       getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		ScanServiceURL: getenvDefault("SCAN_SERVICE_URL", defaultScanServiceURL),
		ScandHTTPAddr:  getenvDefault("SCAND_HTTP_ADDR", defaultScandHTTPAddr),
		MetricsAddr:    strings.TrimSpace(os.Getenv("METRICS_ADDR")),
		CookieSecure:   getenvBoolDefault("COOKIE_SECURE", false),
	}

	if v := strings.TrimSpace(os.Getenv("INVENTORY_REFRESH_INTERVAL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.InventoryRefresh = d
		}
	}

	if err := validateBaseURL(cfg.ScanServiceURL); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("SCAN_SERVICE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("SCAN_SERVICE_URL must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("SCAN_SERVICE_URL is missing a host: %q", raw)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBoolDefault(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch v {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}
