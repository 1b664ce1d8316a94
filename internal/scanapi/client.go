package scanapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxBodySize = 1 << 20 // 1 MiB

// Client issues the three scan service calls against a configured base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a scan service client. It validates that baseURL is provided.
func New(baseURL string) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("scan service base URL is required")
	}
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{},
	}, nil
}

func (c *Client) ensureClient() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("scan service base URL is required")
	}
	if c.HTTP == nil {
		return errors.New("scan service http client is not configured")
	}
	return nil
}

// ListApps fetches the scannable application inventory.
func (c *Client) ListApps(ctx context.Context) ([]Application, error) {
	body, err := c.do(ctx, http.MethodGet, "/apps", nil)
	if err != nil {
		return nil, err
	}
	var out []Application
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode apps response: %w", err)
	}
	return out, nil
}

// ListPermissionCategories fetches the permission category taxonomy.
func (c *Client) ListPermissionCategories(ctx context.Context) (map[string]PermissionCategory, error) {
	body, err := c.do(ctx, http.MethodGet, "/permission-categories", nil)
	if err != nil {
		return nil, err
	}
	var out map[string]PermissionCategory
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode permission categories response: %w", err)
	}
	return out, nil
}

// SubmitScan requests a risk assessment for the named app.
func (c *Client) SubmitScan(ctx context.Context, appName string) (ScanResult, error) {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return ScanResult{}, errors.New("app name is required")
	}

	payload, err := json.Marshal(struct {
		AppName string `json:"app_name"`
	}{AppName: appName})
	if err != nil {
		return ScanResult{}, err
	}

	body, err := c.do(ctx, http.MethodPost, "/scan", payload)
	if err != nil {
		return ScanResult{}, err
	}
	var out ScanResult
	if err := json.Unmarshal(body, &out); err != nil {
		return ScanResult{}, fmt.Errorf("decode scan response: %w", err)
	}
	// A well-formed assessment always carries a risk level. Anything else is
	// an error-shaped body hiding behind a 2xx status.
	if strings.TrimSpace(out.RiskLevel) == "" {
		return ScanResult{}, errors.New("scan response is not a risk assessment: missing risk_level")
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}
	endpoint, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "safedroid")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     errorDetail(body),
		}
	}
	return body, nil
}

func (c *Client) endpoint(path string) (string, error) {
	base := strings.TrimRight(c.BaseURL, "/")
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.Fragment = ""
	return u.String(), nil
}

// errorDetail extracts a short human-readable summary from an error body.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if detail := strings.TrimSpace(payload.Detail); detail != "" {
		return detail
	}
	return strings.TrimSpace(payload.Error)
}
