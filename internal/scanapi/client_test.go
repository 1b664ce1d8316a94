package scanapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestListApps(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/apps" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"name":"Camera","publisher":"acme","permission_count":3},{"name":"Maps"}]`)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	apps, err := client.ListApps(context.Background())
	if err != nil {
		t.Fatalf("ListApps() error = %v", err)
	}
	want := []Application{
		{Name: "Camera", Publisher: "acme", PermissionCount: 3},
		{Name: "Maps"},
	}
	if !reflect.DeepEqual(apps, want) {
		t.Fatalf("ListApps() = %v, want %v", apps, want)
	}
}

func TestListPermissionCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/permission-categories" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"SYSTEM":{"name":"System Permissions","description":"Core system-level access"}}`)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cats, err := client.ListPermissionCategories(context.Background())
	if err != nil {
		t.Fatalf("ListPermissionCategories() error = %v", err)
	}
	if got := cats["SYSTEM"].Name; got != "System Permissions" {
		t.Fatalf("SYSTEM.Name = %q, want %q", got, "System Permissions")
	}
}

func TestSubmitScan_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/scan" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		var req struct {
			AppName string `json:"app_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.AppName != "Camera" {
			t.Errorf("app_name = %q, want %q", req.AppName, "Camera")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"app_name":"Camera","risk_score":72,"extracted_permissions":["CAMERA","LOCATION"],"explanations":["Accesses camera without runtime justification"],"risk_level":"high"}`)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := client.SubmitScan(context.Background(), "Camera")
	if err != nil {
		t.Fatalf("SubmitScan() error = %v", err)
	}
	if result.RiskScore != 72 {
		t.Fatalf("RiskScore = %d, want 72", result.RiskScore)
	}
	if len(result.ExtractedPermissions) != 2 {
		t.Fatalf("ExtractedPermissions = %v, want 2 entries", result.ExtractedPermissions)
	}
	if len(result.Explanations) != 1 {
		t.Fatalf("Explanations = %v, want 1 entry", result.Explanations)
	}
	if result.RiskLevel != "high" {
		t.Fatalf("RiskLevel = %q, want %q", result.RiskLevel, "high")
	}
}

func TestSubmitScan_NotFoundReturnsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"App not found in extracted metadata database"}`)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.SubmitScan(context.Background(), "Ghost")
	if err == nil {
		t.Fatal("SubmitScan() error = nil, want API error")
	}
	if !errors.Is(err, ErrAPI) {
		t.Fatalf("errors.Is(err, ErrAPI) = false, err = %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("errors.As(*APIError) = false, err = %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusNotFound)
	}
	if apiErr.Detail != "App not found in extracted metadata database" {
		t.Fatalf("Detail = %q", apiErr.Detail)
	}
}

func TestSubmitScan_ErrorShapedOKBodyIsDecodeFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "non-json body", body: `not json at all`},
		{name: "error payload with 200 status", body: `{"detail":"something went wrong"}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			client, err := New(srv.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			if _, err := client.SubmitScan(context.Background(), "Camera"); err == nil {
				t.Fatal("SubmitScan() error = nil, want failure")
			}
		})
	}
}

func TestSubmitScan_ConnectionFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.SubmitScan(context.Background(), "Camera"); err == nil {
		t.Fatal("SubmitScan() error = nil, want transport failure")
	}
}

func TestSubmitScan_EmptyAppNameRejectedLocally(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.SubmitScan(context.Background(), "  "); err == nil {
		t.Fatal("SubmitScan() error = nil, want app name error")
	}
	if calls != 0 {
		t.Fatalf("server received %d calls, want 0", calls)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New("   "); err == nil {
		t.Fatal("New() error = nil, want base URL error")
	}
}
