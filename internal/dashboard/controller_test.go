package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/safedroid/safedroid/internal/scanapi"
)

type fakeScanClient struct {
	apps          []scanapi.Application
	categories    map[string]scanapi.PermissionCategory
	appsErr       error
	categoriesErr error

	scanResult scanapi.ScanResult
	scanErr    error
	scanCalls  int
	onScan     func()
}

func (f *fakeScanClient) ListApps(ctx context.Context) ([]scanapi.Application, error) {
	if f.appsErr != nil {
		return nil, f.appsErr
	}
	return f.apps, nil
}

func (f *fakeScanClient) ListPermissionCategories(ctx context.Context) (map[string]scanapi.PermissionCategory, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeScanClient) SubmitScan(ctx context.Context, appName string) (scanapi.ScanResult, error) {
	f.scanCalls++
	if f.onScan != nil {
		f.onScan()
	}
	if f.scanErr != nil {
		return scanapi.ScanResult{}, f.scanErr
	}
	return f.scanResult, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func inventory() []scanapi.Application {
	return []scanapi.Application{{Name: "Camera"}, {Name: "Maps"}}
}

func TestRunScan_NoSelectionIssuesNoRequest(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.SetApps(inventory())
	client := &fakeScanClient{}
	ctrl := NewController(state, client, testLogger())

	_, err := ctrl.RunScan(context.Background())
	if !errors.Is(err, ErrNoAppSelected) {
		t.Fatalf("RunScan() error = %v, want ErrNoAppSelected", err)
	}
	if client.scanCalls != 0 {
		t.Fatalf("scan calls = %d, want 0", client.scanCalls)
	}

	snap := state.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true, want false throughout")
	}
	if snap.ScanResult != nil {
		t.Fatalf("ScanResult = %v, want nil", snap.ScanResult)
	}
}

func TestRunScan_UnknownSelectionRejectedAtSubmit(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.SetApps(inventory())
	state.SetSelectedApp("Ghost")
	client := &fakeScanClient{}
	ctrl := NewController(state, client, testLogger())

	_, err := ctrl.RunScan(context.Background())
	if !errors.Is(err, ErrUnknownApp) {
		t.Fatalf("RunScan() error = %v, want ErrUnknownApp", err)
	}
	if client.scanCalls != 0 {
		t.Fatalf("scan calls = %d, want 0", client.scanCalls)
	}
}

func TestRunScan_SuccessStoresResultAndReleasesLoading(t *testing.T) {
	t.Parallel()

	want := scanapi.ScanResult{
		AppName:              "Camera",
		RiskScore:            72,
		ExtractedPermissions: []string{"CAMERA", "LOCATION"},
		Explanations:         []string{"Accesses camera without runtime justification"},
		RiskLevel:            "high",
	}

	state := NewState()
	state.SetApps(inventory())
	state.SetSelectedApp("Camera")
	client := &fakeScanClient{scanResult: want}
	ctrl := NewController(state, client, testLogger())

	// Observe the in-flight state from inside the request.
	client.onScan = func() {
		snap := state.Snapshot()
		if !snap.Loading {
			t.Error("Loading = false during request, want true")
		}
		if snap.ScanResult != nil {
			t.Errorf("ScanResult = %v during request, want eagerly cleared", snap.ScanResult)
		}
	}

	got, err := ctrl.RunScan(context.Background())
	if err != nil {
		t.Fatalf("RunScan() error = %v", err)
	}
	if got.RiskScore != 72 {
		t.Fatalf("RiskScore = %d, want 72", got.RiskScore)
	}
	if client.scanCalls != 1 {
		t.Fatalf("scan calls = %d, want 1", client.scanCalls)
	}

	snap := state.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true after completion, want false")
	}
	if snap.ScanResult == nil {
		t.Fatal("ScanResult = nil, want stored result")
	}
	if snap.ScanResult.RiskLevel != "high" {
		t.Fatalf("RiskLevel = %q, want %q", snap.ScanResult.RiskLevel, "high")
	}
	if got := len(snap.ScanResult.ExtractedPermissions); got != 2 {
		t.Fatalf("permission count = %d, want 2", got)
	}
	if got := len(snap.ScanResult.Explanations); got != 1 {
		t.Fatalf("warning count = %d, want 1", got)
	}
}

func TestRunScan_SuccessReplacesPriorResult(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.SetApps(inventory())
	state.SetSelectedApp("Maps")
	state.SetScanResult(&scanapi.ScanResult{AppName: "Camera", RiskScore: 72, RiskLevel: "high"})

	client := &fakeScanClient{scanResult: scanapi.ScanResult{AppName: "Maps", RiskScore: 5, RiskLevel: "low"}}
	ctrl := NewController(state, client, testLogger())

	if _, err := ctrl.RunScan(context.Background()); err != nil {
		t.Fatalf("RunScan() error = %v", err)
	}

	snap := state.Snapshot()
	if snap.ScanResult == nil || snap.ScanResult.AppName != "Maps" {
		t.Fatalf("ScanResult = %v, want Maps result", snap.ScanResult)
	}
	if snap.ScanResult.RiskScore != 5 {
		t.Fatalf("RiskScore = %d, want 5", snap.ScanResult.RiskScore)
	}
}

func TestRunScan_TransportFailureLeavesResultAbsent(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.SetApps(inventory())
	state.SetSelectedApp("Camera")
	state.SetScanResult(&scanapi.ScanResult{AppName: "Camera", RiskLevel: "high"})

	transportErr := errors.New("connection refused")
	client := &fakeScanClient{scanErr: transportErr}
	ctrl := NewController(state, client, testLogger())

	_, err := ctrl.RunScan(context.Background())
	if !errors.Is(err, transportErr) {
		t.Fatalf("RunScan() error = %v, want wrapped transport error", err)
	}

	snap := state.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true after failure, want false")
	}
	if snap.ScanResult != nil {
		t.Fatalf("ScanResult = %v after failure, want nil", snap.ScanResult)
	}
}

func TestLoadInventory_PopulatesBothFields(t *testing.T) {
	t.Parallel()

	state := NewState()
	client := &fakeScanClient{
		apps:       inventory(),
		categories: map[string]scanapi.PermissionCategory{"SYSTEM": {Name: "System Permissions"}},
	}
	ctrl := NewController(state, client, testLogger())

	ctrl.LoadInventory(context.Background())

	snap := state.Snapshot()
	if len(snap.Apps) != 2 {
		t.Fatalf("Apps = %v, want 2 entries", snap.Apps)
	}
	if len(snap.Categories) != 1 {
		t.Fatalf("Categories = %v, want 1 entry", snap.Categories)
	}
}

func TestLoadInventory_PartialFailureDegrades(t *testing.T) {
	t.Parallel()

	state := NewState()
	client := &fakeScanClient{
		appsErr:    errors.New("boom"),
		categories: map[string]scanapi.PermissionCategory{"SYSTEM": {Name: "System Permissions"}},
	}
	ctrl := NewController(state, client, testLogger())

	ctrl.LoadInventory(context.Background())

	snap := state.Snapshot()
	if len(snap.Apps) != 0 {
		t.Fatalf("Apps = %v, want empty", snap.Apps)
	}
	if len(snap.Categories) != 1 {
		t.Fatalf("Categories = %v, want populated despite apps failure", snap.Categories)
	}
}
