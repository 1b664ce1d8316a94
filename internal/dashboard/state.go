// Package dashboard holds the dashboard session state and the scan workflow
// that drives it.
package dashboard

import (
	"sync"

	"github.com/safedroid/safedroid/internal/scanapi"
)

// Tab identifies one dashboard section.
type Tab string

const (
	TabScan        Tab = "scan"
	TabAnalyze     Tab = "analyze"
	TabThreats     Tab = "threats"
	TabCompare     Tab = "compare"
	TabPermissions Tab = "permissions"
)

// Tabs returns the recognized tabs in display order.
func Tabs() []Tab {
	return []Tab{TabScan, TabAnalyze, TabThreats, TabCompare, TabPermissions}
}

// KnownTab reports whether tab is one of the recognized sections.
// Unrecognized values still render, as a generic placeholder panel.
func KnownTab(tab Tab) bool {
	switch tab {
	case TabScan, TabAnalyze, TabThreats, TabCompare, TabPermissions:
		return true
	default:
		return false
	}
}

// Snapshot is a consistent, render-safe copy of the dashboard state.
type Snapshot struct {
	ActiveTab   Tab
	Apps        []scanapi.Application
	Categories  map[string]scanapi.PermissionCategory
	SelectedApp string
	ScanResult  *scanapi.ScanResult
	Loading     bool
}

// HasApp reports whether name is present in the app inventory.
func (s Snapshot) HasApp(name string) bool {
	for _, app := range s.Apps {
		if app.Name == name {
			return true
		}
	}
	return false
}

// State is the single source of truth for the dashboard session. It is
// owned by the server instance that created it and safe for concurrent use.
type State struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewState returns a State showing the scan tab with an empty inventory.
func NewState() *State {
	return &State{snap: Snapshot{ActiveTab: TabScan}}
}

// SetActiveTab records the active tab. Values are stored as given; the
// renderer decides how unrecognized tabs are displayed.
func (s *State) SetActiveTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ActiveTab = tab
}

// SetApps replaces the application inventory.
func (s *State) SetApps(apps []scanapi.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Apps = append([]scanapi.Application(nil), apps...)
}

// SetCategories replaces the permission category taxonomy.
func (s *State) SetCategories(categories map[string]scanapi.PermissionCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]scanapi.PermissionCategory, len(categories))
	for key, cat := range categories {
		copied[key] = cat
	}
	s.snap.Categories = copied
}

// SetSelectedApp records the user's selection. Validation against the
// inventory is deferred to scan submission.
func (s *State) SetSelectedApp(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SelectedApp = name
}

// SetScanResult stores the latest scan result, or clears it when nil.
func (s *State) SetScanResult(result *scanapi.ScanResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if result == nil {
		s.snap.ScanResult = nil
		return
	}
	copied := *result
	s.snap.ScanResult = &copied
}

// SetLoading flags whether a scan is in flight.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Loading = loading
}

// Snapshot returns a copy of the current state for rendering.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	snap.Apps = append([]scanapi.Application(nil), s.snap.Apps...)
	if s.snap.Categories != nil {
		snap.Categories = make(map[string]scanapi.PermissionCategory, len(s.snap.Categories))
		for key, cat := range s.snap.Categories {
			snap.Categories[key] = cat
		}
	}
	if s.snap.ScanResult != nil {
		copied := *s.snap.ScanResult
		snap.ScanResult = &copied
	}
	return snap
}
