package viewmodels

type DashboardViewData struct {
	Layout      LayoutData
	Tabs        []TabViewData
	ActiveTab   string
	ScanTab     bool
	Apps        []AppOption
	HasApps     bool
	SelectedApp string
	Loading     bool
	Result      *ScanResultViewData
	// PlaceholderName labels the static panel shown for non-scan tabs.
	PlaceholderName string
}

type TabViewData struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

type AppOption struct {
	Name     string
	Selected bool
}

type ScanResultViewData struct {
	AppName               string
	RiskScore             int
	PermissionCount       int
	WarningCount          int
	RiskLevel             string
	Permissions           []string
	Explanations          []string
	DangerousCombinations []string
	TrustedPublisher      bool
}
