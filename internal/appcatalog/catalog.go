// Package appcatalog holds the extracted app permission inventory and the
// permission taxonomy the scan service serves. The data set is static for
// the lifetime of the process.
package appcatalog

import (
	"sort"
	"strings"
)

// PermissionInfo describes a single Android-style permission.
type PermissionInfo struct {
	Category      string   `json:"category"`
	RiskLevel     string   `json:"risk_level"`
	Severity      int      `json:"severity"`
	Description   string   `json:"description"`
	PrivacyImpact string   `json:"privacy_impact"`
	CanAccess     []string `json:"can_access"`
	Dangerous     bool     `json:"dangerous"`
}

// Category groups related permissions for display.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// App is one entry in the extracted metadata database.
type App struct {
	Name        string
	Publisher   string
	Permissions []string
}

var permissionMetadata = map[string]PermissionInfo{
	"INTERNET": {
		Category:      "SYSTEM",
		RiskLevel:     "NORMAL",
		Severity:      1,
		Description:   "Allows app to access the internet",
		PrivacyImpact: "LOW",
		CanAccess:     []string{"Network data", "Online services"},
	},
	"CAMERA": {
		Category:      "HARDWARE",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Access to device camera",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Video recordings", "Photos", "Visual data"},
		Dangerous:     true,
	},
	"MICROPHONE": {
		Category:      "HARDWARE",
		RiskLevel:     "DANGEROUS",
		Severity:      9,
		Description:   "Access to device microphone",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Audio recordings", "Voice data", "Conversations"},
		Dangerous:     true,
	},
	"READ_EXTERNAL_STORAGE": {
		Category:      "STORAGE",
		RiskLevel:     "DANGEROUS",
		Severity:      7,
		Description:   "Read access to device storage",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Photos", "Videos", "Documents", "Personal files"},
		Dangerous:     true,
	},
	"WRITE_EXTERNAL_STORAGE": {
		Category:      "STORAGE",
		RiskLevel:     "DANGEROUS",
		Severity:      7,
		Description:   "Write access to device storage",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Modify files", "Create backups"},
		Dangerous:     true,
	},
	"LOCATION": {
		Category:      "LOCATION",
		RiskLevel:     "DANGEROUS",
		Severity:      9,
		Description:   "Precise location tracking",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"GPS coordinates", "Real-time location", "Location history"},
		Dangerous:     true,
	},
	"ACCESS_FINE_LOCATION": {
		Category:      "LOCATION",
		RiskLevel:     "DANGEROUS",
		Severity:      9,
		Description:   "Precise GPS location access",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"GPS data", "Exact coordinates"},
		Dangerous:     true,
	},
	"ACCESS_COARSE_LOCATION": {
		Category:      "LOCATION",
		RiskLevel:     "DANGEROUS",
		Severity:      6,
		Description:   "Approximate location access (network-based)",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Approximate location", "Network-based location"},
		Dangerous:     true,
	},
	"CONTACTS": {
		Category:      "PERSONAL_DATA",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Access to device contacts",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Contact list", "Phone numbers", "Email addresses", "Contact details"},
		Dangerous:     true,
	},
	"READ_CONTACTS": {
		Category:      "PERSONAL_DATA",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Read contact information",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Contact data"},
		Dangerous:     true,
	},
	"WRITE_CONTACTS": {
		Category:      "PERSONAL_DATA",
		RiskLevel:     "DANGEROUS",
		Severity:      7,
		Description:   "Modify contact information",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Add/modify contacts"},
		Dangerous:     true,
	},
	"SMS": {
		Category:      "COMMUNICATION",
		RiskLevel:     "DANGEROUS",
		Severity:      9,
		Description:   "Send and receive SMS messages",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"SMS content", "Message history"},
		Dangerous:     true,
	},
	"READ_SMS": {
		Category:      "COMMUNICATION",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Read SMS messages",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"SMS data"},
		Dangerous:     true,
	},
	"SEND_SMS": {
		Category:      "COMMUNICATION",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Send SMS messages",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Send messages"},
		Dangerous:     true,
	},
	"CALL_LOG": {
		Category:      "COMMUNICATION",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Access call history",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Call history", "Call duration", "Phone numbers called"},
		Dangerous:     true,
	},
	"READ_CALL_LOG": {
		Category:      "COMMUNICATION",
		RiskLevel:     "DANGEROUS",
		Severity:      8,
		Description:   "Read call logs",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Call records"},
		Dangerous:     true,
	},
	"WRITE_CALL_LOG": {
		Category:      "COMMUNICATION",
		RiskLevel:     "DANGEROUS",
		Severity:      7,
		Description:   "Modify call logs",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Modify call records"},
		Dangerous:     true,
	},
	"PHONE_STATE": {
		Category:      "PHONE_INFO",
		RiskLevel:     "DANGEROUS",
		Severity:      6,
		Description:   "Access phone state and identity",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Phone number", "IMEI", "Device ID"},
		Dangerous:     true,
	},
	"CALL_PHONE": {
		Category:      "PHONE_INFO",
		RiskLevel:     "DANGEROUS",
		Severity:      7,
		Description:   "Make phone calls",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Initiate calls"},
		Dangerous:     true,
	},
	"READ_CALENDAR": {
		Category:      "PERSONAL_DATA",
		RiskLevel:     "DANGEROUS",
		Severity:      7,
		Description:   "Read calendar events",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Calendar events", "Meeting details", "Schedule"},
		Dangerous:     true,
	},
	"WRITE_CALENDAR": {
		Category:      "PERSONAL_DATA",
		RiskLevel:     "DANGEROUS",
		Severity:      6,
		Description:   "Create/modify calendar events",
		PrivacyImpact: "MEDIUM",
		CanAccess:     []string{"Add/modify events"},
		Dangerous:     true,
	},
	"GET_ACCOUNTS": {
		Category:      "ACCOUNT",
		RiskLevel:     "DANGEROUS",
		Severity:      6,
		Description:   "Access device accounts",
		PrivacyImpact: "HIGH",
		CanAccess:     []string{"Account information", "Emails", "Usernames"},
		Dangerous:     true,
	},
	"SENSORS": {
		Category:      "HARDWARE",
		RiskLevel:     "DANGEROUS",
		Severity:      6,
		Description:   "Access motion and sensor data",
		PrivacyImpact: "MEDIUM",
		CanAccess:     []string{"Accelerometer", "Gyroscope", "Step counter"},
		Dangerous:     true,
	},
	"DEVICE_ADMIN": {
		Category:      "SYSTEM",
		RiskLevel:     "CRITICAL",
		Severity:      10,
		Description:   "Device administration capabilities",
		PrivacyImpact: "CRITICAL",
		CanAccess:     []string{"Full device control", "Password reset", "Device lock"},
		Dangerous:     true,
	},
}

var categories = map[string]Category{
	"SYSTEM":        {Name: "System Permissions", Description: "Core system-level access"},
	"HARDWARE":      {Name: "Hardware Access", Description: "Physical device sensors and hardware"},
	"STORAGE":       {Name: "Storage Access", Description: "File system and storage access"},
	"LOCATION":      {Name: "Location Tracking", Description: "GPS and location services"},
	"PERSONAL_DATA": {Name: "Personal Data", Description: "Private user information"},
	"COMMUNICATION": {Name: "Communication", Description: "Calls, messages, and communications"},
	"PHONE_INFO":    {Name: "Phone Information", Description: "Device phone information"},
	"ACCOUNT":       {Name: "Account Information", Description: "User account data"},
}

var apps = map[string]App{
	"Instagram": {
		Name:        "Instagram",
		Publisher:   "meta",
		Permissions: []string{"INTERNET", "CAMERA", "MICROPHONE", "LOCATION"},
	},
	"WhatsApp": {
		Name:        "WhatsApp",
		Publisher:   "whatsapp",
		Permissions: []string{"INTERNET", "CAMERA", "MICROPHONE", "CONTACTS"},
	},
	"FakeApp": {
		Name:        "FakeApp",
		Publisher:   "unknown",
		Permissions: []string{"INTERNET", "CAMERA", "MICROPHONE", "CONTACTS", "SMS", "CALL_LOG"},
	},
	"TikTok": {
		Name:        "TikTok",
		Publisher:   "bytedance",
		Permissions: []string{"INTERNET", "CAMERA", "MICROPHONE", "LOCATION", "READ_EXTERNAL_STORAGE"},
	},
	"Gmail": {
		Name:        "Gmail",
		Publisher:   "google",
		Permissions: []string{"INTERNET", "GET_ACCOUNTS", "READ_CONTACTS"},
	},
}

// correlations lists permission pairs whose combination raises risk.
var correlations = map[string][]string{
	"SMS":          {"CALL_LOG", "CONTACTS"},
	"CALL_LOG":     {"SMS", "MICROPHONE"},
	"CAMERA":       {"CONTACTS", "LOCATION"},
	"MICROPHONE":   {"CALL_LOG", "CONTACTS"},
	"CONTACTS":     {"SMS", "CALL_LOG", "LOCATION"},
	"LOCATION":     {"CAMERA", "MICROPHONE"},
	"DEVICE_ADMIN": {"SMS", "CALL_LOG", "CONTACTS"},
	"GET_ACCOUNTS": {"CONTACTS", "READ_CALENDAR"},
}

var trustedPublishers = map[string]struct{}{
	"google":    {},
	"apple":     {},
	"microsoft": {},
	"meta":      {},
	"whatsapp":  {},
}

// Apps returns the app inventory sorted by name.
func Apps() []App {
	out := make([]App, 0, len(apps))
	for _, app := range apps {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the app entry for name, if present.
func Lookup(name string) (App, bool) {
	app, ok := apps[name]
	if !ok {
		return App{}, false
	}
	app.Permissions = append([]string(nil), app.Permissions...)
	return app, true
}

// Categories returns the permission category taxonomy.
func Categories() map[string]Category {
	out := make(map[string]Category, len(categories))
	for key, cat := range categories {
		out[key] = cat
	}
	return out
}

// Permissions returns the metadata for every known permission.
func Permissions() map[string]PermissionInfo {
	out := make(map[string]PermissionInfo, len(permissionMetadata))
	for key, info := range permissionMetadata {
		info.CanAccess = append([]string(nil), info.CanAccess...)
		out[key] = info
	}
	return out
}

// Correlated returns the permissions whose combination with perm raises risk.
func Correlated(perm string) []string {
	return append([]string(nil), correlations[perm]...)
}

// TrustedPublisher reports whether publisher is on the trusted list.
func TrustedPublisher(publisher string) bool {
	_, ok := trustedPublishers[strings.ToLower(strings.TrimSpace(publisher))]
	return ok
}
