// Package riskengine computes a deterministic, explainable risk score from
// an app's declared permissions. This is cumulative scoring based on
// permission semantics, not anomaly detection.
package riskengine

import (
	"fmt"
	"sort"

	"github.com/safedroid/safedroid/internal/appcatalog"
)

// Risk levels produced by Calculate.
const (
	LevelLow    = "LOW"
	LevelMedium = "MEDIUM"
	LevelHigh   = "HIGH"
)

const defaultWeight = 2

var permissionWeights = map[string]int{
	"INTERNET":   1,
	"CAMERA":     3,
	"MICROPHONE": 4,
	"LOCATION":   4,
	"CONTACTS":   5,
	"SMS":        8,
	"CALL_LOG":   9,
}

// normalPermissions are expected of social media apps and carry no warning.
var normalPermissions = map[string]struct{}{
	"INTERNET":   {},
	"CAMERA":     {},
	"MICROPHONE": {},
}

// Assessment is the outcome of scoring one permission set.
type Assessment struct {
	Score        int
	Level        string
	Explanations []string
}

// Calculate scores the given permissions. Each permission contributes its
// weight to the score; permissions outside the normal set also contribute a
// human-readable warning.
func Calculate(permissions []string) Assessment {
	var out Assessment
	for _, perm := range permissions {
		weight, ok := permissionWeights[perm]
		if !ok {
			weight = defaultWeight
		}
		out.Score += weight

		if _, normal := normalPermissions[perm]; !normal {
			out.Explanations = append(out.Explanations,
				fmt.Sprintf("%s is considered sensitive for social media apps (+%d)", perm, weight))
		}
	}

	switch {
	case out.Score < 8:
		out.Level = LevelLow
	case out.Score < 15:
		out.Level = LevelMedium
	default:
		out.Level = LevelHigh
	}
	return out
}

// DangerousCombinations returns the correlated permission pairs that are
// both present in the given set, rendered "A + B", deduplicated and sorted.
func DangerousCombinations(permissions []string) []string {
	held := make(map[string]struct{}, len(permissions))
	for _, perm := range permissions {
		held[perm] = struct{}{}
	}

	seen := make(map[string]struct{})
	for perm := range held {
		for _, other := range appcatalog.Correlated(perm) {
			if _, ok := held[other]; !ok {
				continue
			}
			first, second := perm, other
			if second < first {
				first, second = second, first
			}
			seen[first+" + "+second] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for pair := range seen {
		out = append(out, pair)
	}
	sort.Strings(out)
	return out
}
