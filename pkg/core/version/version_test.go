package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Timex", Timex},
		{"CLI", CLI},
		{"Browser", Browser},
		{"Catalog", Catalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"timex", Timex},
		{"cli", CLI},
		{"browser", Browser},
		{"catalog", Catalog},
		{"unknown", Platform},
		{"", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.name); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
