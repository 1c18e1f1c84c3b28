package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "bluekompass dev" {
		t.Errorf("GetFullVersion failed: expected %q, got %q", "bluekompass dev", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-01-02"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	expected := "bluekompass 1.2.0 (commit abc123, built 2026-01-02)"
	if got := GetFullVersion(); got != expected {
		t.Errorf("GetFullVersion failed: expected %q, got %q", expected, got)
	}
	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("GetVersion failed: expected %q, got %q", "1.2.0", got)
	}
}
