package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	prev := Version
	defer func() { Version = prev }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "1.2.3"
	if got := VersionOrDefault("dev"); got != "1.2.3" {
		t.Fatalf("expected injected version, got %q", got)
	}
}
