package buildinfo

import "testing"

func TestShortPrefersVersionThenCommit(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}
	Commit = "abc1234"
	if got := Short(); got != "abc1234" {
		t.Fatalf("Short() = %q, want commit", got)
	}
	Version = "v1.2.0"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short() = %q, want version", got)
	}
	if got := String(); got != "raytray v1.2.0 (commit abc1234, built "+Date+")" {
		t.Fatalf("String() = %q", got)
	}
}
