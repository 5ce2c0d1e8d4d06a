package version

import "testing"

func TestString(t *testing.T) {
	old := [3]string{Version, GitCommit, BuildTime}
	defer func() { Version, GitCommit, BuildTime = old[0], old[1], old[2] }()

	Version, GitCommit, BuildTime = "1.2.0", "abc123", "2024-01-02T03:04:05Z"
	if got, want := String(), "1.2.0 (commit abc123, built 2024-01-02T03:04:05Z)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
