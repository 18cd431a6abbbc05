package env

import (
	"os"
	"testing"
)

// TestProcess tests capturing the process environment.
func TestProcess(t *testing.T) {
	// We purposely don't compare against the length of os.Environ, because
	// the latter can contain (and on Windows usually does contain) variable
	// specifications with empty names, which Process ignores.

	// Ensure that every captured variable matches the Go runtime's view of
	// the environment.
	snapshot := Process()
	for key, value := range snapshot.Map() {
		if other := os.Getenv(key); value != other {
			t.Error("captured value doesn't match original:", value, "!=", other)
		}
	}
}

// TestProcessSnapshotIsolation tests that a capture doesn't reflect later
// changes to the process environment.
func TestProcessSnapshotIsolation(t *testing.T) {
	// Capture the environment before setting the variable.
	snapshot := Process()
	t.Setenv("GO_ENV_SNAPSHOT_ISOLATION_PROBE", "set-after-capture")
	if snapshot.Contains("GO_ENV_SNAPSHOT_ISOLATION_PROBE") {
		t.Error("snapshot reflects environment change made after capture")
	}

	// A fresh capture must see the variable.
	if value, err := Process().Get("GO_ENV_SNAPSHOT_ISOLATION_PROBE"); err != nil {
		t.Error("fresh capture is missing the variable:", err)
	} else if value != "set-after-capture" {
		t.Error("captured value doesn't match expected:", value)
	}
}
