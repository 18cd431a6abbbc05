package env

import (
	"os"
	"path/filepath"
	"testing"
)

// TestJSONRoundTrip tests saving and reloading a snapshot as JSON.
func TestJSONRoundTrip(t *testing.T) {
	// Save a snapshot.
	path := filepath.Join(t.TempDir(), "environment.json")
	original := FromMap(map[string]string{"A": "1", "B": "2"})
	if err := original.SaveJSON(path); err != nil {
		t.Fatal("unable to save snapshot:", err)
	}

	// Reload and compare.
	reloaded, err := LoadJSON(path)
	if err != nil {
		t.Fatal("unable to reload snapshot:", err)
	}
	if !reloaded.Equal(original) {
		t.Error("reloaded snapshot does not match original:", reloaded)
	}
}

// TestJSONEmpty tests that an empty snapshot encodes as an empty object and
// decodes back to empty.
func TestJSONEmpty(t *testing.T) {
	data, err := Empty().MarshalJSON()
	if err != nil {
		t.Fatal("unable to marshal empty snapshot:", err)
	}
	if string(data) != "{}" {
		t.Error("encoded empty snapshot does not match expected:", string(data))
	}
	decoded := &Env{}
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatal("unable to unmarshal empty snapshot:", err)
	}
	if decoded.Len() != 0 {
		t.Error("decoded snapshot not empty")
	}
}

// TestYAMLRoundTrip tests saving and reloading a snapshot as YAML.
func TestYAMLRoundTrip(t *testing.T) {
	// Save a snapshot.
	path := filepath.Join(t.TempDir(), "environment.yaml")
	original := FromMap(map[string]string{"A": "1", "B": "multi word value"})
	if err := original.SaveYAML(path); err != nil {
		t.Fatal("unable to save snapshot:", err)
	}

	// Reload and compare.
	reloaded, err := LoadYAML(path)
	if err != nil {
		t.Fatal("unable to reload snapshot:", err)
	}
	if !reloaded.Equal(original) {
		t.Error("reloaded snapshot does not match original:", reloaded)
	}
}

// TestLoadJSONNonExistent tests that loading from a missing file surfaces
// an error that os.IsNotExist recognizes.
func TestLoadJSONNonExistent(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("loading didn't fail for non-existent file")
	}
	if !os.IsNotExist(err) {
		t.Error("error not recognized by os.IsNotExist:", err)
	}
}
