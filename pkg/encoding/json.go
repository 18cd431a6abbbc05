package encoding

import (
	"encoding/json"
)

// LoadAndUnmarshalJSON loads data from the specified path and decodes it
// into the specified value.
func LoadAndUnmarshalJSON(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		return json.Unmarshal(data, value)
	})
}

// MarshalAndSaveJSON encodes the specified value and writes it atomically to
// the specified path.
func MarshalAndSaveJSON(path string, value interface{}) error {
	return MarshalAndSave(path, func() ([]byte, error) {
		return json.Marshal(value)
	})
}
