package encoding

import (
	"gopkg.in/yaml.v2"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it
// into the specified value. Decoding is strict: unknown fields are an error.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		return yaml.UnmarshalStrict(data, value)
	})
}

// MarshalAndSaveYAML encodes the specified value and writes it atomically to
// the specified path.
func MarshalAndSaveYAML(path string, value interface{}) error {
	return MarshalAndSave(path, func() ([]byte, error) {
		return yaml.Marshal(value)
	})
}
