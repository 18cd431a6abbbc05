package env

import (
	"github.com/Fleshgrinder/go-env/pkg/encoding"
)

// LoadJSON loads a snapshot from a JSON file on disk.
func LoadJSON(path string) (*Env, error) {
	result := &Env{}
	if err := encoding.LoadAndUnmarshalJSON(path, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveJSON writes the snapshot to a JSON file on disk. The write is atomic
// and the file is readable only by the owning user, since environments
// regularly carry credentials.
func (e *Env) SaveJSON(path string) error {
	return encoding.MarshalAndSaveJSON(path, e)
}

// LoadYAML loads a snapshot from a YAML file on disk.
func LoadYAML(path string) (*Env, error) {
	result := &Env{}
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveYAML writes the snapshot to a YAML file on disk with the same
// atomicity and permission behavior as SaveJSON.
func (e *Env) SaveYAML(path string) error {
	return encoding.MarshalAndSaveYAML(path, e)
}
