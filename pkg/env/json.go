package env

import (
	"encoding/json"
)

// MarshalJSON encodes the snapshot as a JSON object of strings. An empty
// snapshot encodes as {}.
func (e *Env) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Map())
}

// UnmarshalJSON decodes a JSON object of strings into the snapshot. It
// replaces any previous contents and is the only operation that writes to
// an existing Env value; it must only be used to populate a snapshot that
// hasn't been shared yet.
func (e *Env) UnmarshalJSON(data []byte) error {
	var vars map[string]string
	if err := json.Unmarshal(data, &vars); err != nil {
		return err
	}
	e.vars = FromMap(vars).raw()
	return nil
}
