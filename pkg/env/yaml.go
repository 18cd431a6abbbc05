package env

// MarshalYAML encodes the snapshot as a YAML mapping of strings.
func (e *Env) MarshalYAML() (interface{}, error) {
	return e.Map(), nil
}

// UnmarshalYAML decodes a YAML mapping of strings into the snapshot. The
// same sharing caveat as UnmarshalJSON applies.
func (e *Env) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var vars map[string]string
	if err := unmarshal(&vars); err != nil {
		return err
	}
	e.vars = FromMap(vars).raw()
	return nil
}
