package env

// MissingKeyError indicates that a required environment variable was absent
// from a snapshot. Key is the name of the variable that was requested.
type MissingKeyError struct {
	// Key is the name of the missing variable.
	Key string
	// message is a caller-supplied description, if any.
	message string
}

// Error implements error.
func (e *MissingKeyError) Error() string {
	if e.message != "" {
		return e.message
	}
	return "missing required environment variable " + e.Key
}

// InvalidArgumentError indicates that a constructor was invoked with
// arguments it can't turn into a snapshot, such as an odd-length pair
// sequence or a malformed variable specification.
type InvalidArgumentError struct {
	// Reason describes what was wrong with the arguments.
	Reason string
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	return e.Reason
}
