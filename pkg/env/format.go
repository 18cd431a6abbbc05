package env

import (
	"sort"
)

// Environ renders the snapshot as a slice of "KEY=value" variable
// specifications, in the shape expected by os/exec.Cmd.Env. The slice is
// sorted by specification, so the output is deterministic.
func (e *Env) Environ() []string {
	result := make([]string, 0, e.Len())
	for key, value := range e.raw() {
		result = append(result, key+"="+value)
	}
	sort.Strings(result)
	return result
}
