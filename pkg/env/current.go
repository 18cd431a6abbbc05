package env

import (
	"os"
	"strings"
)

// Process captures the current process' environment variables into a
// snapshot. It is impure: it reads the process environment table at call
// time, and changes to the process environment after the call are not
// reflected in the returned snapshot. Specifications with empty variable
// names (a Windows vestige) and malformed specifications are skipped, since
// a capture of ambient state shouldn't fail on platform quirks. Use
// FromEnviron(os.Environ()) for strict parsing.
func Process() *Env {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, specification := range environ {
		if len(specification) > 0 && specification[0] == '=' {
			continue
		}
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 {
			continue
		}
		vars[keyValue[0]] = keyValue[1]
	}
	if len(vars) == 0 {
		return empty
	}
	return &Env{vars: vars}
}
