package env

import (
	"strings"
)

// FromEnviron parses a slice of "KEY=value" variable specifications, in the
// shape produced by os.Environ, into a snapshot. Specifications with empty
// variable names (i.e. lines starting with '=') are ignored: on Windows
// these are vestigial MS-DOS compatibility hacks (e.g. =::=::\) that only
// surface through GetEnvironmentStrings, and on POSIX they aren't valid in
// the first place. A specification without any '=' fails with
// *InvalidArgumentError. If a key occurs more than once, the last value
// wins.
func FromEnviron(environ []string) (*Env, error) {
	vars, err := parse(environ)
	if err != nil {
		return nil, err
	} else if len(vars) == 0 {
		return empty, nil
	}
	return &Env{vars: vars}, nil
}

// FromBlock parses a newline-separated variable block of the form
// VAR1=value1[\r]\nVAR2=value2[\r]\n... into a snapshot. It converts line
// endings and trims surrounding whitespace before parsing, so it can digest
// the output of env or set as captured on any platform.
func FromBlock(block string) (*Env, error) {
	block = strings.ReplaceAll(block, "\r\n", "\n")
	block = strings.TrimSpace(block)
	if block == "" {
		return empty, nil
	}
	return FromEnviron(strings.Split(block, "\n"))
}

// parse converts variable specifications into a map, ignoring entries with
// empty variable names and rejecting entries without a separator.
func parse(environ []string) (map[string]string, error) {
	result := make(map[string]string, len(environ))
	for _, specification := range environ {
		if len(specification) > 0 && specification[0] == '=' {
			continue
		}
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 {
			return nil, &InvalidArgumentError{
				Reason: "invalid variable specification: " + specification,
			}
		}
		result[keyValue[0]] = keyValue[1]
	}
	return result, nil
}
