package env

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Fleshgrinder/go-env/pkg/comparison"
)

// Env is an immutable snapshot of environment variables. Once constructed,
// its contents never change; every combining or editing operation returns a
// new snapshot and leaves the receiver untouched. The internal storage is
// never exposed, so a snapshot is safe for unsynchronized concurrent reads.
//
// A nil *Env is a valid snapshot without any variables.
type Env struct {
	// vars maps variable names to values. It is private and never handed
	// out; accessors that surface the mapping return defensive copies.
	vars map[string]string
}

// empty is the canonical snapshot without any variables. Operations that
// produce an empty result return it rather than allocating.
var empty = &Env{}

// Empty returns a snapshot without any variables.
func Empty() *Env {
	return empty
}

// Of returns a snapshot with a single variable.
func Of(key, value string) *Env {
	return &Env{vars: map[string]string{key: value}}
}

// FromMap returns a snapshot with the contents of the provided map. The map
// is copied, so later modifications to it don't affect the snapshot.
func FromMap(vars map[string]string) *Env {
	if len(vars) == 0 {
		return empty
	}
	snapshot := make(map[string]string, len(vars))
	for key, value := range vars {
		snapshot[key] = value
	}
	return &Env{vars: snapshot}
}

// FromPairs returns a snapshot built from a flat sequence of alternating
// keys and values. It fails with *InvalidArgumentError if the sequence
// length is odd (i.e. the final key has no value). If a key occurs more than
// once, the last value wins.
func FromPairs(pairs ...string) (*Env, error) {
	if len(pairs)%2 != 0 {
		return nil, &InvalidArgumentError{
			Reason: "variable count must be even, got: " + strconv.Itoa(len(pairs)),
		}
	} else if len(pairs) == 0 {
		return empty, nil
	}
	vars := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		vars[pairs[i]] = pairs[i+1]
	}
	return &Env{vars: vars}, nil
}

// Build allocates a scratch map (pre-sized if capacity is positive), hands
// it to populate, and freezes the result into a snapshot. The freeze is a
// true copy, so a scratch reference retained by populate can't alter the
// returned snapshot. The scratch map must not be shared across Goroutines
// while populate runs.
func Build(capacity int, populate func(vars map[string]string)) *Env {
	var scratch map[string]string
	if capacity > 0 {
		scratch = make(map[string]string, capacity)
	} else {
		scratch = make(map[string]string)
	}
	populate(scratch)
	return FromMap(scratch)
}

// Len returns the number of variables in the snapshot.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vars)
}

// Contains checks whether the snapshot has a variable with the given name.
func (e *Env) Contains(key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// Get returns the value of the named variable. It fails with
// *MissingKeyError if the variable is absent.
func (e *Env) Get(key string) (string, error) {
	value, ok := e.Lookup(key)
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	return value, nil
}

// GetMessage behaves like Get, but the failure message is produced by the
// provided callback. The callback is only invoked if the variable is
// actually absent, so it may be arbitrarily expensive.
func (e *Env) GetMessage(key string, message func(key string) string) (string, error) {
	value, ok := e.Lookup(key)
	if !ok {
		return "", &MissingKeyError{Key: key, message: message(key)}
	}
	return value, nil
}

// GetOrDefault returns the value of the named variable, or fallback if the
// variable is absent.
func (e *Env) GetOrDefault(key, fallback string) string {
	value, ok := e.Lookup(key)
	if !ok {
		return fallback
	}
	return value
}

// Lookup returns the value of the named variable and whether it was present.
func (e *Env) Lookup(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	value, ok := e.vars[key]
	return value, ok
}

// Map returns a copy of all variables in the snapshot. The returned map is
// never nil and is owned by the caller.
func (e *Env) Map() map[string]string {
	result := make(map[string]string, e.Len())
	for key, value := range e.raw() {
		result[key] = value
	}
	return result
}

// Union overlays other onto the snapshot and returns the combination. On
// name collision, other's value wins. If either side is empty, the
// non-empty side is returned as-is.
func (e *Env) Union(other *Env) *Env {
	return e.union(other.raw(), other)
}

// UnionMap overlays the provided map onto the snapshot. On name collision,
// the map's value wins.
func (e *Env) UnionMap(vars map[string]string) *Env {
	return e.union(vars, nil)
}

// union implements Union and UnionMap. If frozen is non-nil it is an
// existing snapshot of vars that may be returned directly.
func (e *Env) union(vars map[string]string, frozen *Env) *Env {
	if len(vars) == 0 {
		return e.orEmpty()
	} else if e.Len() == 0 {
		if frozen != nil {
			return frozen
		}
		return FromMap(vars)
	}

	// Overlay, letting the right-hand side win.
	merged := make(map[string]string, len(e.vars)+len(vars))
	for key, value := range e.vars {
		merged[key] = value
	}
	for key, value := range vars {
		merged[key] = value
	}
	return &Env{vars: merged}
}

// With returns a snapshot identical to the receiver except that the given
// variable is added or overwritten.
func (e *Env) With(key, value string) *Env {
	if e.Len() == 0 {
		return Of(key, value)
	}
	result := make(map[string]string, len(e.vars)+1)
	for k, v := range e.vars {
		result[k] = v
	}
	result[key] = value
	return &Env{vars: result}
}

// Difference returns a snapshot with every variable whose name occurs in
// other removed. Names in other that the receiver doesn't have are ignored.
func (e *Env) Difference(other *Env) *Env {
	if other.Len() == 0 {
		return e.orEmpty()
	}
	return e.without(func(key string) bool {
		return other.Contains(key)
	})
}

// Without returns a snapshot with the named variables removed. Names the
// receiver doesn't have are ignored; an empty name list returns the
// receiver unchanged.
func (e *Env) Without(keys ...string) *Env {
	if len(keys) == 0 {
		return e.orEmpty()
	}
	remove := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		remove[key] = struct{}{}
	}
	return e.without(func(key string) bool {
		_, ok := remove[key]
		return ok
	})
}

// without returns a snapshot with every variable matched by remove dropped.
func (e *Env) without(remove func(key string) bool) *Env {
	result := make(map[string]string, e.Len())
	for key, value := range e.raw() {
		if !remove(key) {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return empty
	}
	return &Env{vars: result}
}

// Copy allocates a mutable scratch copy of the snapshot's variables, hands
// it to edit for arbitrary additions, removals, and overwrites, and freezes
// the result into a new snapshot. The receiver is untouched, and a scratch
// reference retained by edit can't alter the returned snapshot.
func (e *Env) Copy(edit func(vars map[string]string)) *Env {
	scratch := e.Map()
	edit(scratch)
	return FromMap(scratch)
}

// Equal checks whether two snapshots hold exactly the same variables. It is
// consistent with Hash and treats nil as empty.
func (e *Env) Equal(other *Env) bool {
	return e == other || comparison.StringMapsEqual(e.raw(), other.raw())
}

// String renders the snapshot's variables deterministically (names sorted)
// for diagnostic purposes. The exact format is not a compatibility contract.
func (e *Env) String() string {
	keys := make([]string, 0, e.Len())
	for key := range e.raw() {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString("Env{")
	for k, key := range keys {
		if k > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(key)
		builder.WriteByte('=')
		builder.WriteString(e.vars[key])
	}
	builder.WriteByte('}')
	return builder.String()
}

// raw returns the internal storage, tolerating nil receivers. Callers must
// not mutate or expose the result.
func (e *Env) raw() map[string]string {
	if e == nil {
		return nil
	}
	return e.vars
}

// orEmpty normalizes nil receivers for operations that return the receiver
// unchanged.
func (e *Env) orEmpty() *Env {
	if e == nil {
		return empty
	}
	return e
}
