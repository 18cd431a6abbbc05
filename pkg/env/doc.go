// Package env provides an immutable snapshot type for environment
// variables.
//
// An Env is constructed once (from the process environment, a map, pairs,
// parsed KEY=value specifications, or a dotenv file) and never changes;
// combining operations such as Union, With, Difference, Without, and Copy
// return new snapshots. Because snapshots never mutate and never expose
// their internal storage, they are safe for unsynchronized concurrent
// reads.
package env
