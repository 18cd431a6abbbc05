package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// FromDotEnv loads a "dotenv" environment variable file from disk into a
// snapshot. Interpolation is enabled by default for the contents of the
// file, matching what Docker Compose does when loading environment variable
// files. If the target file doesn't exist, then it is treated as empty and
// the resulting snapshot has no variables.
func FromDotEnv(path string) (*Env, error) {
	vars, err := godotenv.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to load environment file (%s): %w", path, err)
	}
	return FromMap(vars), nil
}

// SaveDotEnv writes the snapshot to disk in dotenv format. Variables are
// written in sorted order, so the output is deterministic.
func (e *Env) SaveDotEnv(path string) error {
	if err := godotenv.Write(e.Map(), path); err != nil {
		return fmt.Errorf("unable to write environment file (%s): %w", path, err)
	}
	return nil
}
