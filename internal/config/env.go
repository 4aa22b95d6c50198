package config

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// EnvFlags names the environment variable holding default command-line
// flags, in the spirit of GOFLAGS.
const EnvFlags = "WINVOL_FLAGS"

// Lookup reads one environment variable.
type Lookup func(key string) string

// DefaultFlags splits the WINVOL_FLAGS value using shell quoting rules.
// An unset or blank value yields no flags.
func DefaultFlags(getenv Lookup) ([]string, error) {
	if getenv == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(getenv(EnvFlags))
	if raw == "" {
		return nil, nil
	}
	flags, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", EnvFlags, err)
	}
	return flags, nil
}

// Args prepends the default flags from the environment to args.
func Args(getenv Lookup, args []string) ([]string, error) {
	defaults, err := DefaultFlags(getenv)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(defaults)+len(args))
	out = append(out, defaults...)
	return append(out, args...), nil
}
