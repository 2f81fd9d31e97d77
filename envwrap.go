// Package envwrap wraps process environment-variable access behind a small
// interface so it can be replaced with an in-memory fake during testing.
//
// Code that reads the environment through os.Getenv directly is fragile to
// test: the process environment is global, so state leaks between tests and
// tests cannot run with a private set of variables.  Instead, write code
// against the Environment interface and inject RealEnvironment in production
// and a fresh FakeEnvironment in each test.
package envwrap

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Environment is a process's set of environment variables.
//
// RealEnvironment operates on the real process environment; FakeEnvironment
// operates on a private in-memory map.  Both honor the same contracts, so
// callers can treat them interchangeably.
type Environment interface {
	// Setenv sets the variable key to value, replacing any previous value.
	Setenv(key, value string)

	// Var returns the value of key, checking that it is valid UTF-8.
	// It returns ErrNotPresent if key is not set, and a *NotUnicodeError
	// carrying the raw value if the value is not valid UTF-8.  If UTF-8
	// validation is not needed, use LookupEnv.
	Var(key string) (string, error)

	// LookupEnv returns the raw value of key and whether it is set.  The
	// value is not checked for valid UTF-8; if that check is needed, use
	// Var instead.
	LookupEnv(key string) (string, bool)

	// Unsetenv removes the variable key.  Removing a variable that is not
	// set is a no-op.
	Unsetenv(key string)
}

// ErrNotPresent is returned by Var when the variable is not set.
var ErrNotPresent = errors.New("environment variable not present")

// NotUnicodeError is returned by Var when the variable is set but its value
// is not valid UTF-8.  Raw holds the value so callers can recover it without
// a second lookup.
type NotUnicodeError struct {
	Raw string
}

func (e *NotUnicodeError) Error() string {
	return fmt.Sprintf("environment variable value is not valid UTF-8: %q", e.Raw)
}

func checkUnicode(val string) (string, error) {
	if !utf8.ValidString(val) {
		return "", &NotUnicodeError{Raw: val}
	}
	return val, nil
}
