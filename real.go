package envwrap

import "os"

// RealEnvironment is the real process environment.  Every operation is a
// direct pass-through to the corresponding os package function.
//
// The process environment is process-global: every RealEnvironment value
// observes the same variables, and Setenv is visible to the whole process
// and to any subprocess spawned afterward.  Constructing multiple values
// creates no isolation; use FakeEnvironment in tests instead.
//
// Concurrent calls through this type are serialized by the Go runtime, but
// some platforms expose the underlying native environment APIs as inherently
// non-thread-safe.  Native-level environment access outside this capability
// (for example through cgo) is not synchronized with calls made here.
type RealEnvironment struct{}

var _ Environment = RealEnvironment{}

// Setenv sets key to value in the process environment.  It panics if the OS
// rejects the pair: an empty key, a key containing '=' or a NUL byte, or a
// value containing a NUL byte.
func (RealEnvironment) Setenv(key, value string) {
	if err := os.Setenv(key, value); err != nil {
		panic(err)
	}
}

func (RealEnvironment) Var(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", ErrNotPresent
	}
	return checkUnicode(val)
}

func (RealEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Unsetenv removes key from the process environment.  Removing a key that is
// not set is a no-op.  It panics if the OS rejects the key, under the same
// conditions as Setenv.
func (RealEnvironment) Unsetenv(key string) {
	if err := os.Unsetenv(key); err != nil {
		panic(err)
	}
}
