package envwrap

// FakeEnvironment is an in-memory process environment, suitable for testing.
// Each value owns a private map, so variables set on one FakeEnvironment are
// never visible to another, or to the real process environment.  Construct a
// new instance per test to keep tests from affecting each other.
//
// Unlike RealEnvironment, Setenv does not validate keys or values: a key
// containing '=' or a NUL byte is stored as given.
//
// FakeEnvironment is intended for single-owner use.  It does no internal
// locking; a caller sharing one instance across goroutines must synchronize
// access itself.
type FakeEnvironment struct {
	vars map[string]string
}

var _ Environment = &FakeEnvironment{}

// NewFakeEnvironment returns a FakeEnvironment with no variables set.  The
// zero value is also ready to use.
func NewFakeEnvironment() *FakeEnvironment {
	return &FakeEnvironment{vars: make(map[string]string)}
}

func (f *FakeEnvironment) Setenv(key, value string) {
	if f.vars == nil {
		f.vars = make(map[string]string)
	}
	f.vars[key] = value
}

func (f *FakeEnvironment) Var(key string) (string, error) {
	val, ok := f.vars[key]
	if !ok {
		return "", ErrNotPresent
	}
	return checkUnicode(val)
}

func (f *FakeEnvironment) LookupEnv(key string) (string, bool) {
	val, ok := f.vars[key]
	return val, ok
}

func (f *FakeEnvironment) Unsetenv(key string) {
	delete(f.vars, key)
}
