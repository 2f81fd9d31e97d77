package envwrap_test

import (
	"fmt"

	"github.com/cep21/envwrap"
)

const defaultConfigLocation = "/etc/my_app/service.conf"

// configLocation falls back to a default when the variable is not set.  In
// production it is called with RealEnvironment; tests hand it a
// FakeEnvironment with or without the variable set.
func configLocation(env envwrap.Environment) string {
	location, err := env.Var("CONFIG_LOCATION")
	if err != nil {
		return defaultConfigLocation
	}
	return location
}

func ExampleFakeEnvironment() {
	env := envwrap.NewFakeEnvironment()
	fmt.Println(configLocation(env))

	env.Setenv("CONFIG_LOCATION", "/a/user/specified/location")
	fmt.Println(configLocation(env))
	// Output:
	// /etc/my_app/service.conf
	// /a/user/specified/location
}

func ExampleRealEnvironment() {
	env := envwrap.RealEnvironment{}
	env.Setenv("EXAMPLE_GREETING", "hello")
	defer env.Unsetenv("EXAMPLE_GREETING")

	greeting, err := env.Var("EXAMPLE_GREETING")
	if err != nil {
		panic("never happens")
	}
	fmt.Println(greeting)
	// Output: hello
}

func ExampleEnvironment_LookupEnv() {
	env := envwrap.NewFakeEnvironment()
	env.Setenv("EMPTY_BUT_SET", "")

	_, ok := env.LookupEnv("EMPTY_BUT_SET")
	fmt.Println(ok)
	_, ok = env.LookupEnv("NEVER_SET")
	fmt.Println(ok)
	// Output:
	// true
	// false
}
