// Package defaults declares a contract whose method has a defaulted trailing parameter.
package defaults

// Greeter renders greetings.
type Greeter interface {
	// Greet returns a greeting. Callers that omit loud get a loud one.
	//
	//impfake:default loud=true
	Greet(loud bool) string
}

// Welcome greets with the default volume.
func Welcome(g interface{ GreetArity0() string }) string {
	return g.GreetArity0() + ", welcome"
}
