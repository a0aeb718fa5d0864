package container

import (
	"errors"
	"strconv"
)

var (
	// ErrNilBean is returned when a nil instance or candidate is registered.
	ErrNilBean = errors.New("container: nil bean")

	// ErrNotStruct is returned by Scan for a marked candidate that is not a
	// struct or pointer to struct.
	ErrNotStruct = errors.New("container: candidate is not a struct")
)

// UnknownScopeError is returned by Scan when a component marker carries a
// scope tag that is neither "singleton" nor "prototype".
type UnknownScopeError struct {
	Type  string
	Scope string
}

func (e UnknownScopeError) Error() string {
	// Example: container: main.Token: unknown scope "session"
	return "container: " + e.Type + ": unknown scope " + strconv.Quote(e.Scope)
}

// UnknownBeanError is the panic payload of MustResolve.
type UnknownBeanError struct{ Type string }

func (e UnknownBeanError) Error() string {
	// Example: container: no bean of type *main.Greeter
	return "container: no bean of type " + e.Type
}
