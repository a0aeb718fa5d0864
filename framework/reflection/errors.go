package reflection

import (
	"errors"
	"strconv"
)

var (
	// ErrNilTarget is returned when an operation is applied to a nil value.
	ErrNilTarget = errors.New("reflection: nil target")

	// ErrNotStruct is returned when a struct operation is applied to a
	// non-struct value.
	ErrNotStruct = errors.New("reflection: not a struct")

	// ErrNotPointer is returned when a mutating operation is applied to a
	// value that is not a pointer to struct.
	ErrNotPointer = errors.New("reflection: target must be a pointer to struct")
)

// FieldNotFoundError is returned when a named field does not exist on a type.
type FieldNotFoundError struct {
	Type  string
	Field string
}

func (e FieldNotFoundError) Error() string {
	// Example: reflection: main.Person has no field "nickname"
	return "reflection: " + e.Type + " has no field " + strconv.Quote(e.Field)
}

// MethodNotFoundError is returned when a named method does not exist on a type
// (or exists but is unexported, which reflection cannot see).
type MethodNotFoundError struct {
	Type   string
	Method string
}

func (e MethodNotFoundError) Error() string {
	// Example: reflection: *main.Calculator has no method "Divide"
	return "reflection: " + e.Type + " has no method " + strconv.Quote(e.Method)
}

// ArgumentCountError is returned by Call when the argument count does not
// match the method's parameter count.
type ArgumentCountError struct {
	Method string
	Want   int
	Got    int
}

func (e ArgumentCountError) Error() string {
	// Example: reflection: Add takes 2 argument(s), got 3
	return "reflection: " + e.Method + " takes " + strconv.Itoa(e.Want) +
		" argument(s), got " + strconv.Itoa(e.Got)
}

// ArgumentTypeError is returned by Call when an argument is neither assignable
// nor convertible to the parameter type.
type ArgumentTypeError struct {
	Method string
	Index  int
	Want   string
	Got    string
}

func (e ArgumentTypeError) Error() string {
	// Example: reflection: Add argument 1 must be int, got string
	return "reflection: " + e.Method + " argument " + strconv.Itoa(e.Index) +
		" must be " + e.Want + ", got " + e.Got
}

// AssignError is returned by SetField when a value is neither assignable nor
// convertible to the field type.
type AssignError struct {
	Type  string
	Field string
	Want  string
	Got   string
}

func (e AssignError) Error() string {
	// Example: reflection: cannot assign string to main.Person.age (int)
	return "reflection: cannot assign " + e.Got + " to " + e.Type + "." + e.Field +
		" (" + e.Want + ")"
}
