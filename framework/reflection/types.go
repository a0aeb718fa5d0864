package reflection

import (
	"reflect"
	"sort"
	"strconv"
	"sync"
)

// ── Named type registry ──────────────────────────────────────────────────────
//
// The stand-in for Java's Class.forName. Go keeps no global name→type table,
// so constructing "by name" starts with an explicit registration step.

var typeRegistry = struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}{types: make(map[string]reflect.Type)}

// UnknownTypeError is returned by NewByName for unregistered names.
type UnknownTypeError struct{ Name string }

func (e UnknownTypeError) Error() string {
	// Example: reflection: no type registered under "BankAccount"
	return "reflection: no type registered under " + strconv.Quote(e.Name)
}

// RegisterType records T under name, or under T's bare type name when name is
// empty. Re-registration overwrites.
//
//	reflection.RegisterType[BankAccount]("")
//	reflection.RegisterType[BankAccount]("bank.Account")
func RegisterType[T any](name string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if name == "" {
		name = t.Name()
	}
	typeRegistry.mu.Lock()
	typeRegistry.types[name] = t
	typeRegistry.mu.Unlock()
}

// TypeByName looks up a registered type.
func TypeByName(name string) (reflect.Type, bool) {
	typeRegistry.mu.RLock()
	defer typeRegistry.mu.RUnlock()
	t, ok := typeRegistry.types[name]
	return t, ok
}

// NewByName constructs a fresh zero value of the registered type and returns a
// pointer to it — the no-arg constructor path.
//
//	acct, err := reflection.NewByName("BankAccount") // *BankAccount
func NewByName(name string) (any, error) {
	t, ok := TypeByName(name)
	if !ok {
		return nil, UnknownTypeError{Name: name}
	}
	return reflect.New(t).Interface(), nil
}

// RegisteredTypeNames returns the registered names, sorted.
func RegisteredTypeNames() []string {
	typeRegistry.mu.RLock()
	defer typeRegistry.mu.RUnlock()
	names := make([]string, 0, len(typeRegistry.types))
	for n := range typeRegistry.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
