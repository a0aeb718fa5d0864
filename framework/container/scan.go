package container

import (
	"fmt"
	"reflect"

	"github.com/km-arc/go-spring/framework/annotation"
)

// ── Component scanning ───────────────────────────────────────────────────────

// Scan walks the candidate types, constructs every one carrying the Component
// marker through its zero-argument path (reflect.New), and registers it keyed
// by its pointer type. Candidates without the marker are silently skipped.
//
// Candidates are given as typed nil pointers or zero values:
//
//	err := c.Scan(
//	    (*UserRepo)(nil),
//	    (*UserService)(nil),
//	    Unmarked{},          // no marker — skipped
//	)
//
// Singleton components are constructed immediately; prototype components are
// recorded and constructed per lookup. Construction never runs user code, so
// the only scan failures are malformed candidates: a nil interface value, a
// marked non-struct, or a marker with an unknown scope tag.
//
// Scan registers only. Field wiring is a separate pass — see WireAll — and
// every construction from one Scan call completes before that pass begins.
func (c *Container) Scan(candidates ...any) error {
	for _, cand := range candidates {
		if cand == nil {
			return ErrNilBean
		}
		t := reflect.TypeOf(cand)
		def, ok := annotation.Describe(t)
		if !ok {
			continue // not a component
		}

		st := t
		if st.Kind() == reflect.Ptr {
			st = st.Elem()
		}
		if st.Kind() != reflect.Struct {
			return fmt.Errorf("container: scan %s: %w", t, ErrNotStruct)
		}

		var scope Scope
		switch def.Scope {
		case annotation.ScopeSingleton:
			scope = Singleton
		case annotation.ScopePrototype:
			scope = Prototype
		default:
			return UnknownScopeError{Type: st.String(), Scope: def.Scope}
		}

		d := &definition{typ: reflect.PointerTo(st), name: def.Name, scope: scope}
		if scope == Singleton {
			d.instance = reflect.New(st).Interface()
		}
		c.put(d)
	}
	return nil
}
