package annotation

import (
	"reflect"
	"strings"
)

// ── Method discovery ─────────────────────────────────────────────────────────

// MethodsWithPrefix returns the exported methods of t whose names start with
// prefix, in method-set order. Pass a pointer type to include pointer-receiver
// methods.
//
//	// finds HandlePing, HandleTime — not Internal
//	annotation.MethodsWithPrefix(reflect.TypeOf(ctrl), "Handle")
func MethodsWithPrefix(t reflect.Type, prefix string) []reflect.Method {
	return MethodsMatching(t, func(m reflect.Method) bool {
		return strings.HasPrefix(m.Name, prefix)
	})
}

// MethodsMatching returns the exported methods of t accepted by match.
// Unexported methods are invisible to Go reflection and never appear.
func MethodsMatching(t reflect.Type, match func(reflect.Method) bool) []reflect.Method {
	if t == nil || match == nil {
		return nil
	}
	var out []reflect.Method
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if match(m) {
			out = append(out, m)
		}
	}
	return out
}
