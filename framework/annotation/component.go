package annotation

import (
	"reflect"
	"unicode"
)

// ── Component marker ─────────────────────────────────────────────────────────

// Component is the embeddable marker that flags a struct as a managed
// component — the runtime analogue of Spring's @Component.
//
// Metadata rides on the struct tag of the embedded field:
//
//	type UserService struct {
//	    annotation.Component `name:"userService" scope:"singleton"`
//	}
type Component struct{}

var componentType = reflect.TypeOf(Component{})

// Scope names accepted in the `scope` tag.
const (
	ScopeSingleton = "singleton"
	ScopePrototype = "prototype"
)

// Definition is the metadata parsed from a component marker.
type Definition struct {
	Name  string // bean name; defaults to the lowerCamel type name
	Scope string // "singleton" (default) or "prototype"
}

// IsComponent reports whether t (a struct or pointer-to-struct type) embeds
// the Component marker.
func IsComponent(t reflect.Type) bool {
	_, ok := markerField(t)
	return ok
}

// Describe parses the marker metadata for t.
// ok is false when t carries no marker.
func Describe(t reflect.Type) (Definition, bool) {
	f, ok := markerField(t)
	if !ok {
		return Definition{}, false
	}
	def := Definition{
		Name:  f.Tag.Get("name"),
		Scope: f.Tag.Get("scope"),
	}
	if def.Name == "" {
		def.Name = DefaultName(t)
	}
	if def.Scope == "" {
		def.Scope = ScopeSingleton
	}
	return def, true
}

// DefaultName mirrors Spring's bean naming convention: UserService → "userService".
func DefaultName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return ""
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// markerField finds the embedded Component field, if any.
func markerField(t reflect.Type) (reflect.StructField, bool) {
	if t == nil {
		return reflect.StructField{}, false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == componentType {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
