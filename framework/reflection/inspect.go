package reflection

import (
	"fmt"
	"reflect"
)

// ── Describing types ─────────────────────────────────────────────────────────

// Field describes one declared struct field, unexported ones included.
type Field struct {
	Name      string
	Type      reflect.Type
	Exported  bool // the Go rendition of the public/private modifier
	Anonymous bool
	Tag       reflect.StructTag
}

// Method describes one exported method. Unexported methods are invisible to
// reflection in Go, so they never appear here.
type Method struct {
	Name   string
	Type   reflect.Type // the func type, receiver included
	NumIn  int          // parameter count, receiver excluded
	NumOut int
}

// Type is the result of Describe: a flat view of a struct type.
type Type struct {
	Name    string
	Fields  []Field
	Methods []Method
}

// Describe inspects v, which must be a struct or pointer to struct.
// Pass a pointer to also surface pointer-receiver methods.
func Describe(v any) (Type, error) {
	if v == nil {
		return Type{}, ErrNilTarget
	}
	t := reflect.TypeOf(v)
	st := t
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return Type{}, fmt.Errorf("reflection: describe %s: %w", t, ErrNotStruct)
	}
	return Type{
		Name:    st.Name(),
		Fields:  FieldsOf(st),
		Methods: MethodsOf(t),
	}, nil
}

// FieldsOf enumerates the declared fields of a struct (or pointer-to-struct)
// type, in declaration order.
func FieldsOf(t reflect.Type) []Field {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fields = append(fields, Field{
			Name:      f.Name,
			Type:      f.Type,
			Exported:  f.IsExported(),
			Anonymous: f.Anonymous,
			Tag:       f.Tag,
		})
	}
	return fields
}

// MethodsOf enumerates the exported methods in t's method set.
func MethodsOf(t reflect.Type) []Method {
	if t == nil {
		return nil
	}
	methods := make([]Method, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		methods = append(methods, Method{
			Name:   m.Name,
			Type:   m.Type,
			NumIn:  m.Type.NumIn() - 1, // drop the receiver
			NumOut: m.Type.NumOut(),
		})
	}
	return methods
}
