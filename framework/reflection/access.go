package reflection

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ── Field access by name ─────────────────────────────────────────────────────

// FieldValue reads the named field from target, a pointer to struct.
// Unexported fields are readable — the counterpart of setAccessible(true).
//
//	balance, _ := reflection.FieldValue(account, "balance")
func FieldValue(target any, name string) (any, error) {
	sv, err := structValue(target)
	if err != nil {
		return nil, err
	}
	f := sv.FieldByName(name)
	if !f.IsValid() {
		return nil, FieldNotFoundError{Type: sv.Type().String(), Field: name}
	}
	return accessible(f).Interface(), nil
}

// SetField writes value into the named field of target, a pointer to struct.
// Unexported fields are writable, and convertible values are converted: an int
// fills an int64 field, an untyped-looking string fills a named string type.
//
//	_ = reflection.SetField(p, "name", "Alice")
//	_ = reflection.SetField(p, "age", 30)
func SetField(target any, name string, value any) error {
	sv, err := structValue(target)
	if err != nil {
		return err
	}
	f := sv.FieldByName(name)
	if !f.IsValid() {
		return FieldNotFoundError{Type: sv.Type().String(), Field: name}
	}

	v := reflect.ValueOf(value)
	if !v.IsValid() {
		// nil clears pointer-like fields only
		switch f.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			v = reflect.Zero(f.Type())
		default:
			return AssignError{Type: sv.Type().String(), Field: name, Want: f.Type().String(), Got: "nil"}
		}
	}
	if !v.Type().AssignableTo(f.Type()) {
		if !v.Type().ConvertibleTo(f.Type()) {
			return AssignError{Type: sv.Type().String(), Field: name, Want: f.Type().String(), Got: v.Type().String()}
		}
		v = v.Convert(f.Type())
	}
	accessible(f).Set(v)
	return nil
}

// FieldValues reads every declared field of target into a name→value map,
// unexported fields included.
func FieldValues(target any) (map[string]any, error) {
	sv, err := structValue(target)
	if err != nil {
		return nil, err
	}
	t := sv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		out[t.Field(i).Name] = accessible(sv.Field(i)).Interface()
	}
	return out, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// structValue unwraps target into an addressable struct Value.
func structValue(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, ErrNilTarget
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("reflection: %T: %w", target, ErrNotPointer)
	}
	return v.Elem(), nil
}

// accessible re-derives f through its address so the Interface/Set API works
// on unexported fields. f must be addressable.
func accessible(f reflect.Value) reflect.Value {
	if f.CanInterface() && f.CanSet() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}
