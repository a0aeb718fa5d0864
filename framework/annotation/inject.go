package annotation

import "reflect"

// InjectTag marks a struct field for container wiring — the @Autowired analogue.
//
//	type OrderService struct {
//	    annotation.Component
//	    Repo  *OrderRepo `inject:""`
//	    Clock Clock      `inject:""` // interface fields match any assignable bean
//	}
const InjectTag = "inject"

// InjectedFields returns the fields of t tagged for injection, in declaration
// order. The Component marker itself is never injectable.
func InjectedFields(t reflect.Type) []reflect.StructField {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == componentType {
			continue
		}
		if _, ok := f.Tag.Lookup(InjectTag); ok {
			out = append(out, f)
		}
	}
	return out
}
