package reflection

import "reflect"

// ── Dynamic invocation ───────────────────────────────────────────────────────

// Call invokes the named exported method on target, converting arguments where
// the types allow it, and returns the results as a slice.
//
//	out, _ := reflection.Call(calc, "Add", 5, 3)        // out[0] == 8
//	out, _ := reflection.Call(calc, "Greet", "World")   // out[0] == "Hello, World!"
//
// Passing a struct value finds pointer-receiver methods too; a copy of the
// value receives the call in that case.
func Call(target any, name string, args ...any) ([]any, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	v := reflect.ValueOf(target)
	m := v.MethodByName(name)
	if !m.IsValid() && v.Kind() != reflect.Ptr {
		// pointer-receiver methods are absent from the value's method set
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		m = pv.MethodByName(name)
	}
	if !m.IsValid() {
		return nil, MethodNotFoundError{Type: reflect.TypeOf(target).String(), Method: name}
	}

	mt := m.Type()
	if mt.IsVariadic() {
		if len(args) < mt.NumIn()-1 {
			return nil, ArgumentCountError{Method: name, Want: mt.NumIn() - 1, Got: len(args)}
		}
	} else if len(args) != mt.NumIn() {
		return nil, ArgumentCountError{Method: name, Want: mt.NumIn(), Got: len(args)}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := paramType(mt, i)
		av := reflect.ValueOf(arg)
		if !av.IsValid() {
			in[i] = reflect.Zero(want)
			continue
		}
		if !av.Type().AssignableTo(want) {
			if !av.Type().ConvertibleTo(want) {
				return nil, ArgumentTypeError{Method: name, Index: i, Want: want.String(), Got: av.Type().String()}
			}
			av = av.Convert(want)
		}
		in[i] = av
	}

	outs := m.Call(in)
	results := make([]any, len(outs))
	for i, o := range outs {
		results[i] = o.Interface()
	}
	return results, nil
}

// paramType returns the declared type of parameter i, unrolling the variadic
// tail.
func paramType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}
