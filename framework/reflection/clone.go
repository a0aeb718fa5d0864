package reflection

import "reflect"

// Clone allocates a fresh value of src's dynamic type and copies every field
// into it, unexported ones included. The clone is field-equal to src but never
// the same reference. src must be a pointer to struct; the clone comes back as
// the same pointer type.
//
//	p2raw, _ := reflection.Clone(p1)
//	p2 := p2raw.(*Person)   // p2 != p1, *p2 == *p1
//
// The copy is shallow: pointer and slice fields share their referents with the
// source.
func Clone(src any) (any, error) {
	sv, err := structValue(src)
	if err != nil {
		return nil, err
	}
	dst := reflect.New(sv.Type())
	de := dst.Elem()
	for i := 0; i < sv.NumField(); i++ {
		accessible(de.Field(i)).Set(accessible(sv.Field(i)))
	}
	return dst.Interface(), nil
}
