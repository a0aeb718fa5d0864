// Package reflection wraps the reflect package with the operations the rest of
// the framework leans on: describing a struct's fields and methods, reading and
// writing fields by name (unexported included), calling methods by name,
// shallow-cloning values, and constructing instances from a registered type
// name.
//
// Everything operates on ordinary structs; nothing is required of the inspected
// types — no interfaces to implement, no code generation.
//
// # Inspecting
//
//	// Java: clazz.getDeclaredFields() / getDeclaredMethods()
//	info, _ := reflection.Describe(&BankAccount{})
//	for _, f := range info.Fields {
//	    fmt.Println(f.Name, f.Type, f.Exported)
//	}
//
// # Private members
//
// Go's counterpart of setAccessible(true) is addressing the field's memory
// directly. FieldValue and SetField do this for unexported fields, so a test
// or container can reach a field the package boundary would normally hide:
//
//	// Java: field.setAccessible(true); field.set(account, 99999.0)
//	_ = reflection.SetField(account, "balance", 99999.0)
//
// One asymmetry with Java has no workaround: reflect only exposes exported
// methods, so a private method can never be invoked dynamically.
//
// # Class.forName
//
// Go strips type names from the runtime unless something registers them, so
// constructing "by name" starts with an explicit registration step:
//
//	reflection.RegisterType[BankAccount]("")
//	acct, _ := reflection.NewByName("BankAccount") // *BankAccount
package reflection
