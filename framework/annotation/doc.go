// Package annotation provides runtime markers — the Go analogue of Spring's
// annotations.
//
// Java attaches metadata with @Component / @Autowired and reads it back through
// the annotation API. Go has no annotations, but it has two runtime-readable
// marker mechanisms, and this package uses both:
//
//   - an embedded zero-size struct (Component) marks a type, with metadata
//     riding on the struct tag of the embedded field
//   - a struct tag (`inject:""`) marks a field for container wiring
//
// Method-level markers have no tag equivalent, so method discovery follows the
// convention the Go toolchain itself uses: names. go test finds TestXxx; here a
// prefix plays the role of the marker. See MethodsWithPrefix.
//
// # Marking a component
//
//	// Spring: @Component("userService") @Scope("singleton")
//	type UserService struct {
//	    annotation.Component `name:"userService" scope:"singleton"`
//
//	    // Spring: @Autowired
//	    Repo *UserRepo `inject:""`
//	}
//
//	annotation.IsComponent(reflect.TypeOf((*UserService)(nil)))  // true
//	def, _ := annotation.Describe(reflect.TypeOf((*UserService)(nil)))
//	// def.Name == "userService", def.Scope == "singleton"
//
// # Finding marked methods
//
//	// Spring: methods annotated @Loggable
//	// Here:   methods named HandleXxx
//	methods := annotation.MethodsWithPrefix(reflect.TypeOf(ctrl), "Handle")
package annotation
