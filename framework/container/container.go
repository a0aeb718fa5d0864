package container

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/km-arc/go-spring/framework/annotation"
)

// ── Scopes ───────────────────────────────────────────────────────────────────

// Scope controls how a bean is handed out.
type Scope int

const (
	// Singleton beans are constructed once; every lookup returns the same
	// reference.
	Singleton Scope = iota
	// Prototype beans are constructed — and wired — afresh on every lookup.
	Prototype
)

func (s Scope) String() string {
	switch s {
	case Singleton:
		return annotation.ScopeSingleton
	case Prototype:
		return annotation.ScopePrototype
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// ── Container ────────────────────────────────────────────────────────────────

// definition is the stored registration for one bean type.
type definition struct {
	typ      reflect.Type // pointer-to-struct type the bean is keyed by
	name     string
	scope    Scope
	instance any // the singleton instance; nil for prototypes
}

// Container is a reflect.Type-keyed bean container with marker-based scanning
// (Scan) and tag-based field wiring (WireAll / Wire).
//
// Lookup keys are pointer-to-struct types; struct values registered through
// RegisterInstance are normalized to pointers so wiring can address their
// fields.
type Container struct {
	mu    sync.RWMutex
	beans map[reflect.Type]*definition
	names map[string]reflect.Type
	order []reflect.Type // registration order, for stable listings
}

// New creates an empty container.
func New() *Container {
	return &Container{
		beans: make(map[reflect.Type]*definition),
		names: make(map[string]reflect.Type),
	}
}

// ── Registration ─────────────────────────────────────────────────────────────

// RegisterInstance stores v keyed by its dynamic type, overwriting any prior
// registration for that type. The bean name follows the component marker when
// v carries one, and the lowerCamel type name otherwise.
//
//	_ = c.RegisterInstance(&Clock{})
func (c *Container) RegisterInstance(v any) error {
	return c.RegisterNamed("", v)
}

// RegisterNamed stores v under an explicit bean name (or the default name when
// name is empty). Registering a second bean under an existing name moves the
// name to the new bean.
//
//	_ = c.RegisterNamed("systemClock", &Clock{})
func (c *Container) RegisterNamed(name string, v any) error {
	if v == nil {
		return ErrNilBean
	}
	v = normalize(v)
	t := reflect.TypeOf(v)
	if name == "" {
		name = beanName(t)
	}
	c.put(&definition{typ: t, name: name, scope: Singleton, instance: v})
	return nil
}

// put inserts or overwrites a definition, keeping the original registration
// position on overwrite.
func (c *Container) put(d *definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.beans[d.typ]; ok {
		delete(c.names, prev.name)
	} else {
		c.order = append(c.order, d.typ)
	}
	c.beans[d.typ] = d
	if d.name != "" {
		c.names[d.name] = d.typ
	}
}

// ── Lookup ───────────────────────────────────────────────────────────────────

// Get returns the bean keyed by t. Singletons come back as the one stored
// reference; prototypes are constructed and wired per call. Absence is
// reported through ok, not an error.
func (c *Container) Get(t reflect.Type) (any, bool) {
	c.mu.RLock()
	d, ok := c.beans[t]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if d.scope == Prototype {
		inst := reflect.New(d.typ.Elem()).Interface()
		if err := c.wire(inst); err != nil {
			return nil, false
		}
		return inst, true
	}
	return d.instance, true
}

// GetNamed returns the bean registered under name.
func (c *Container) GetNamed(name string) (any, bool) {
	c.mu.RLock()
	t, ok := c.names[name]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return c.Get(t)
}

// Has reports whether a bean is registered for t.
func (c *Container) Has(t reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.beans[t]
	return ok
}

// Forget removes the registration for t, name included.
func (c *Container) Forget(t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.beans[t]
	if !ok {
		return
	}
	delete(c.beans, t)
	delete(c.names, d.name)
	for i, ot := range c.order {
		if ot == t {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Resolve returns the bean of type T.
//
//	greeter, ok := container.Resolve[*Greeter](c)
func Resolve[T any](c *Container) (T, bool) {
	var zero T
	v, ok := c.Get(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustResolve is Resolve for bootstrap code that treats absence as fatal; it
// panics with UnknownBeanError when no bean of type T exists.
func MustResolve[T any](c *Container) T {
	v, ok := Resolve[T](c)
	if !ok {
		panic(UnknownBeanError{Type: reflect.TypeOf((*T)(nil)).Elem().String()})
	}
	return v
}

// ── Listings ─────────────────────────────────────────────────────────────────

// Bean summarizes one registration for listings and debugging.
type Bean struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// Beans returns every registration in registration order.
func (c *Container) Beans() []Bean {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Bean, 0, len(c.order))
	for _, t := range c.order {
		d := c.beans[t]
		out = append(out, Bean{Name: d.name, Type: d.typ.String(), Scope: d.scope.String()})
	}
	return out
}

// Types returns the registered bean types in registration order.
func (c *Container) Types() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]reflect.Type, len(c.order))
	copy(out, c.order)
	return out
}

// ── helpers ──────────────────────────────────────────────────────────────────

// normalize boxes struct values into pointers so fields stay addressable for
// wiring. Pointers pass through untouched.
func normalize(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return v
	}
	pv := reflect.New(rv.Type())
	pv.Elem().Set(rv)
	return pv.Interface()
}

// beanName picks the component marker name when present, the lowerCamel type
// name otherwise.
func beanName(t reflect.Type) string {
	if def, ok := annotation.Describe(t); ok {
		return def.Name
	}
	return annotation.DefaultName(t)
}
