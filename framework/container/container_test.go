package container

import (
	"reflect"
	"testing"
)

// ── Registration & lookup ────────────────────────────────────────────────────

func TestContainer_RegisterInstanceAndGet(t *testing.T) {
	c := New()
	want := &clock{}
	if err := c.RegisterInstance(want); err != nil {
		t.Fatalf("RegisterInstance: %v", err)
	}

	got, ok := c.Get(reflect.TypeOf(want))
	if !ok {
		t.Fatal("Get should find the registered bean")
	}
	if got != want {
		t.Error("Get should return the stored reference")
	}
}

func TestContainer_GetAbsentIsNotAnError(t *testing.T) {
	c := New()

	got, ok := c.Get(reflect.TypeOf((*clock)(nil)))
	if ok || got != nil {
		t.Errorf("absent type: got %v, %v; want nil, false", got, ok)
	}
}

func TestContainer_RegisterOverwrites(t *testing.T) {
	c := New()
	first := &clock{ticks: 1}
	second := &clock{ticks: 2}

	_ = c.RegisterInstance(first)
	_ = c.RegisterInstance(second)

	got, _ := c.Get(reflect.TypeOf(second))
	if got != second {
		t.Error("the second registration should win")
	}
	if len(c.Beans()) != 1 {
		t.Errorf("Beans(): got %d entries, want 1", len(c.Beans()))
	}
}

func TestContainer_RegisterNilBean(t *testing.T) {
	c := New()
	if err := c.RegisterInstance(nil); err != ErrNilBean {
		t.Errorf("RegisterInstance(nil): got %v, want ErrNilBean", err)
	}
}

func TestContainer_StructValueIsNormalizedToPointer(t *testing.T) {
	c := New()
	_ = c.RegisterInstance(unmarked{N: 7})

	got, ok := c.Get(reflect.TypeOf((*unmarked)(nil)))
	if !ok {
		t.Fatal("struct registrations should be keyed by pointer type")
	}
	if got.(*unmarked).N != 7 {
		t.Errorf("normalized bean lost its state: got %d, want 7", got.(*unmarked).N)
	}
}

func TestContainer_GetNamed(t *testing.T) {
	c := New()
	_ = c.RegisterNamed("systemClock", &clock{})

	if _, ok := c.GetNamed("systemClock"); !ok {
		t.Error("GetNamed should find the explicit name")
	}
	if _, ok := c.GetNamed("clock"); ok {
		t.Error("the explicit name replaces the default one")
	}
}

func TestContainer_DefaultBeanName(t *testing.T) {
	c := New()
	_ = c.RegisterInstance(&unmarked{}) // no marker → lowerCamel type name

	if _, ok := c.GetNamed("unmarked"); !ok {
		t.Error("beans without a marker should default to the lowerCamel type name")
	}
}

func TestContainer_Forget(t *testing.T) {
	c := New()
	_ = c.RegisterInstance(&clock{})
	typ := reflect.TypeOf((*clock)(nil))

	c.Forget(typ)
	c.Forget(typ) // second call is a no-op

	if c.Has(typ) {
		t.Error("Forget should remove the registration")
	}
	if _, ok := c.GetNamed("clock"); ok {
		t.Error("Forget should remove the name too")
	}
}

// ── Generic helpers ──────────────────────────────────────────────────────────

func TestResolve_Generic(t *testing.T) {
	c := New()
	want := &clock{}
	_ = c.RegisterInstance(want)

	got, ok := Resolve[*clock](c)
	if !ok || got != want {
		t.Errorf("Resolve[*clock]: got %v, %v", got, ok)
	}

	if _, ok := Resolve[*greeter](c); ok {
		t.Error("Resolve for an unregistered type should report ok=false")
	}
}

func TestMustResolve_PanicsOnAbsence(t *testing.T) {
	c := New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustResolve should panic for an unregistered type")
		}
		if _, ok := r.(UnknownBeanError); !ok {
			t.Errorf("panic payload: got %T, want UnknownBeanError", r)
		}
	}()
	MustResolve[*clock](c)
}

// ── Listings ─────────────────────────────────────────────────────────────────

func TestContainer_BeansListsInRegistrationOrder(t *testing.T) {
	c := New()
	_ = c.RegisterInstance(&clock{})
	_ = c.RegisterInstance(&greeter{})

	beans := c.Beans()
	if len(beans) != 2 {
		t.Fatalf("Beans(): got %d, want 2", len(beans))
	}
	if beans[0].Name != "clock" || beans[1].Name != "greeter" {
		t.Errorf("Beans() order: got %q, %q", beans[0].Name, beans[1].Name)
	}
	if beans[0].Scope != "singleton" {
		t.Errorf("Beans()[0].Scope: got %q, want singleton", beans[0].Scope)
	}
}
