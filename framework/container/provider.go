package container

// ── ServiceProvider interface ────────────────────────────────────────────────

// ServiceProvider groups related bean registrations, in the shape Laravel and
// Spring both converge on: a Register phase that only binds, and a Boot phase
// that may use what everyone else bound.
//
// The registry guarantees that every provider's Register — and the container's
// wiring pass — completes before any provider's Boot runs, so injected fields
// are usable inside Boot.
//
//	type AppProvider struct{ container.BaseProvider }
//
//	func (p *AppProvider) Register(c *container.Container) error {
//	    return c.Scan((*Clock)(nil), (*Greeter)(nil))
//	}
//
//	func (p *AppProvider) Boot(c *container.Container) error {
//	    greeter := container.MustResolve[*Greeter](c)
//	    log.Println(greeter.Greet("boot"))
//	    return nil
//	}
type ServiceProvider interface {
	// Register binds beans into the container.
	// Do NOT resolve other beans here — use Boot for that.
	Register(c *Container) error

	// Boot is called after all providers are registered and the wiring pass
	// has run. Safe to resolve anything here.
	Boot(c *Container) error
}

// BaseProvider is an embeddable struct with no-op implementations of both
// phases. Embed it and override what you need.
type BaseProvider struct{}

func (BaseProvider) Register(*Container) error { return nil }
func (BaseProvider) Boot(*Container) error     { return nil }

// ── ProviderRegistry ─────────────────────────────────────────────────────────

// ProviderRegistry sequences providers through the two-phase lifecycle:
// every Register completes, then the container wires its singletons, then the
// Boot hooks run in registration order.
type ProviderRegistry struct {
	c          *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and runs its Register phase. Registering the same
// provider instance twice is a no-op.
//
// A provider registered after Boot is registered, re-wired, and booted
// immediately — its beans missed the global wiring pass.
func (r *ProviderRegistry) Register(p ServiceProvider) error {
	if r.registered[p] {
		return nil
	}
	r.registered[p] = true

	if err := p.Register(r.c); err != nil {
		return err
	}
	r.providers = append(r.providers, p)

	if r.booted {
		if err := r.c.WireAll(); err != nil {
			return err
		}
		return p.Boot(r.c)
	}
	return nil
}

// Boot runs the wiring pass and then every provider's Boot hook.
// Calling Boot twice is a no-op.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true

	if err := r.c.WireAll(); err != nil {
		return err
	}
	for _, p := range r.providers {
		if err := p.Boot(r.c); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
