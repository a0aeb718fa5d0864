package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-spring/framework/config"
	"github.com/km-arc/go-spring/framework/container"
	"github.com/km-arc/go-spring/framework/routing"
)

// Application is the top-level object: the bean container plus the provider
// registry. It embeds the Container so user code can call app.Scan(),
// app.RegisterInstance() and so on directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework core providers.
//
//	application := app.New() // loads .env through the config provider
//	_ = application.Scan((*Clock)(nil), (*Greeter)(nil))
//	_ = application.Boot()
//	application.Run()
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	a := &Application{
		Container: c,
		Providers: registry,
	}

	// Core providers never fail to register; a failure here is a programming
	// error in the framework itself.
	mustRegister(registry, &ConfigServiceProvider{EnvFiles: envFiles})
	mustRegister(registry, &RoutingServiceProvider{})

	return a
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(p container.ServiceProvider) error {
	return a.Providers.Register(p)
}

// Boot runs the wiring pass and the providers' Boot phase.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves the *config.Config bean.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container)
}

// Router resolves the *routing.Router bean.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Container)
}

// Run boots the application (if needed) and starts the HTTP server on
// APP_PORT.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			log.Fatalf("boot error: %v", err)
		}
	}
	cfg := a.Config()
	addr := ":" + cfg.App.Port
	fmt.Printf("%s listening on http://localhost%s  [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)
	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

func mustRegister(r *container.ProviderRegistry, p container.ServiceProvider) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}
