package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/km-arc/go-spring/app"
	"github.com/km-arc/go-spring/framework/annotation"
	"github.com/km-arc/go-spring/framework/container"
	"github.com/km-arc/go-spring/framework/reflection"
	"github.com/km-arc/go-spring/framework/routing"
	"github.com/km-arc/go-spring/framework/web"
)

// ── Demo components ──────────────────────────────────────────────────────────

// Clock tells the time. Singleton: every bean that injects it shares this one.
type Clock struct {
	annotation.Component `name:"clock"`
}

func (c *Clock) Now() string { return time.Now().Format(time.RFC3339) }

// Greeter renders greetings; its Clock arrives through the wiring pass.
type Greeter struct {
	annotation.Component `name:"greeter"`

	Clock *Clock `inject:""`

	greeting string // unexported — still visible to the reflection endpoints
}

func (g *Greeter) Greet(name string) string {
	prefix := g.greeting
	if prefix == "" {
		prefix = "Hello"
	}
	return fmt.Sprintf("%s, %s! It is %s.", prefix, name, g.Clock.Now())
}

// Token hands out a fresh value per lookup — the prototype scope demo.
// Prototypes are wired at construction, so Clock is set on every instance.
type Token struct {
	annotation.Component `name:"token" scope:"prototype"`

	Clock *Clock `inject:""`
}

// DemoController shows method discovery: every HandleXxx method below is
// mounted under /auto/<xxx> at startup; Status is not — no Handle prefix, no
// mount, exactly like an unannotated method in the Java exercises.
type DemoController struct {
	annotation.Component `name:"demoController"`

	Greeter *Greeter `inject:""`
}

func (d *DemoController) HandlePing(w http.ResponseWriter, r *http.Request) {
	web.NewResponse(w).Success("pong")
}

func (d *DemoController) HandleGreet(w http.ResponseWriter, r *http.Request) {
	web.NewResponse(w).Success(d.Greeter.Greet("auto"))
}

func (d *DemoController) Status(w http.ResponseWriter, r *http.Request) {
	web.NewResponse(w).Success("not mounted")
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func main() {
	application := app.New() // loads .env through the config provider

	if err := application.Scan(
		(*Clock)(nil),
		(*Greeter)(nil),
		(*Token)(nil),
		(*DemoController)(nil),
	); err != nil {
		log.Fatalf("scan error: %v", err)
	}

	if err := application.Boot(); err != nil {
		log.Fatalf("boot error: %v", err)
	}

	r := application.Router()
	c := application.Container

	// Class.forName needs a registered name to construct from; so does NewByName.
	reflection.RegisterType[Clock]("")
	reflection.RegisterType[Greeter]("")
	reflection.RegisterType[Token]("")

	// ── Container endpoints ──────────────────────────────────────────────────

	// GET /beans — every registration with its name, type and scope
	r.Get("/beans", func(w http.ResponseWriter, req *http.Request) {
		web.NewResponse(w).Success(c.Beans())
	})

	// GET /beans/{name} — reflection dump of one bean: fields (values
	// included, unexported included) and exported methods
	r.Get("/beans/{name}", func(w http.ResponseWriter, req *http.Request) {
		res := web.NewResponse(w)
		name := routing.Param(req, "name")
		bean, ok := c.GetNamed(name)
		if !ok {
			res.NotFound("no bean named " + name)
			return
		}
		info, err := reflection.Describe(bean)
		if err != nil {
			res.Error(http.StatusInternalServerError, err.Error())
			return
		}
		values, _ := reflection.FieldValues(bean)
		fields := make([]map[string]any, 0, len(info.Fields))
		for _, f := range info.Fields {
			fields = append(fields, map[string]any{
				"name":     f.Name,
				"type":     f.Type.String(),
				"exported": f.Exported,
				"value":    fmt.Sprintf("%v", values[f.Name]),
			})
		}
		methods := make([]string, 0, len(info.Methods))
		for _, m := range info.Methods {
			methods = append(methods, m.Name)
		}
		res.Success(map[string]any{
			"name":    name,
			"type":    info.Name,
			"fields":  fields,
			"methods": methods,
		})
	})

	// POST /beans/{name}/call/{method} — dynamic invocation:
	//	curl -X POST /beans/greeter/call/Greet -d '{"args":["World"]}'
	// JSON numbers arrive as float64; reflection.Call converts them to the
	// parameter types where the conversion exists.
	r.Post("/beans/{name}/call/{method}", func(w http.ResponseWriter, req *http.Request) {
		res := web.NewResponse(w)
		name := routing.Param(req, "name")
		bean, ok := c.GetNamed(name)
		if !ok {
			res.NotFound("no bean named " + name)
			return
		}
		var body struct {
			Args []any `json:"args"`
		}
		if err := web.Bind(req, &body); err != nil && !errors.Is(err, web.ErrEmptyBody) {
			res.Error(http.StatusBadRequest, err.Error())
			return
		}
		out, err := reflection.Call(bean, routing.Param(req, "method"), body.Args...)
		if err != nil {
			res.Error(http.StatusBadRequest, err.Error())
			return
		}
		res.Success(out)
	})

	// GET /scopes — singletons share a reference, prototypes never do
	r.Get("/scopes", func(w http.ResponseWriter, req *http.Request) {
		g1 := container.MustResolve[*Greeter](c)
		g2 := container.MustResolve[*Greeter](c)
		t1 := container.MustResolve[*Token](c)
		t2 := container.MustResolve[*Token](c)
		web.NewResponse(w).Success(map[string]any{
			"singletonShared": g1 == g2,
			"prototypeShared": t1 == t2,
			"prototypesWired": t1.Clock != nil && t1.Clock == t2.Clock,
		})
	})

	// GET /types — names constructible through the type registry
	r.Get("/types", func(w http.ResponseWriter, req *http.Request) {
		web.NewResponse(w).Success(reflection.RegisteredTypeNames())
	})

	// POST /types/{name} — construct a fresh instance by name and dump it
	r.Post("/types/{name}", func(w http.ResponseWriter, req *http.Request) {
		res := web.NewResponse(w)
		name := routing.Param(req, "name")
		inst, err := reflection.NewByName(name)
		if err != nil {
			res.NotFound(err.Error())
			return
		}
		info, err := reflection.Describe(inst)
		if err != nil {
			res.Error(http.StatusInternalServerError, err.Error())
			return
		}
		res.Success(map[string]any{
			"type":   info.Name,
			"fields": len(info.Fields),
			"value":  fmt.Sprintf("%+v", inst),
		})
	})

	// GET /greet/{name} — an injected-service round trip
	r.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
		greeter := container.MustResolve[*Greeter](c)
		web.NewResponse(w).Success(greeter.Greet(routing.Param(req, "name")))
	})

	// ── Reflective handler mounting ──────────────────────────────────────────

	mountHandlers(r, container.MustResolve[*DemoController](c))

	application.Run()
}

// mountHandlers mounts every HandleXxx method of ctrl carrying the handler
// signature under /auto/<xxx>: method discovery by naming convention.
func mountHandlers(r *routing.Router, ctrl any) {
	v := reflect.ValueOf(ctrl)
	for _, m := range annotation.MethodsWithPrefix(reflect.TypeOf(ctrl), "Handle") {
		fn, ok := v.MethodByName(m.Name).Interface().(func(http.ResponseWriter, *http.Request))
		if !ok {
			continue // wrong signature
		}
		path := "/auto/" + strings.ToLower(strings.TrimPrefix(m.Name, "Handle"))
		r.Get(path, fn)
	}
}
