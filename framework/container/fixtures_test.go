package container

import "github.com/km-arc/go-spring/framework/annotation"

// ── test components ──────────────────────────────────────────────────────────

type clock struct {
	annotation.Component `name:"clock"`

	ticks int
}

func (c *clock) Tick() { c.ticks++ }

type greeter struct {
	annotation.Component `name:"greeter"`

	Clock *clock `inject:""`
	Label string // untagged — wiring must leave it alone
}

// token is the prototype-scope component.
type token struct {
	annotation.Component `name:"token" scope:"prototype"`

	Clock *clock `inject:""`
}

// pingService / pongService inject each other; the two-pass lifecycle is what
// makes that possible.
type pingService struct {
	annotation.Component `name:"ping"`

	Pong *pongService `inject:""`
}

type pongService struct {
	annotation.Component `name:"pong"`

	Ping *pingService `inject:""`
}

// ticker is matched by interface-typed inject fields.
type ticker interface{ Tick() }

type watcher struct {
	annotation.Component `name:"watcher"`

	T ticker `inject:""`
}

// orphan injects a type nothing registers.
type orphan struct {
	annotation.Component `name:"orphan"`

	Missing *unmarked `inject:""`
}

type unmarked struct {
	N int
}

type badScope struct {
	annotation.Component `scope:"session"`
}
