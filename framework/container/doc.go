// Package container provides a type-keyed IoC container with marker-based
// component scanning and tag-based field injection — the Go rendition of the
// miniature bean containers from the Spring reflection exercises.
//
// # Overview
//
// The container is a mapping from a key to a stored instance. Two keyings are
// provided: Registry (string keys, the simplest variant) and Container
// (reflect.Type keys, with scanning, scopes, names and wiring layered on top).
//
// The Container lifecycle is two linear passes:
//
//  1. Populate — Scan candidate types for the annotation.Component marker and
//     construct each hit through its zero-argument path, or register
//     pre-built values with RegisterInstance. Registration overwrites.
//  2. Wire — WireAll assigns every `inject:""`-tagged field of every stored
//     singleton from the container, matching on the field's declared type.
//
// All constructions complete before any wiring begins; that ordering — not
// cycle analysis — is what lets two beans inject each other.
//
// # Scopes
//
//	// Singleton (the default): one instance, same reference every lookup
//	type Clock struct {
//	    annotation.Component `name:"clock"`
//	}
//
//	// Prototype: a fresh, freshly wired instance per lookup
//	type Token struct {
//	    annotation.Component `scope:"prototype"`
//	}
//
// # Resolving
//
//	// Untyped, absence via ok
//	raw, ok := c.Get(reflect.TypeOf((*Clock)(nil)))
//	raw, ok = c.GetNamed("clock")
//
//	// Generic (preferred — no type assertion required)
//	clock := container.MustResolve[*Clock](c)
//
// # Service providers
//
// ServiceProvider and ProviderRegistry sequence registrations from several
// packages through the two-phase lifecycle; see provider.go.
//
// # What this is not
//
// There is no proxying, no post-processors, no circular-dependency resolution
// and no destruction lifecycle. Beans live for the duration of the process.
package container
