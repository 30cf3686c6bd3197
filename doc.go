// Package adapt composes object wrappers ("adapters") from declarative
// configuration.
//
// This repository offers two renderings of the same adapter configuration:
//
//   - dynamic: the configuration is compiled into a dispatch table (Class)
//     and installed into a per-process Registry, usable immediately
//   - generated: the configuration is rendered into Go source by
//     cmd/adaptergen at build time, yielding a real type definition
//
// Both paths share one configuration record and one validation pass, so a
// spec that renders dynamically also renders as source and vice versa.
//
// The goal is to keep forwarding explicit and cheap to reason about: an
// adapter holds exactly one wrapped object and forwards calls to it by
// name, optionally renaming them, with no lifecycle management beyond a
// teardown forward on Close.
//
// See subpackages:
//   - adapter: holder contract, builder, dynamic classes, source renderer
//   - cmd/adaptergen: build-step code generator for the generated path
//   - examples/*: runnable examples for both paths
package adapt
