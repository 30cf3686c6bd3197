// Package adapter composes object wrappers from declarative configuration.
//
// This package intentionally supports two renderings of one configuration:
//
//   - dynamic: Builder.Class compiles the configuration into a Class, a
//     method-name dispatch table over a wrapped object, which is installed
//     into a Registry and usable immediately. Best for adapters assembled
//     at run time (plugins, test doubles, ad-hoc facades).
//
//   - generated: Builder.Render emits a complete Go source unit declaring a
//     real adapter type, intended to be written out by cmd/adaptergen at a
//     build step. Best when the adapter surface should be visible to the
//     compiler and to godoc.
//
// Both renderings share the same Builder and the same validation, so a
// configuration accepted by one is accepted by the other.
//
// The holder contract is deliberately tiny: Wrap stores exactly one wrapped
// object (soft-failing on non-objects so callers can test-and-branch),
// Object retrieves it (fatal when misused without an instance), Close
// forwards teardown. Everything else (forwarding, renaming, identity
// delegation, catch-all dispatch) is configuration.
//
// Quick guidance
//
// Use the dynamic path when you want:
//   - Adapters available immediately, no build step
//   - String-keyed dispatch and a process-wide Registry
//   - Structured errors you can assert in tests
//
// Use the generated path when you want:
//   - Real type definitions and compile-time visibility
//   - Failures surfaced at build time instead of call time
//
// Import
//
//	"github.com/sghaida/adapt/adapter"
package adapter
