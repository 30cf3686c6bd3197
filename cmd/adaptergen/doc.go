// Command adaptergen — build-step adapter class generation
//
// adaptergen reads a small adapter spec (JSON or YAML) and renders a
// complete Go source unit for the described adapter class: a typed wrapper
// around github.com/sghaida/adapt/adapter.Adapter with one forwarding
// method per declared mapping, plus the optional delegate constructor,
// identity delegation and autoload catch-all.
//
// Key behaviors:
//   - Reads the spec file; the extension selects the format (.json, .yaml, .yml)
//   - Validates the spec before rendering; any problem names the target class
//   - Renders the full source unit or nothing (no partial output)
//   - Writes output atomically (temp file + rename) to avoid partial writes
//
// Spec format
//
// Minimal example (YAML):
//
//	package: adapters
//	target: "My::Clear"
//	isa: ["_OBJECT_"]
//	autoload: true
//	map:
//	  bar: flush
//
// Fields:
//
//   - package:  package name of the generated file (default "adapters",
//     overridable with --package)
//   - target:   adapter class name (required)
//   - new:      constructor delegate class; the generated constructor calls
//     New<Delegate>(args...) in the same package
//   - isa:      declared base classes, or the single sentinel "_OBJECT_"
//     to delegate identity queries to the wrapped object
//   - autoload: generate the catch-all Call method
//   - methods:  bulk same-name forwarding methods
//   - map:      generated-name -> wrapped-method forwarding entries
//
// Typical go:generate usage
//
// Put this next to the spec, in the package that receives the output:
//
//	//go:generate go run ../../cmd/adaptergen --spec ./clear.adapter.yaml --out ./clear.gen.go
//
// Then:
//
//	go generate ./...
package main
