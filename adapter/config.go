package adapter

import (
	"strconv"
	"strings"
)

// ObjectSentinel is the special base-class value meaning "delegate type
// identity to the wrapped object". It is valid only as the sole base class.
const ObjectSentinel = "_OBJECT_"

// BaseClass is the identifier the default base-class set refers to: the
// holder contract every adapter builds on.
const BaseClass = "adapter.Adapter"

// Reserved directive keys. Any other key declares one explicit
// generated-name -> target-name forwarding method.
const (
	DirectiveNew      = "NEW"
	DirectiveIsa      = "ISA"
	DirectiveAutoload = "AUTOLOAD"
	DirectiveMethods  = "METHODS"
)

// Capability module names accumulated on the configuration as setters run.
// The source renderer turns these into declarations of the generated unit;
// the dynamic renderer links the same capabilities directly.
const (
	// moduleReflect is the reflection/type-check capability pulled in by a
	// constructor delegate (the generated constructor must validate the
	// delegate's result before wrapping it).
	moduleReflect = "reflect"

	// moduleReport is the error-reporting capability pulled in by autoload
	// (the generated catch-all must raise a clear fatal error on type-level
	// misuse).
	moduleReport = "fmt"
)

// Directive is one ordered key/value configuration entry for Define.
type Directive struct {
	Key   string
	Value any
}

// D builds a Directive. Small convenience for Define call sites.
func D(key string, value any) Directive { return Directive{Key: key, Value: value} }

// Builder accumulates an adapter configuration and renders it, either into
// a dynamic Class or into Go source text.
//
// Setters record the first malformed input as a sticky configuration error;
// rendering surfaces it. The zero Builder is not usable: construct with
// NewBuilder or Define.
type Builder struct {
	target   string
	pkg      string
	bases    []string
	delegate string
	methods  map[string]string
	autoload bool
	modules  map[string]struct{}

	err error
}

// NewBuilder initializes a configuration for target with the defaults:
// base classes [adapter.Adapter], no methods, no delegate, autoload off.
//
// The target name is immutable once set.
func NewBuilder(target string) *Builder {
	b := &Builder{
		target:  strings.TrimSpace(target),
		pkg:     "adapters",
		bases:   []string{BaseClass},
		methods: make(map[string]string),
		modules: make(map[string]struct{}),
	}
	if b.target == "" {
		b.err = ConfigError{Target: target, Reason: "empty target class name"}
	}
	return b
}

// Target returns the class name this configuration is for.
func (b *Builder) Target() string { return b.target }

// Err returns the sticky configuration error, if any setter received
// malformed input.
func (b *Builder) Err() error { return b.err }

// fail records the first configuration error and returns the builder so
// setters stay chainable after a failure.
func (b *Builder) fail(reason string) *Builder {
	if b.err == nil {
		b.err = ConfigError{Target: b.target, Reason: reason}
	}
	return b
}

// SetPackage sets the package name used by the source renderer. The
// dynamic renderer ignores it. Default: "adapters".
func (b *Builder) SetPackage(name string) *Builder {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.fail("empty package name")
	}
	b.pkg = name
	return b
}

// SetConstructorDelegate names the class whose constructor produces the
// wrapped object before adapter construction. Enabling a delegate pulls the
// reflection/type-check capability into the required modules.
func (b *Builder) SetConstructorDelegate(name string) *Builder {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.fail("empty constructor delegate")
	}
	b.delegate = name
	b.modules[moduleReflect] = struct{}{}
	return b
}

// SetBaseClasses normalizes names into an ordered unique set and replaces
// the base classes. The ObjectSentinel is valid only as the sole entry.
func (b *Builder) SetBaseClasses(names ...string) *Builder {
	var normalized []string
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return b.fail("empty base class name")
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	if len(normalized) == 0 {
		return b.fail("base classes must be non-empty")
	}
	if _, sentinel := seen[ObjectSentinel]; sentinel && len(normalized) > 1 {
		return b.fail(ObjectSentinel + " must be the only base class")
	}
	b.bases = normalized
	return b
}

// SetAutoload toggles catch-all forwarding of unmapped method calls.
// Enabling pulls the error-reporting capability into the required modules.
func (b *Builder) SetAutoload(enabled bool) *Builder {
	b.autoload = enabled
	if enabled {
		b.modules[moduleReport] = struct{}{}
	} else {
		delete(b.modules, moduleReport)
	}
	return b
}

// SetMethods wholesale replaces the method map with same-named forwards for
// each listed name.
func (b *Builder) SetMethods(names ...string) *Builder {
	fresh := make(map[string]string, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return b.fail("empty method name")
		}
		fresh[n] = n
	}
	b.methods = fresh
	return b
}

// SetMethod declares one forwarding entry. With two names the first is the
// generated method and the second the target on the wrapped object; with
// one name it forwards to itself. Any other arity is a configuration error.
// On key collision the last write wins.
func (b *Builder) SetMethod(names ...string) *Builder {
	switch len(names) {
	case 1:
		names = []string{names[0], names[0]}
	case 2:
		// generated -> target
	default:
		return b.fail("SetMethod expects 1 or 2 names, got " + strconv.Itoa(len(names)))
	}
	generated := strings.TrimSpace(names[0])
	target := strings.TrimSpace(names[1])
	if generated == "" || target == "" {
		return b.fail("empty method name")
	}
	b.methods[generated] = target
	return b
}

// identityDelegated reports whether the configuration carries the
// ObjectSentinel, i.e. identity queries go to the wrapped object.
func (b *Builder) identityDelegated() bool {
	return len(b.bases) == 1 && b.bases[0] == ObjectSentinel
}

// Define interprets an ordered sequence of key/value directives into a
// Builder. Recognized keys are exactly NEW (constructor delegate), ISA
// (base classes, string or []string, with the ObjectSentinel), AUTOLOAD
// (bool) and METHODS ([]string bulk same-name forwards); every other key
// declares one generated -> target forwarding method whose value must be a
// non-empty string.
//
// Define returns the builder together with its sticky error so callers can
// chain further setters or stop at the first malformed directive.
func Define(target string, directives ...Directive) (*Builder, error) {
	b := NewBuilder(target)
	for _, d := range directives {
		switch d.Key {
		case DirectiveNew:
			s, ok := d.Value.(string)
			if !ok {
				b.fail("NEW expects a class name string, got " + valueKind(d.Value))
				break
			}
			b.SetConstructorDelegate(s)
		case DirectiveIsa:
			switch v := d.Value.(type) {
			case string:
				b.SetBaseClasses(v)
			case []string:
				b.SetBaseClasses(v...)
			default:
				b.fail("ISA expects a string or []string, got " + valueKind(d.Value))
			}
		case DirectiveAutoload:
			v, ok := d.Value.(bool)
			if !ok {
				b.fail("AUTOLOAD expects a bool, got " + valueKind(d.Value))
				break
			}
			b.SetAutoload(v)
		case DirectiveMethods:
			v, ok := d.Value.([]string)
			if !ok {
				b.fail("METHODS expects a []string, got " + valueKind(d.Value))
				break
			}
			b.SetMethods(v...)
		case "":
			b.fail("empty directive key")
		default:
			s, ok := d.Value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				b.fail("directive " + strconv.Quote(d.Key) + " expects a target method name")
				break
			}
			b.SetMethod(d.Key, s)
		}
	}
	return b, b.err
}

// valueKind describes a directive value's dynamic type for error messages.
func valueKind(v any) string {
	if v == nil {
		return "nil"
	}
	return typeName(v)
}
