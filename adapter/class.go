package adapter

import "strconv"

// Class is the dynamic rendering of an adapter configuration: a dispatch
// table from generated method names to target method names on the wrapped
// object, plus the configured fallback behaviors.
//
// A Class is immutable after creation; its configuration snapshot is taken
// by Builder.Class and never shared with the builder.
type Class struct {
	name     string
	bases    []string
	methods  map[string]string
	autoload bool
	identity bool
	delegate string
	reg      *Registry
}

// Class compiles the configuration into a dynamic Class linked against reg.
//
// reg may be nil when the configuration has no constructor delegate; with a
// delegate it is required, since the delegate is resolved through the
// registry at construction time. Compilation is all-or-nothing: a Class or
// an error, never a partially usable value.
func (b *Builder) Class(reg *Registry) (*Class, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.delegate != "" && reg == nil {
		return nil, ConfigError{
			Target: b.target,
			Reason: "constructor delegate " + strconv.Quote(b.delegate) + " requires a registry",
		}
	}

	methods := make(map[string]string, len(b.methods))
	for k, v := range b.methods {
		methods[k] = v
	}
	bases := make([]string, len(b.bases))
	copy(bases, b.bases)

	return &Class{
		name:     b.target,
		bases:    bases,
		methods:  methods,
		autoload: b.autoload,
		identity: b.identityDelegated(),
		delegate: b.delegate,
		reg:      reg,
	}, nil
}

// Install compiles the configuration and installs the resulting Class into
// reg in one step, the dynamic analog of rendering source and evaluating
// it. It fails with a ConfigError naming the target class when compilation
// fails, the registry is nil, or the name is already installed.
func (b *Builder) Install(reg *Registry) (*Class, error) {
	if reg == nil {
		return nil, ConfigError{Target: b.target, Reason: "install requires a registry"}
	}
	c, err := b.Class(reg)
	if err != nil {
		return nil, err
	}
	if err := reg.Install(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// New constructs an adapter instance.
//
// Without a delegate it takes exactly one candidate object and wraps it;
// a non-object candidate (or any other arity) is the soft construction
// miss, reported as ErrNotObject.
//
// With a delegate, args are passed to the delegate's constructor, resolved
// through the registry; a missing delegate or a panicking constructor is a
// configuration error, while a delegate yielding a non-object is again the
// soft ErrNotObject miss.
func (c *Class) New(args ...any) (*Instance, error) {
	var candidate any
	if c.delegate != "" {
		obj, err := c.reg.construct(c.name, c.delegate, args)
		if err != nil {
			return nil, err
		}
		candidate = obj
	} else {
		if len(args) != 1 {
			return nil, ErrNotObject
		}
		candidate = args[0]
	}

	base, ok := Wrap(candidate)
	if !ok {
		return nil, ErrNotObject
	}
	return &Instance{class: c, base: base}, nil
}

// Call dispatches a method call for inst: explicitly mapped names forward
// to their targets, anything else forwards by name when autoload is
// enabled, and otherwise fails with UnknownMethodError.
//
// Invoking Call at the type level (nil inst) is the misuse case: it panics
// with a MisuseError naming the method and the class, in place of the
// usual "no such method" failure.
func (c *Class) Call(inst *Instance, name string, args ...any) ([]any, error) {
	if inst == nil || inst.base == nil {
		panic(MisuseError{Class: c.name, Method: name})
	}
	if target, ok := c.methods[name]; ok {
		return inst.base.Forward(target, args...)
	}
	if c.autoload {
		return inst.base.Forward(name, args...)
	}
	return nil, UnknownMethodError{Class: c.name, Method: name}
}

// Instance is one adapter object of a dynamic Class: a holder plus the
// class dispatch table.
type Instance struct {
	class *Class
	base  *Adapter
}

// Class returns the class this instance was constructed from.
func (i *Instance) Class() *Class {
	if i == nil {
		return nil
	}
	return i.class
}

// Object returns the wrapped object. Panics with a MisuseError when called
// without an instance.
func (i *Instance) Object() any {
	if i == nil {
		panic(MisuseError{Method: "Object"})
	}
	return i.base.Object()
}

// Call dispatches name on this instance. See Class.Call.
func (i *Instance) Call(name string, args ...any) ([]any, error) {
	if i == nil || i.class == nil {
		panic(MisuseError{Method: name})
	}
	return i.class.Call(i, name, args...)
}

// Isa answers a type-membership query. By default an instance is its class
// (and the class's declared bases); under the ObjectSentinel configuration
// the query is delegated to the wrapped object's concrete type instead.
func (i *Instance) Isa(name string) bool {
	if i == nil || i.class == nil || name == "" {
		return false
	}
	if i.class.identity {
		return ObjectIsa(i.base.Object(), name)
	}
	if name == i.class.name {
		return true
	}
	for _, b := range i.class.bases {
		if b == name {
			return true
		}
	}
	return false
}

// Can answers a capability query: whether a call to name would dispatch.
// By default that means an explicit mapping, or any wrapped-object method
// when autoload is on; under the ObjectSentinel configuration the query is
// delegated wholesale to the wrapped object.
func (i *Instance) Can(name string) bool {
	if i == nil || i.class == nil || name == "" {
		return false
	}
	if i.class.identity {
		return ObjectCan(i.base.Object(), name)
	}
	if _, ok := i.class.methods[name]; ok {
		return true
	}
	if i.class.autoload {
		return ObjectCan(i.base.Object(), name)
	}
	return false
}

// Close releases the instance, forwarding teardown to the wrapped object
// when it exposes one. Idempotent; safe on nil.
func (i *Instance) Close() error {
	if i == nil || i.base == nil {
		return nil
	}
	return i.base.Close()
}
