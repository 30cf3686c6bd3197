package adapter

import (
	"fmt"
	"strconv"
	"sync"
)

// Constructor produces a wrapped-object candidate from construction
// arguments. Delegate classes are resolved to one of these.
type Constructor func(args ...any) any

// Registry is the per-process namespace for installed adapter classes and
// the constructor bag used to resolve constructor delegates.
//
// It replaces side-effecting evaluation of generated text with explicit,
// duplicate-guarded registration. Lookups are safe under concurrent
// readers; installers of the same name must serialize themselves (the last
// writer wins on deliberate redefinition).
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
	ctors   map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: map[string]*Class{},
		ctors:   map[string]Constructor{},
	}
}

// Install registers a class under its name. Installing a name twice is a
// configuration error; deliberate redefinition goes through Reinstall.
func (r *Registry) Install(c *Class) error {
	if c == nil || c.name == "" {
		return ConfigError{Reason: "install of a nil or unnamed class"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.classes[c.name]; exists {
		return ConfigError{Target: c.name, Reason: "class already installed"}
	}
	r.classes[c.name] = c
	return nil
}

// Reinstall registers a class under its name, replacing any previous
// installation. This is the explicit redefinition path.
func (r *Registry) Reinstall(c *Class) error {
	if c == nil || c.name == "" {
		return ConfigError{Reason: "reinstall of a nil or unnamed class"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.name] = c
	return nil
}

// Lookup returns the installed class for name.
func (r *Registry) Lookup(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// ProvideConstructor stores a delegate constructor under a name and returns
// the registry for chaining. Providing the same name again overwrites.
func (r *Registry) ProvideConstructor(name string, ctor Constructor) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[name] = ctor
	return r
}

// construct resolves name to a constructor, the constructor bag first and
// then installed classes (whose instances become the wrapped object), and
// invokes it with args. Resolution failures are configuration errors
// reported against class, the adapter class doing the constructing.
// Constructor panics are converted into errors at this boundary so a
// misbehaving delegate cannot take the caller down.
func (r *Registry) construct(class, name string, args []any) (obj any, err error) {
	r.mu.RLock()
	ctor := r.ctors[name]
	var cls *Class
	if ctor == nil {
		cls = r.classes[name]
	}
	r.mu.RUnlock()

	if ctor == nil && cls == nil {
		return nil, ConfigError{
			Target: class,
			Reason: "no constructor or installed class named " + strconv.Quote(name),
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			obj = nil
			err = fmt.Errorf("%w: %s: %v", ErrConstructorPanic, name, rec)
		}
	}()

	if ctor != nil {
		return ctor(args...), nil
	}
	inst, err := cls.New(args...)
	if err != nil {
		return nil, err
	}
	return inst, nil
}
