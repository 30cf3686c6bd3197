package adapter

import (
	"reflect"
	"strconv"

	"github.com/stoewer/go-strcase"
)

// Adapter is the wrapped-object holder. It owns exactly one object
// reference, set at construction and read-only afterwards.
//
// Adapter defines the contract, not a complete wrapper: it forwards no
// domain methods of its own. Generated adapter types embed *Adapter and add
// forwarding methods on top; dynamic classes hold one per Instance.
type Adapter struct {
	obj      any
	released bool
}

// Wrap constructs a holder around candidate.
//
// It succeeds iff candidate is a legitimate object instance (see IsObject).
// Anything else (nil, a primitive, a nil pointer) yields (nil, false).
// This is a soft miss, not an error: callers are expected to test-and-branch.
func Wrap(candidate any) (*Adapter, bool) {
	if !IsObject(candidate) {
		return nil, false
	}
	return &Adapter{obj: candidate}, true
}

// IsObject reports whether candidate is a legitimate object instance: a
// struct value, or a non-nil pointer to one. Primitives, nils, maps, slices
// and functions are not objects for wrapping purposes.
func IsObject(candidate any) bool {
	if candidate == nil {
		return false
	}
	v := reflect.ValueOf(candidate)
	switch v.Kind() {
	case reflect.Pointer:
		return !v.IsNil() && v.Elem().Kind() == reflect.Struct
	case reflect.Struct:
		return true
	default:
		return false
	}
}

// Object returns the held wrapped object.
//
// Calling Object without an instance (nil receiver) is a programmer error
// and panics with a MisuseError rather than returning a default. This guards
// the common misuse of invoking the accessor at the type level.
func (a *Adapter) Object() any {
	if a == nil {
		panic(MisuseError{Class: "adapter.Adapter", Method: "Object"})
	}
	return a.obj
}

// Close releases the wrapped object, forwarding teardown first when the
// object exposes one (Close() error, Close(), or Teardown()).
//
// Close is idempotent; only the first call reaches the wrapped object.
// After Close the holder is dead: Object returns nil and forwards fail
// with ErrReleased.
func (a *Adapter) Close() error {
	if a == nil || a.released {
		return nil
	}
	a.released = true
	obj := a.obj
	a.obj = nil
	switch t := obj.(type) {
	case interface{ Close() error }:
		return t.Close()
	case interface{ Close() }:
		t.Close()
		return nil
	case interface{ Teardown() }:
		t.Teardown()
		return nil
	}
	return nil
}

// Forward invokes name on the wrapped object, passing args through unchanged,
// and returns whatever the call returns as a value slice, untransformed.
//
// Resolution tries the literal name first, then its exported UpperCamelCase
// form, so directive-style names ("flush", "read_line") reach Go methods
// ("Flush", "ReadLine").
//
// Forward reports failures on the adapter's side of the call (unknown
// method, argument mismatch) as typed errors. Failures raised by the
// wrapped object propagate unchanged: error results travel inside the
// returned slice and panics are not recovered.
//
// Calling Forward without an instance (nil receiver) panics with a
// MisuseError.
func (a *Adapter) Forward(name string, args ...any) ([]any, error) {
	if a == nil {
		panic(MisuseError{Class: "adapter.Adapter", Method: name})
	}
	if a.released {
		return nil, ErrReleased
	}
	m, ok := methodOn(a.obj, name)
	if !ok {
		return nil, UnknownMethodError{Class: typeName(a.obj), Method: name}
	}
	in, err := forwardArgs(typeName(a.obj), name, m.Type(), args)
	if err != nil {
		return nil, err
	}
	out := m.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// ObjectIsa reports whether name identifies obj's concrete type. It accepts
// the reflect type string ("examples.Store", "*examples.Store"), the bare
// type name ("Store"), and the fully qualified package path form.
//
// This is the identity query used when a configuration delegates type
// identity to the wrapped object instead of the adapter.
func ObjectIsa(obj any, name string) bool {
	if obj == nil || name == "" {
		return false
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch name {
	case t.String(), "*" + t.String(), t.Name():
		return true
	}
	if pp := t.PkgPath(); pp != "" && name == pp+"."+t.Name() {
		return true
	}
	return false
}

// ObjectCan reports whether obj exposes a method reachable under name,
// using the same resolution as Forward.
func ObjectCan(obj any, name string) bool {
	if obj == nil || name == "" {
		return false
	}
	_, ok := methodOn(obj, name)
	return ok
}

// methodOn resolves a callable method on obj: literal name first, then the
// exported UpperCamelCase form.
func methodOn(obj any, name string) (reflect.Value, bool) {
	if obj == nil || name == "" {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(obj)
	m := v.MethodByName(name)
	if !m.IsValid() {
		m = v.MethodByName(strcase.UpperCamelCase(name))
	}
	return m, m.IsValid()
}

// typeName returns the reflect type string of obj for error reporting.
func typeName(obj any) string {
	if obj == nil {
		return "<nil>"
	}
	return reflect.TypeOf(obj).String()
}

// forwardArgs converts args into call values for a method of type mt,
// honoring variadic tails. Nil args become zero values of the parameter
// type. Values are passed as-is when assignable and converted when the
// types allow it; anything else is a BadForwardError.
func forwardArgs(class, method string, mt reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, BadForwardError{
				Class:  class,
				Method: method,
				Reason: "want at least " + strconv.Itoa(numIn-1) + " arguments, got " + strconv.Itoa(len(args)),
			}
		}
	} else if len(args) != numIn {
		return nil, BadForwardError{
			Class:  class,
			Method: method,
			Reason: "want " + strconv.Itoa(numIn) + " arguments, got " + strconv.Itoa(len(args)),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= numIn-1 {
			pt = mt.In(numIn - 1).Elem()
		} else {
			pt = mt.In(i)
		}

		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}

		av := reflect.ValueOf(arg)
		switch {
		case av.Type().AssignableTo(pt):
			in[i] = av
		case av.Type().ConvertibleTo(pt):
			in[i] = av.Convert(pt)
		default:
			return nil, BadForwardError{
				Class:  class,
				Method: method,
				Reason: "argument " + strconv.Itoa(i) + " of type " + av.Type().String() + " not usable as " + pt.String(),
			}
		}
	}
	return in, nil
}
