package adapter

import (
	"errors"
	"strconv"
)

var (
	// ErrNotObject is returned when a construction path is handed a candidate
	// that is not a legitimate object instance (a primitive, a nil pointer, or
	// nothing at all). It marks the soft, recoverable construction miss.
	ErrNotObject = errors.New("adapt: candidate is not an object instance")

	// ErrReleased is returned when a forward is attempted on a holder whose
	// wrapped object was already released by Close.
	ErrReleased = errors.New("adapt: wrapped object already released")

	// ErrConstructorPanic is wrapped into the error returned when a delegate
	// constructor panics during resolution. Some callers want to branch on
	// "the delegate blew up" separately from "the delegate is missing".
	ErrConstructorPanic = errors.New("adapt: panic during delegate construction")
)

// ConfigError reports a fatal configuration problem: malformed setter or
// directive input, a failed render, or a failed install. It always carries
// the offending target class name.
type ConfigError struct {
	// Target is the class name the configuration was for.
	Target string

	// Reason describes what was wrong with the configuration.
	Reason string
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	// Example: adapt: invalid configuration for class "My::Clear": empty method name
	return "adapt: invalid configuration for class " + strconv.Quote(e.Target) + ": " + e.Reason
}

// MisuseError is the payload panicked with when an instance-only operation
// is invoked at the type level (no instance). It is fatal and never caught
// inside this package.
type MisuseError struct {
	// Class is the adapter class name, when known at the call site.
	Class string

	// Method is the method whose invocation was misused.
	Method string
}

// Error implements the error interface.
func (e MisuseError) Error() string {
	// Example: adapt: no instance for method call "flush" on class "My::Clear"
	return "adapt: no instance for method call " + strconv.Quote(e.Method) + " on class " + strconv.Quote(e.Class)
}

// UnknownMethodError is returned when a call names a method that is neither
// explicitly mapped nor reachable through autoload forwarding.
type UnknownMethodError struct {
	// Class names where resolution was attempted: the adapter class for
	// unmapped calls, or the wrapped object's type for failed forwards.
	Class string

	// Method is the requested method name.
	Method string
}

// Error implements the error interface.
func (e UnknownMethodError) Error() string {
	// Example: adapt: unknown method "fetch" on "Cache::Facade"
	return "adapt: unknown method " + strconv.Quote(e.Method) + " on " + strconv.Quote(e.Class)
}

// BadForwardError is returned when a forwarded call cannot be applied to the
// resolved method: argument count mismatch or an argument of an unusable
// type. Failures raised by the wrapped object itself are never translated
// into this type; they propagate unchanged.
type BadForwardError struct {
	// Class is the wrapped object's type.
	Class string

	// Method is the resolved target method name.
	Method string

	// Reason describes the mismatch.
	Reason string
}

// Error implements the error interface.
func (e BadForwardError) Error() string {
	// Example: adapt: cannot forward to "Put" on "*examples.Store": want 2 arguments, got 1
	return "adapt: cannot forward to " + strconv.Quote(e.Method) + " on " + strconv.Quote(e.Class) + ": " + e.Reason
}
