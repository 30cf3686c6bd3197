package adapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// GoName
// -----------------------------------------------------------------------------

func TestGoName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"My::Clear", "MyClear"},
		{"read_line", "ReadLine"},
		{"foo", "Foo"},
		{"Store::Backend::V2", "StoreBackendV2"},
		{"already-kebab", "AlreadyKebab"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GoName(tc.in), tc.in)
	}
}

//
// -----------------------------------------------------------------------------
// Render
// -----------------------------------------------------------------------------

func render(t *testing.T, b *Builder) string {
	t.Helper()
	src, err := b.Render()
	require.NoError(t, err)
	return src
}

func TestRender_Minimal(t *testing.T) {
	t.Parallel()

	src := render(t, NewBuilder("My::Clear"))

	assert.Contains(t, src, "Code generated by adaptergen for adapter class My::Clear. DO NOT EDIT.")
	assert.Contains(t, src, "package adapters")
	assert.Contains(t, src, "Declared base classes: adapter.Adapter")
	assert.Contains(t, src, "type MyClear struct {")
	assert.Contains(t, src, "*adapter.Adapter")
	assert.Contains(t, src, "func WrapMyClear(candidate any) (*MyClear, bool)")
	assert.Contains(t, src, "adaptergen: ok")

	// Nothing beyond the declared surface.
	assert.NotContains(t, src, "func NewMyClear")
	assert.NotContains(t, src, "func (a *MyClear) Call(")
	assert.NotContains(t, src, "func (a *MyClear) Isa(")
}

func TestRender_PackageOverride(t *testing.T) {
	t.Parallel()

	src := render(t, NewBuilder("T").SetPackage("clearing"))
	assert.Contains(t, src, "package clearing")
}

func TestRender_ForwardingMethods(t *testing.T) {
	t.Parallel()

	b := NewBuilder("My::Clear").
		SetMethod("foo").
		SetMethod("bar", "flush")
	src := render(t, b)

	assert.Contains(t, src, "func (a *MyClear) Foo(args ...any) ([]any, error)")
	assert.Contains(t, src, `return a.Forward("foo", args...)`)
	assert.Contains(t, src, "func (a *MyClear) Bar(args ...any) ([]any, error)")
	assert.Contains(t, src, `return a.Forward("flush", args...)`)

	// Sorted emission: "bar" before "foo".
	assert.Less(t, strings.Index(src, ") Bar("), strings.Index(src, ") Foo("))
}

func TestRender_ConstructorDelegate(t *testing.T) {
	t.Parallel()

	src := render(t, NewBuilder("My::Clear").SetConstructorDelegate("Store::Backend"))

	assert.Contains(t, src, `"reflect"`)
	assert.Contains(t, src, "func NewMyClear(args ...any) (*MyClear, bool)")
	assert.Contains(t, src, "obj := NewStoreBackend(args...)")
	assert.Contains(t, src, "v := reflect.ValueOf(obj)")
	assert.Contains(t, src, "v.Kind() == reflect.Pointer && v.IsNil()")
	assert.Contains(t, src, "return WrapMyClear(obj)")
}

func TestRender_SentinelIdentity(t *testing.T) {
	t.Parallel()

	src := render(t, NewBuilder("My::Clear").SetBaseClasses(ObjectSentinel))

	assert.Contains(t, src, "func (a *MyClear) Isa(name string) bool")
	assert.Contains(t, src, "return adapter.ObjectIsa(a.Object(), name)")
	assert.Contains(t, src, "func (a *MyClear) Can(name string) bool")
	assert.Contains(t, src, "return adapter.ObjectCan(a.Object(), name)")

	// The sentinel is an identity switch, not a declared base.
	assert.NotContains(t, src, "Declared base classes")
	assert.NotContains(t, src, "_OBJECT_")
}

func TestRender_Autoload(t *testing.T) {
	t.Parallel()

	b := NewBuilder("My::Clear").
		SetAutoload(true).
		SetMethod("bar", "flush")
	src := render(t, b)

	assert.Contains(t, src, `"fmt"`)
	assert.Contains(t, src, "func (a *MyClear) Call(name string, args ...any) ([]any, error)")
	assert.Contains(t, src, `panic(fmt.Sprintf("adapt: no instance for method call %q on class %q", name, "My::Clear"))`)

	// Explicit mappings win over the catch-all.
	assert.Contains(t, src, "switch name {")
	assert.Contains(t, src, `case "bar":`)
	assert.Contains(t, src, "return a.Bar(args...)")
	assert.Contains(t, src, "return a.Forward(name, args...)")
}

func TestRender_AutoloadWithoutMethodsHasNoSwitch(t *testing.T) {
	t.Parallel()

	src := render(t, NewBuilder("T").SetAutoload(true))
	assert.NotContains(t, src, "switch name {")
	assert.Contains(t, src, "return a.Forward(name, args...)")
}

func TestRender_StickyErrorShortCircuits(t *testing.T) {
	t.Parallel()

	b := NewBuilder("")
	src, err := b.Render()
	assert.Empty(t, src)
	var cfg ConfigError
	require.True(t, errors.As(err, &cfg))
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *Builder {
		return NewBuilder("My::Clear").
			SetBaseClasses(ObjectSentinel).
			SetConstructorDelegate("Store::Backend").
			SetAutoload(true).
			SetMethod("bar", "flush").
			SetMethod("foo")
	}
	first := render(t, build())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render(t, build()))
	}
}

func TestSortedModules_ExcludesHolder(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").
		SetConstructorDelegate("D").
		SetAutoload(true)
	assert.Equal(t, []string{"fmt", "reflect"}, b.sortedModules())
}
