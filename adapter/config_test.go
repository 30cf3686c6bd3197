package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireConfigErr asserts err is a ConfigError for target containing
// wantSub in its reason.
func requireConfigErr(t *testing.T, err error, target, wantSub string) {
	t.Helper()

	var cfg ConfigError
	require.True(t, errors.As(err, &cfg), "got %v", err)
	assert.Equal(t, target, cfg.Target)
	assert.Contains(t, cfg.Reason, wantSub)
}

//
// -----------------------------------------------------------------------------
// NewBuilder defaults
// -----------------------------------------------------------------------------

func TestNewBuilder_Defaults(t *testing.T) {
	t.Parallel()

	b := NewBuilder("My::Clear")
	require.NoError(t, b.Err())
	assert.Equal(t, "My::Clear", b.Target())
	assert.Equal(t, []string{BaseClass}, b.bases)
	assert.Empty(t, b.methods)
	assert.Empty(t, b.modules)
	assert.False(t, b.autoload)
	assert.Empty(t, b.delegate)
}

func TestNewBuilder_EmptyTarget(t *testing.T) {
	t.Parallel()

	b := NewBuilder("  ")
	requireConfigErr(t, b.Err(), "  ", "empty target class name")
}

//
// -----------------------------------------------------------------------------
// Setters
// -----------------------------------------------------------------------------

func TestSetConstructorDelegate_AddsReflectModule(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetConstructorDelegate("File::Handle")
	require.NoError(t, b.Err())
	assert.Equal(t, "File::Handle", b.delegate)
	assert.Contains(t, b.modules, moduleReflect)
}

func TestSetAutoload_TogglesReportModule(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetAutoload(true)
	assert.Contains(t, b.modules, moduleReport)

	b.SetAutoload(false)
	assert.NotContains(t, b.modules, moduleReport)
}

func TestSetBaseClasses_NormalizesOrderedSet(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetBaseClasses(" A ", "B", "A")
	require.NoError(t, b.Err())
	assert.Equal(t, []string{"A", "B"}, b.bases)
}

func TestSetBaseClasses_SentinelMustBeAlone(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetBaseClasses(ObjectSentinel, "Other")
	requireConfigErr(t, b.Err(), "T", "must be the only base class")

	b = NewBuilder("T").SetBaseClasses(ObjectSentinel)
	require.NoError(t, b.Err())
	assert.True(t, b.identityDelegated())
}

func TestSetBaseClasses_Empty(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetBaseClasses()
	requireConfigErr(t, b.Err(), "T", "non-empty")
}

func TestSetMethods_ReplacesWholesale(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetMethod("foo", "bar").SetMethods("baz", "qux")
	require.NoError(t, b.Err())
	assert.Equal(t, map[string]string{"baz": "baz", "qux": "qux"}, b.methods)
}

func TestSetMethod_Arity(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetMethod("foo")
	require.NoError(t, b.Err())
	assert.Equal(t, "foo", b.methods["foo"])

	b.SetMethod("alias", "target")
	assert.Equal(t, "target", b.methods["alias"])

	// Last write wins on collision.
	b.SetMethod("alias", "other")
	assert.Equal(t, "other", b.methods["alias"])

	bad := NewBuilder("T").SetMethod("a", "b", "c")
	requireConfigErr(t, bad.Err(), "T", "expects 1 or 2 names, got 3")

	bad = NewBuilder("T").SetMethod()
	requireConfigErr(t, bad.Err(), "T", "expects 1 or 2 names, got 0")
}

// TestSetters_StickyError verifies the first malformed input wins and later
// valid calls do not clear it.
func TestSetters_StickyError(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T").SetMethod().SetMethod("fine")
	requireConfigErr(t, b.Err(), "T", "got 0")

	_, err := b.Render()
	requireConfigErr(t, err, "T", "got 0")

	_, err = b.Class(nil)
	requireConfigErr(t, err, "T", "got 0")
}

//
// -----------------------------------------------------------------------------
// Define — directive interpretation
// -----------------------------------------------------------------------------

func TestDefine_RecognizedDirectives(t *testing.T) {
	t.Parallel()

	b, err := Define("Cache::Facade",
		D(DirectiveNew, "Cache::Backend"),
		D(DirectiveIsa, ObjectSentinel),
		D(DirectiveAutoload, true),
		D(DirectiveMethods, []string{"get", "put"}),
		D("fetch", "get"),
	)
	require.NoError(t, err)
	assert.Equal(t, "Cache::Backend", b.delegate)
	assert.True(t, b.identityDelegated())
	assert.True(t, b.autoload)
	assert.Equal(t, map[string]string{"get": "get", "put": "put", "fetch": "get"}, b.methods)
	assert.Contains(t, b.modules, moduleReflect)
	assert.Contains(t, b.modules, moduleReport)
}

func TestDefine_IsaList(t *testing.T) {
	t.Parallel()

	b, err := Define("T", D(DirectiveIsa, []string{"A", "B"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, b.bases)
}

// TestDefine_OrderMatters verifies METHODS replaces earlier explicit
// declarations, since directives apply in order.
func TestDefine_OrderMatters(t *testing.T) {
	t.Parallel()

	b, err := Define("T",
		D("fetch", "get"),
		D(DirectiveMethods, []string{"put"}),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"put": "put"}, b.methods)
}

func TestDefine_MalformedDirectives(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		d       Directive
		wantSub string
	}{
		{"new not string", D(DirectiveNew, 7), "NEW expects a class name string"},
		{"isa bad type", D(DirectiveIsa, 7), "ISA expects a string or []string"},
		{"autoload not bool", D(DirectiveAutoload, "yes"), "AUTOLOAD expects a bool"},
		{"methods bad type", D(DirectiveMethods, "get"), "METHODS expects a []string"},
		{"empty key", D("", "x"), "empty directive key"},
		{"mapping not string", D("fetch", 1), `directive "fetch" expects a target method name`},
		{"mapping empty", D("fetch", " "), `directive "fetch" expects a target method name`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Define("T", tc.d)
			requireConfigErr(t, err, "T", tc.wantSub)
		})
	}
}
