package adapter

import (
	"bytes"
	"sort"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/stoewer/go-strcase"
)

// basePkg is the import path of this package, referenced by every
// generated source unit through its embedded holder.
const basePkg = "github.com/sghaida/adapt/adapter"

// GoName converts an adapter class or method name into an exported Go
// identifier: separator runs (including "::") become word breaks, then the
// result is upper-camel-cased. "My::Clear" -> "MyClear", "read_line" ->
// "ReadLine".
func GoName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
	return strcase.UpperCamelCase(cleaned)
}

// Render produces the complete Go source text for the configuration: a
// header naming the target class, deterministic capability imports, the
// adapter type embedding the holder, the wrap constructor, the delegate
// constructor when configured, one forwarding method per map entry in
// sorted order, the identity-delegating Isa/Can pair under the
// ObjectSentinel, and the catch-all Call under autoload.
//
// Rendering is all-or-nothing: complete text or an error, never a partial
// unit. The text is gofmt-formatted and terminated with a success marker.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	typeName := GoName(b.target)
	wrapName := "Wrap" + typeName

	f := jen.NewFile(b.pkg)
	f.HeaderComment("Code generated by adaptergen for adapter class " + b.target + ". DO NOT EDIT.")
	f.ImportName(basePkg, "adapter")
	for _, m := range b.sortedModules() {
		f.ImportName(m, m)
	}

	// Type declaration. Base classes other than the holder are declarative
	// only; the sentinel instead switches identity queries below.
	if !b.identityDelegated() {
		f.Comment("Declared base classes: " + strings.Join(b.bases, ", "))
	}
	f.Commentf("%s is an adapter around a single wrapped object.", typeName)
	f.Type().Id(typeName).Struct(
		jen.Op("*").Qual(basePkg, "Adapter"),
	)

	// Wrap constructor: the construction contract of the holder, typed.
	f.Commentf("%s wraps candidate, soft-failing when it is not an object instance.", wrapName)
	f.Func().Id(wrapName).
		Params(jen.Id("candidate").Any()).
		Params(jen.Op("*").Id(typeName), jen.Bool()).
		Block(
			jen.List(jen.Id("base"), jen.Id("ok")).Op(":=").Qual(basePkg, "Wrap").Call(jen.Id("candidate")),
			jen.If(jen.Op("!").Id("ok")).Block(
				jen.Return(jen.Nil(), jen.False()),
			),
			jen.Return(jen.Op("&").Id(typeName).Values(jen.Dict{
				jen.Id("Adapter"): jen.Id("base"),
			}), jen.True()),
		)

	if b.delegate != "" {
		delegateCtor := "New" + GoName(b.delegate)
		f.Commentf("New%s constructs the wrapped object via %s, which must exist in this", typeName, delegateCtor)
		f.Comment("package with the form func(args ...any) any, and wraps its result.")
		f.Comment("A non-object construction result is the soft miss (nil, false).")
		f.Func().Id("New"+typeName).
			Params(jen.Id("args").Op("...").Any()).
			Params(jen.Op("*").Id(typeName), jen.Bool()).
			Block(
				jen.Id("obj").Op(":=").Id(delegateCtor).Call(jen.Id("args").Op("...")),
				jen.If(
					jen.Id("v").Op(":=").Qual("reflect", "ValueOf").Call(jen.Id("obj")),
					jen.Op("!").Id("v").Dot("IsValid").Call().
						Op("||").Id("v").Dot("Kind").Call().Op("==").Qual("reflect", "Pointer").
						Op("&&").Id("v").Dot("IsNil").Call(),
				).Block(
					jen.Return(jen.Nil(), jen.False()),
				),
				jen.Return(jen.Id(wrapName).Call(jen.Id("obj"))),
			)
	}

	for _, generated := range b.sortedMethods() {
		target := b.methods[generated]
		mName := GoName(generated)
		f.Commentf("%s forwards to %q on the wrapped object.", mName, target)
		f.Func().
			Params(jen.Id("a").Op("*").Id(typeName)).
			Id(mName).
			Params(jen.Id("args").Op("...").Any()).
			Params(jen.Index().Any(), jen.Error()).
			Block(
				jen.Return(jen.Id("a").Dot("Forward").Call(jen.Lit(target), jen.Id("args").Op("..."))),
			)
	}

	if b.identityDelegated() {
		f.Comment("Isa delegates type-identity queries to the wrapped object.")
		f.Func().
			Params(jen.Id("a").Op("*").Id(typeName)).
			Id("Isa").
			Params(jen.Id("name").String()).
			Bool().
			Block(
				jen.Return(jen.Qual(basePkg, "ObjectIsa").Call(jen.Id("a").Dot("Object").Call(), jen.Id("name"))),
			)
		f.Comment("Can delegates capability queries to the wrapped object.")
		f.Func().
			Params(jen.Id("a").Op("*").Id(typeName)).
			Id("Can").
			Params(jen.Id("name").String()).
			Bool().
			Block(
				jen.Return(jen.Qual(basePkg, "ObjectCan").Call(jen.Id("a").Dot("Object").Call(), jen.Id("name"))),
			)
	}

	if b.autoload {
		var body []jen.Code
		body = append(body,
			jen.If(jen.Id("a").Op("==").Nil().Op("||").Id("a").Dot("Adapter").Op("==").Nil()).Block(
				jen.Panic(jen.Qual("fmt", "Sprintf").Call(
					jen.Lit("adapt: no instance for method call %q on class %q"),
					jen.Id("name"),
					jen.Lit(b.target),
				)),
			),
		)
		if len(b.methods) > 0 {
			var cases []jen.Code
			for _, generated := range b.sortedMethods() {
				cases = append(cases, jen.Case(jen.Lit(generated)).Block(
					jen.Return(jen.Id("a").Dot(GoName(generated)).Call(jen.Id("args").Op("..."))),
				))
			}
			body = append(body, jen.Switch(jen.Id("name")).Block(cases...))
		}
		body = append(body,
			jen.Return(jen.Id("a").Dot("Forward").Call(jen.Id("name"), jen.Id("args").Op("..."))),
		)

		f.Comment("Call forwards any method name without an explicit forwarding method to the")
		f.Comment("wrapped object. Calling it without an instance is fatal.")
		f.Func().
			Params(jen.Id("a").Op("*").Id(typeName)).
			Id("Call").
			Params(jen.Id("name").String(), jen.Id("args").Op("...").Any()).
			Params(jen.Index().Any(), jen.Error()).
			Block(body...)

		f.Comment("Teardown is inherited from the embedded holder: Close forwards to the")
		f.Comment("wrapped object's Close/Teardown when exposed, then releases it.")
	}

	f.Comment("adaptergen: ok")

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", ConfigError{Target: b.target, Reason: "render failed: " + err.Error()}
	}
	return buf.String(), nil
}

// sortedMethods returns the method map keys in deterministic order.
func (b *Builder) sortedMethods() []string {
	keys := make([]string, 0, len(b.methods))
	for k := range b.methods {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedModules returns the required capability modules in deterministic
// order, excluding this package's own identifiers (asserted implicitly via
// the embedded holder).
func (b *Builder) sortedModules() []string {
	mods := make([]string, 0, len(b.modules))
	for m := range b.modules {
		if m == basePkg || m == BaseClass {
			continue
		}
		mods = append(mods, m)
	}
	sort.Strings(mods)
	return mods
}
