// cmd/adaptergen/main.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/adapt/adapter"
)

// Spec is the full input schema consumed by the generator. Every field maps
// onto one adapter directive; see doc.go for the file format.
type Spec struct {
	Package  string            `json:"package" yaml:"package"`
	Target   string            `json:"target" yaml:"target"`
	New      string            `json:"new" yaml:"new"`
	Isa      []string          `json:"isa" yaml:"isa"`
	Autoload bool              `json:"autoload" yaml:"autoload"`
	Methods  []string          `json:"methods" yaml:"methods"`
	Map      map[string]string `json:"map" yaml:"map"`
}

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "adaptergen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var (
		specPath string
		outPath  string
		pkgName  string
	)

	cmd := &cobra.Command{
		Use:           "adaptergen --spec <file> --out <file.gen.go>",
		Short:         "Render adapter class source from a spec file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(stderr, specPath, outPath, pkgName)
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "path to the adapter spec file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&outPath, "out", "", "output .gen.go file path")
	cmd.Flags().StringVar(&pkgName, "package", "", "package name override for the generated file")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// generate is the whole pipeline: load, validate, assemble, render, write.
// Any error aborts before the output file is touched.
func generate(stderr io.Writer, specPath, outPath, pkgOverride string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	spec, err := loadSpec(specPath)
	if err != nil {
		return err
	}
	if err := validateSpec(&spec); err != nil {
		return err
	}
	logger.Info().Str("spec", specPath).Str("class", spec.Target).Msg("loaded adapter spec")

	builder, err := assemble(&spec, pkgOverride)
	if err != nil {
		return err
	}

	src, err := builder.Render()
	if err != nil {
		return err
	}
	logger.Info().Str("class", spec.Target).Int("bytes", len(src)).Msg("rendered adapter source")

	target := filepath.Clean(outPath)
	if err := writeFileAtomic(target, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	logger.Info().Str("out", target).Msg("wrote generated file")

	return nil
}

// loadSpec reads and decodes the spec file; the extension selects the codec.
func loadSpec(path string) (Spec, error) {
	var spec Spec

	raw, err := os.ReadFile(path)
	if err != nil {
		return spec, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &spec)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &spec)
	default:
		return spec, fmt.Errorf("unsupported spec extension %q (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return spec, fmt.Errorf("parse %s: %w", path, err)
	}
	return spec, nil
}

// validateSpec validates semantic correctness of the input specification.
// Directive-level problems (sentinel mixing, duplicate mappings) are left to
// the builder, which reports them against the target class.
func validateSpec(spec *Spec) error {
	if strings.TrimSpace(spec.Target) == "" {
		return fmt.Errorf("spec missing required field: target")
	}
	for i, m := range spec.Methods {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("class %s: methods[%d] is empty", spec.Target, i)
		}
	}
	for generated, target := range spec.Map {
		if strings.TrimSpace(generated) == "" || strings.TrimSpace(target) == "" {
			return fmt.Errorf("class %s: map entry %q -> %q must name both methods", spec.Target, generated, target)
		}
	}
	return nil
}

// assemble turns the spec into directives and feeds them through Define so
// the command and the dynamic path interpret configurations identically.
// Map entries are applied in sorted order for deterministic diagnostics.
func assemble(spec *Spec, pkgOverride string) (*adapter.Builder, error) {
	var directives []adapter.Directive
	if spec.New != "" {
		directives = append(directives, adapter.D(adapter.DirectiveNew, spec.New))
	}
	if len(spec.Isa) > 0 {
		directives = append(directives, adapter.D(adapter.DirectiveIsa, spec.Isa))
	}
	if spec.Autoload {
		directives = append(directives, adapter.D(adapter.DirectiveAutoload, true))
	}
	if len(spec.Methods) > 0 {
		directives = append(directives, adapter.D(adapter.DirectiveMethods, spec.Methods))
	}

	mapped := make([]string, 0, len(spec.Map))
	for generated := range spec.Map {
		mapped = append(mapped, generated)
	}
	sort.Strings(mapped)
	for _, generated := range mapped {
		directives = append(directives, adapter.D(generated, spec.Map[generated]))
	}

	builder, err := adapter.Define(spec.Target, directives...)
	if err != nil {
		return nil, err
	}

	pkg := spec.Package
	if strings.TrimSpace(pkgOverride) != "" {
		pkg = pkgOverride
	}
	if strings.TrimSpace(pkg) != "" {
		builder.SetPackage(pkg)
	}
	return builder, nil
}

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}
