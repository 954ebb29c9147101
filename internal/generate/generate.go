// Package generate orchestrates the pipeline: load both declaration
// files, extract the intrinsic-elements table, collect and normalize the
// referenced attribute declarations, and emit the merged template.
package generate

import (
	"errors"
	"fmt"
	"io"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/vfs"

	"github.com/jsxgen/jsxgen/internal/compiler"
	"github.com/jsxgen/jsxgen/internal/declaration"
	"github.com/jsxgen/jsxgen/internal/diagnostic"
	"github.com/jsxgen/jsxgen/internal/emit"
	"github.com/jsxgen/jsxgen/internal/extract"
	"github.com/jsxgen/jsxgen/internal/normalize"
)

// Options configures a single run.
type Options struct {
	// TemplatePath, SourcePath and Cwd locate the two inputs.
	TemplatePath string
	SourcePath   string
	Cwd          string
	// FS overrides the default filesystem (tests).
	FS vfs.FS
	// Format runs the output through the TypeScript formatter.
	Format bool
	// Progress receives console progress; nil discards it.
	Progress io.Writer
}

// Result is the generated output, not yet written to disk.
type Result struct {
	Output string
	// Extracted counts the declarations pulled from the source file.
	Extracted int
}

// Run executes the full pipeline. Any error is fatal to the run; no
// partial output is produced.
func Run(opts Options) (*Result, error) {
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	decls, diags, err := compiler.Load(compiler.LoadOptions{
		TemplatePath: opts.TemplatePath,
		SourcePath:   opts.SourcePath,
		Cwd:          opts.Cwd,
		FS:           opts.FS,
	})
	if err != nil {
		return nil, err
	}
	collector := diagnostic.NewCollector()
	for _, d := range diags {
		collector.Error(d.Category, d.File, d.Line, d.Message)
	}
	if collector.HasErrors() {
		return nil, errors.New(collector.FormatAll() + collector.Summary())
	}

	intrinsics, names, err := extract.Intrinsics(decls.Source)
	if err != nil {
		return nil, err
	}
	for _, name := range normalize.CollectorAllowList {
		names.Add(name)
	}

	kept, err := extract.FilterByName(extract.CollectTypeDecls(decls.Source), names)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(progress, "extracting %d declarations", len(kept))

	models := make([]declaration.Decl, 0, len(kept))
	for _, node := range kept {
		model, err := convert(decls.Source, node)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
		fmt.Fprint(progress, ".")
	}
	fmt.Fprintln(progress)

	out, err := emit.Output(decls.Template, intrinsics, models, emit.Options{Format: opts.Format})
	if err != nil {
		return nil, err
	}

	return &Result{Output: out, Extracted: len(kept)}, nil
}

func convert(sf *ast.SourceFile, node *ast.Node) (declaration.Decl, error) {
	switch node.Kind {
	case ast.KindInterfaceDeclaration:
		iface, err := extract.ConvertInterface(sf, node)
		if err != nil {
			return nil, err
		}
		return normalize.Interface(iface)
	case ast.KindTypeAliasDeclaration:
		return extract.ConvertAlias(sf, node), nil
	default:
		return nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape,
			"unexpected declaration kind %v for %s", node.Kind, extract.DeclName(node))
	}
}
