package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/antoniszymanski/sanefmt-go"
	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/jsxgen/jsxgen/internal/declaration"
	"github.com/jsxgen/jsxgen/internal/extract"
)

// namespaceIndent is the indentation level inside global.JSX.
const namespaceIndent = 2

// Options controls output rendering.
type Options struct {
	// Format runs the emitted file through the TypeScript formatter.
	Format bool
}

// Output merges the extracted IntrinsicElements interface and the
// normalized declarations into the template's JSX namespace and returns
// the full file content, formatted when requested.
func Output(template *ast.SourceFile, intrinsics *declaration.Interface, decls []declaration.Decl, opts Options) (string, error) {
	block, err := extract.JSXNamespaceBlock(template)
	if err != nil {
		return "", fmt.Errorf("template: %w", err)
	}

	e := NewEmitter(namespaceIndent)
	e.Blank()
	Interface(e, intrinsics)
	for _, decl := range decls {
		e.Blank()
		switch d := decl.(type) {
		case *declaration.Interface:
			Interface(e, d)
		case *declaration.TypeAlias:
			Alias(e, d)
		default:
			return "", fmt.Errorf("unsupported declaration %T for %s", decl, decl.DeclName())
		}
	}

	// Splice just before the namespace's closing brace. When the brace
	// sits alone on its line, insert at the line start so the brace
	// keeps its own indentation.
	text := template.Text()
	insertAt := block.End() - 1
	if lineStart := strings.LastIndexByte(text[:insertAt], '\n') + 1; strings.TrimSpace(text[lineStart:insertAt]) == "" {
		insertAt = lineStart
	}
	out := text[:insertAt] + e.String() + text[insertAt:]

	if opts.Format {
		formatted, err := sanefmt.Format(bytes.NewReader([]byte(out)))
		if err != nil {
			return "", fmt.Errorf("formatting output: %w", err)
		}
		return string(formatted), nil
	}
	return out, nil
}

// Interface prints an interface declaration. An interface left with no
// properties but surviving parents collapses to an intersection alias of
// those parents, so the output never declares a memberless object type.
func Interface(e *Emitter, iface *declaration.Interface) {
	if len(iface.Properties) == 0 && len(iface.Extends) > 0 {
		parts := make([]string, len(iface.Extends))
		for i, ref := range iface.Extends {
			parts[i] = "(" + ref.Name + ")"
		}
		e.Line("type %s = %s;", iface.Name, strings.Join(parts, " & "))
		return
	}

	header := "interface " + iface.Name
	if len(iface.Extends) > 0 {
		names := make([]string, len(iface.Extends))
		for i, ref := range iface.Extends {
			names[i] = ref.Name
		}
		header += " extends " + strings.Join(names, ", ")
	}
	e.Block("%s", header)
	for _, prop := range iface.Properties {
		opt := ""
		if prop.Optional {
			opt = "?"
		}
		e.Line("%s%s: %s;", tsPropertyKey(prop.Name), opt, prop.Type)
	}
	e.EndBlock()
}

// Alias prints a type alias verbatim, re-anchored to the namespace indent.
func Alias(e *Emitter, alias *declaration.TypeAlias) {
	for _, line := range strings.Split(alias.Text, "\n") {
		e.Line("%s", strings.TrimSpace(line))
	}
}

// WriteOutput writes the generated file, replacing any prior content.
func WriteOutput(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// tsPropertyKey returns a properly quoted TypeScript property key.
// Valid identifiers are returned as-is, while names containing dashes
// or other non-identifier characters are single-quoted.
func tsPropertyKey(name string) string {
	if len(name) == 0 {
		return `''`
	}
	for i, r := range name {
		if i == 0 {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$') {
				return `'` + name + `'`
			}
		} else {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '$') {
				return `'` + name + `'`
			}
		}
	}
	return name
}
