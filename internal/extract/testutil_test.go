package extract_test

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/jsxgen/jsxgen/internal/compiler"
)

const testRoot = "/home/src/jsxgen"

// minimalTemplate satisfies the loader; extract tests only exercise the
// source tree.
const minimalTemplate = `export {};
declare global {
  namespace JSX {
    type Element = string;
  }
}
`

// loadSource parses inline declaration source through the same program
// construction the generator uses and returns the loaded trees.
func loadSource(t *testing.T, source string) *compiler.Declarations {
	t.Helper()

	templatePath := tspath.ResolvePath(testRoot, "jsx.d.ts")
	sourcePath := tspath.ResolvePath(testRoot, "react.d.ts")
	fs := compiler.NewOverlayFS(compiler.CreateDefaultFS(), map[string]string{
		templatePath: minimalTemplate,
		sourcePath:   source,
	})

	decls, diags, err := compiler.Load(compiler.LoadOptions{
		TemplatePath: "jsx.d.ts",
		SourcePath:   "react.d.ts",
		Cwd:          testRoot,
		FS:           fs,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags[0].String())
	}
	return decls
}
