// Package compiler loads the two input declaration files into
// typescript-go syntax trees. A synthetic tsconfig naming exactly the
// template and the React declarations is injected through an overlay
// filesystem, so the program never resolves or type-checks anything
// beyond the two fixed inputs.
package compiler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/bundled"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"

	"github.com/jsxgen/jsxgen/internal/diagnostic"
)

// configFileName is the virtual tsconfig injected into the overlay.
const configFileName = "jsxgen.tsconfig.json"

// LoadOptions names the two declaration inputs.
type LoadOptions struct {
	// TemplatePath is the hand-written base declaration file.
	TemplatePath string
	// SourcePath is the React type-declaration file.
	SourcePath string
	// Cwd anchors relative paths.
	Cwd string
	// FS overrides the default filesystem; tests inject virtual inputs here.
	FS vfs.FS
}

// Declarations holds the parsed inputs. The trees stay owned by the
// program for the lifetime of the run.
type Declarations struct {
	Program  *shimcompiler.Program
	Template *ast.SourceFile
	Source   *ast.SourceFile
}

// CreateDefaultFS creates a filesystem using the OS filesystem with bundled libs.
func CreateDefaultFS() vfs.FS {
	return bundled.WrapFS(cachedvfs.From(osvfs.FS()))
}

// Load parses both inputs into a single program and fails on the first
// syntactic problem. Returned diagnostics are always fatal to the run.
func Load(opts LoadOptions) (*Declarations, []diagnostic.Diagnostic, error) {
	fs := opts.FS
	if fs == nil {
		fs = CreateDefaultFS()
	}

	templatePath := tspath.ResolvePath(opts.Cwd, opts.TemplatePath)
	sourcePath := tspath.ResolvePath(opts.Cwd, opts.SourcePath)
	if !fs.FileExists(templatePath) {
		return nil, nil, fmt.Errorf("could not find template declarations at %v", templatePath)
	}
	if !fs.FileExists(sourcePath) {
		return nil, nil, fmt.Errorf("could not find source declarations at %v", sourcePath)
	}

	configPath := tspath.ResolvePath(opts.Cwd, configFileName)
	configText, err := syntheticConfig(templatePath, sourcePath)
	if err != nil {
		return nil, nil, err
	}
	overlay := NewOverlayFS(fs, map[string]string{configPath: configText})

	host := shimcompiler.NewCompilerHost(opts.Cwd, overlay, bundled.LibPath(), nil, nil)

	parsedConfig, diags := tsoptions.GetParsedCommandLineOfConfigFile(configPath, &core.CompilerOptions{}, nil, host, nil)
	if len(diags) > 0 {
		return nil, convertDiagnostics(diags), nil
	}
	if parsedConfig != nil && len(parsedConfig.Errors) > 0 {
		return nil, convertDiagnostics(parsedConfig.Errors), nil
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsedConfig,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("failed to create program")
	}

	syntactic := shimcompiler.Program_GetSyntacticDiagnostics(program, context.Background(), nil)
	if len(syntactic) > 0 {
		return nil, convertDiagnostics(syntactic), nil
	}

	template := program.GetSourceFile(templatePath)
	if template == nil {
		return nil, nil, fmt.Errorf("template %v not loaded into program", templatePath)
	}
	source := program.GetSourceFile(sourcePath)
	if source == nil {
		return nil, nil, fmt.Errorf("source declarations %v not loaded into program", sourcePath)
	}

	return &Declarations{
		Program:  program,
		Template: template,
		Source:   source,
	}, nil, nil
}

// syntheticConfig renders the tsconfig that pins the program to the two
// inputs: no default libs, no module resolution, no ambient @types.
func syntheticConfig(templatePath, sourcePath string) (string, error) {
	cfg := struct {
		CompilerOptions struct {
			NoLib     bool     `json:"noLib"`
			NoResolve bool     `json:"noResolve"`
			Types     []string `json:"types"`
		} `json:"compilerOptions"`
		Files []string `json:"files"`
	}{}
	cfg.CompilerOptions.NoLib = true
	cfg.CompilerOptions.NoResolve = true
	cfg.CompilerOptions.Types = []string{}
	cfg.Files = []string{templatePath, sourcePath}

	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("rendering synthetic tsconfig: %w", err)
	}
	return string(data), nil
}

// convertDiagnostics converts tsgo diagnostics to the generator's type.
func convertDiagnostics(tsdiags []*ast.Diagnostic) []diagnostic.Diagnostic {
	diags := make([]diagnostic.Diagnostic, len(tsdiags))
	for i, d := range tsdiags {
		var filePath string
		if d.File() != nil {
			filePath = d.File().FileName()
		}
		diags[i] = diagnostic.Diagnostic{
			Category: diagnostic.CategoryParseError,
			File:     filePath,
			Message:  d.String(),
		}
	}
	return diags
}
