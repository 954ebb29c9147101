// Package compiler re-exports the subset of typescript-go's internal
// compiler package needed by importers outside the typescript-go module.
package compiler

import (
	"context"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/compiler"
)

type (
	Program        = compiler.Program
	ProgramOptions = compiler.ProgramOptions
	CompilerHost   = compiler.CompilerHost
	EmitOptions    = compiler.EmitOptions
	WriteFile      = compiler.WriteFile
)

var (
	NewProgram      = compiler.NewProgram
	NewCompilerHost = compiler.NewCompilerHost
)

func Program_GetSyntacticDiagnostics(p *Program, ctx context.Context, file *ast.SourceFile) []*ast.Diagnostic {
	return p.GetSyntacticDiagnostics(ctx, file)
}
