// Package core re-exports the subset of typescript-go's internal core
// package needed by importers outside the typescript-go module.
package core

import "github.com/microsoft/typescript-go/internal/core"

type (
	CompilerOptions = core.CompilerOptions
	Tristate        = core.Tristate
)

const (
	TSUnknown = core.TSUnknown
	TSFalse   = core.TSFalse
	TSTrue    = core.TSTrue
)
