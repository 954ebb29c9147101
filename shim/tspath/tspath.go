// Package tspath re-exports the subset of typescript-go's internal
// tspath package needed by importers outside the typescript-go module.
package tspath

import "github.com/microsoft/typescript-go/internal/tspath"

var (
	ResolvePath   = tspath.ResolvePath
	NormalizePath = tspath.NormalizePath
)
