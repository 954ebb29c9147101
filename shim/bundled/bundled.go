// Package bundled re-exports typescript-go's internal bundled package
// for importers outside the typescript-go module.
package bundled

import "github.com/microsoft/typescript-go/internal/bundled"

var (
	WrapFS  = bundled.WrapFS
	LibPath = bundled.LibPath
)
