// Package osvfs re-exports typescript-go's internal vfs/osvfs package
// for importers outside the typescript-go module.
package osvfs

import "github.com/microsoft/typescript-go/internal/vfs/osvfs"

var FS = osvfs.FS
