// Package cachedvfs re-exports typescript-go's internal vfs/cachedvfs
// package for importers outside the typescript-go module.
package cachedvfs

import "github.com/microsoft/typescript-go/internal/vfs/cachedvfs"

var From = cachedvfs.From
