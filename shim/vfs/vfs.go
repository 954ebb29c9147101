// Package vfs re-exports the subset of typescript-go's internal vfs
// package needed by importers outside the typescript-go module.
package vfs

import "github.com/microsoft/typescript-go/internal/vfs"

type (
	FS          = vfs.FS
	Entries     = vfs.Entries
	FileInfo    = vfs.FileInfo
	DirEntry    = vfs.DirEntry
	WalkDirFunc = vfs.WalkDirFunc
)
