// Package tsoptions re-exports the subset of typescript-go's internal
// tsoptions package needed by importers outside the typescript-go module.
package tsoptions

import "github.com/microsoft/typescript-go/internal/tsoptions"

type ParsedCommandLine = tsoptions.ParsedCommandLine

var GetParsedCommandLineOfConfigFile = tsoptions.GetParsedCommandLineOfConfigFile
