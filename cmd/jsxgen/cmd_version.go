package main

import (
	"errors"
	"runtime/debug"

	"github.com/alecthomas/kong"
)

type cmdVersion struct{}

func (cmdVersion) Run(ctx *kong.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("build info not found")
	}

	var revision string
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 8 {
			revision = setting.Value[:8]
		}
	}
	if revision == "" {
		revision = "unknown"
	}

	ctx.Printf("version %s built with %s from %s", info.Main.Version, info.GoVersion, revision)
	return nil
}
