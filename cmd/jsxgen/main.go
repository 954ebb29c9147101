package main

import "github.com/alecthomas/kong"

var cli struct {
	Generate cmdGenerate `cmd:"" default:"withargs"`
	Version  cmdVersion  `cmd:""`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jsxgen"),
		kong.Description("Generate JSX attribute declarations for string-rendering runtimes from React typings"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
