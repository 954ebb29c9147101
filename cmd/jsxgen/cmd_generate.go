package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jsxgen/jsxgen/internal/config"
	"github.com/jsxgen/jsxgen/internal/emit"
	"github.com/jsxgen/jsxgen/internal/generate"
)

type cmdGenerate struct {
	Config string `arg:"" optional:"" type:"path" default:"jsxgen.jsonc" help:"Path to the jsxgen config file."`
}

func (c *cmdGenerate) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	report := cfg.ValidateDetailed()
	for _, warning := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if !report.IsValid() {
		return errors.New(strings.Join(report.Errors, "\n"))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	result, err := generate.Run(generate.Options{
		TemplatePath: cfg.Template,
		SourcePath:   cfg.ReactTypes,
		Cwd:          cwd,
		Format:       cfg.FormatEnabled(),
		Progress:     os.Stderr,
	})
	if err != nil {
		return err
	}

	return emit.WriteOutput(cfg.Output, result.Output)
}
