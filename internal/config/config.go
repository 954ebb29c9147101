// Package config loads the generator configuration: the three fixed file
// paths and the formatting switch. The file is JSONC (comments and
// trailing commas allowed) and is validated against an embedded JSON
// schema before decoding.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/jsxgen/jsxgen/internal/diagnostic"
)

//go:embed schema.json
var schema string

// Config represents the jsxgen configuration.
type Config struct {
	// Template is the hand-written declaration file the output is based on.
	Template string `json:"template"`
	// ReactTypes is the React type-declaration file to extract from.
	ReactTypes string `json:"reactTypes"`
	// Output is the generated declaration file, overwritten each run.
	Output string `json:"output"`
	// Format runs the output through the TypeScript formatter.
	Format *bool `json:"format,omitempty"`
}

// FormatEnabled reports whether the formatting pass runs (default true).
func (c *Config) FormatEnabled() bool {
	return c.Format == nil || *c.Format
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

// Load reads, validates and parses a jsxgen config file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a JSONC config from r, validates it against the schema and
// decodes it.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(jsonc.New(r))
	if err != nil {
		return nil, err
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err = sch.Validate(inst); err != nil {
		return nil, err
	}

	var cfg Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for logical errors the schema cannot express.
func (c *Config) Validate() error {
	for name, path := range map[string]string{
		"template":   c.Template,
		"reactTypes": c.ReactTypes,
		"output":     c.Output,
	} {
		ext := filepath.Ext(path)
		if ext != ".ts" {
			return diagnostic.Errorf(diagnostic.CategoryConfigInvalid, "%s must be a .d.ts path, got %q", name, path)
		}
	}
	if c.Output == c.Template || c.Output == c.ReactTypes {
		return diagnostic.Errorf(diagnostic.CategoryConfigInvalid, "output must not overwrite an input, got %q", c.Output)
	}
	return nil
}
