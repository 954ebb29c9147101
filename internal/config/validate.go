package config

import (
	"fmt"
	"strings"
)

// ValidationResult holds config validation results.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// ValidateDetailed performs thorough config validation with suggestions.
// Errors repeat what Validate enforces; warnings flag configs that are
// legal but usually mistakes.
func (c *Config) ValidateDetailed() *ValidationResult {
	result := &ValidationResult{}

	if err := c.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}

	for name, path := range map[string]string{
		"template":   c.Template,
		"reactTypes": c.ReactTypes,
	} {
		if strings.HasSuffix(path, ".ts") && !strings.HasSuffix(path, ".d.ts") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: %q is not a .d.ts file — the generator only reads type declarations", name, path))
		}
	}

	if c.ReactTypes != "" && !strings.Contains(c.ReactTypes, "@types/react") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("reactTypes: %q does not point into @types/react — extraction expects its declaration layout", c.ReactTypes))
	}

	if strings.Contains(c.Output, "node_modules") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("output: %q is under node_modules and will be lost on reinstall", c.Output))
	}

	return result
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}
