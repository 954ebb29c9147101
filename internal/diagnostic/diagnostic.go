// Package diagnostic provides structured failure messages for the
// generator. Every diagnostic is fatal: the pipeline collects what it
// knows about a failure, prints it, and aborts.
package diagnostic

import (
	"fmt"
	"strings"
)

// Category classifies diagnostics for filtering.
type Category string

const (
	CategoryParseError       Category = "parse-error"
	CategoryMissingStructure Category = "missing-structure"
	CategoryUnexpectedShape  Category = "unexpected-shape"
	CategoryUnresolvedName   Category = "unresolved-name"
	CategoryConfigInvalid    Category = "config-invalid"
)

// Diagnostic represents a structured diagnostic message.
type Diagnostic struct {
	Category Category
	File     string // source file path
	Line     int    // 1-based line number (0 = unknown)
	Message  string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(d.File)
		if d.Line > 0 {
			sb.WriteString(fmt.Sprintf(":%d", d.Line))
		}
		sb.WriteString(" - ")
	}

	sb.WriteString("error: ")

	if d.Category != "" {
		sb.WriteString("[")
		sb.WriteString(string(d.Category))
		sb.WriteString("] ")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

// Error is an error value carrying a categorized diagnostic.
type Error struct {
	Diagnostic
}

func (e *Error) Error() string {
	return e.Diagnostic.String()
}

// Errorf creates an error carrying a categorized diagnostic.
func Errorf(category Category, format string, args ...any) error {
	return &Error{Diagnostic{Category: category, Message: fmt.Sprintf(format, args...)}}
}

// Collector accumulates diagnostics before the run aborts. Parse errors
// arrive as a batch from the compiler, so they are collected and printed
// together rather than one at a time.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector creates a new diagnostic collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Error adds an error diagnostic.
func (c *Collector) Error(category Category, file string, line int, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

// HasErrors returns true if any diagnostics were collected.
func (c *Collector) HasErrors() bool {
	return c != nil && len(c.diagnostics) > 0
}

// FormatAll formats all diagnostics as a multi-line string.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a summary line like "3 error(s)".
func (c *Collector) Summary() string {
	if c == nil || len(c.diagnostics) == 0 {
		return "no issues"
	}
	return fmt.Sprintf("%d error(s)", len(c.diagnostics))
}
