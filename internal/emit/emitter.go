// Package emit prints the normalized declarations as TypeScript, merges
// them into the template tree's JSX namespace, and writes the formatted
// result to disk.
package emit

import (
	"fmt"
	"strings"
)

// Emitter builds TypeScript source with proper indentation.
type Emitter struct {
	buf    strings.Builder
	indent int
}

// NewEmitter creates an emitter starting at the given indentation level.
// Declarations spliced into the template's JSX namespace start at level 2.
func NewEmitter(indent int) *Emitter {
	return &Emitter{indent: indent}
}

// Line writes a single line of code at the current indentation level.
func (e *Emitter) Line(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if line == "" {
		e.buf.WriteByte('\n')
		return
	}
	for i := 0; i < e.indent; i++ {
		e.buf.WriteString("  ")
	}
	e.buf.WriteString(line)
	e.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (e *Emitter) Blank() {
	e.buf.WriteByte('\n')
}

// Block opens a block (appends " {" to the line and increases indent).
func (e *Emitter) Block(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	for i := 0; i < e.indent; i++ {
		e.buf.WriteString("  ")
	}
	e.buf.WriteString(line)
	e.buf.WriteString(" {\n")
	e.indent++
}

// EndBlock closes a block (decreases indent and writes "}").
func (e *Emitter) EndBlock() {
	e.indent--
	for i := 0; i < e.indent; i++ {
		e.buf.WriteString("  ")
	}
	e.buf.WriteString("}\n")
}

// String returns the accumulated source code.
func (e *Emitter) String() string {
	return e.buf.String()
}
