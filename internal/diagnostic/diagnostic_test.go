package diagnostic

import (
	"errors"
	"strings"
	"testing"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Category: CategoryParseError,
		File:     "types/react.d.ts",
		Line:     10,
		Message:  "'{' expected",
	}

	s := d.String()
	if !strings.Contains(s, "types/react.d.ts:10") {
		t.Errorf("expected file:line, got %q", s)
	}
	if !strings.Contains(s, "error:") {
		t.Errorf("expected 'error:', got %q", s)
	}
	if !strings.Contains(s, "[parse-error]") {
		t.Errorf("expected category, got %q", s)
	}
}

func TestDiagnostic_StringWithoutLocation(t *testing.T) {
	d := Diagnostic{Category: CategoryConfigInvalid, Message: "missing field"}
	s := d.String()
	if strings.Contains(s, " - ") {
		t.Errorf("did not expect a location separator, got %q", s)
	}
	if !strings.HasPrefix(s, "error:") {
		t.Errorf("expected message to start with 'error:', got %q", s)
	}
}

func TestErrorfCarriesCategory(t *testing.T) {
	err := Errorf(CategoryUnresolvedName, "type %s was not found", "VideoHTMLAttributes")

	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if derr.Category != CategoryUnresolvedName {
		t.Errorf("expected unresolved-name category, got %q", derr.Category)
	}
	if !strings.Contains(err.Error(), "[unresolved-name]") {
		t.Errorf("expected category tag in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "VideoHTMLAttributes") {
		t.Errorf("expected formatted message, got %q", err.Error())
	}
}

func TestCollector_Errors(t *testing.T) {
	c := NewCollector()
	c.Error(CategoryParseError, "a.d.ts", 5, "unexpected token")
	c.Error(CategoryUnresolvedName, "", 0, "type not found")

	if !c.HasErrors() {
		t.Error("expected HasErrors() = true")
	}
	if lines := strings.Count(c.FormatAll(), "\n"); lines != 2 {
		t.Errorf("expected 2 diagnostics, got %d:\n%s", lines, c.FormatAll())
	}
}

func TestCollector_Summary(t *testing.T) {
	c := NewCollector()
	c.Error(CategoryParseError, "a.d.ts", 1, "err1")
	c.Error(CategoryParseError, "b.d.ts", 2, "err2")

	summary := c.Summary()
	if !strings.Contains(summary, "2 error") {
		t.Errorf("expected '2 error' in summary, got %q", summary)
	}
}

func TestCollector_EmptySummary(t *testing.T) {
	c := NewCollector()
	if c.HasErrors() {
		t.Error("expected no errors")
	}
	if c.Summary() != "no issues" {
		t.Errorf("expected 'no issues', got %q", c.Summary())
	}
}

func TestCollector_FormatAll(t *testing.T) {
	c := NewCollector()
	c.Error(CategoryParseError, "react.d.ts", 10, "'{' expected")

	formatted := c.FormatAll()
	if !strings.Contains(formatted, "react.d.ts:10") {
		t.Errorf("expected formatted output with file:line, got %q", formatted)
	}
	if !strings.HasSuffix(formatted, "\n") {
		t.Errorf("expected trailing newline, got %q", formatted)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.Error(CategoryParseError, "", 0, "test")
	if c.HasErrors() {
		t.Error("nil collector should not have errors")
	}
	if c.FormatAll() != "" {
		t.Error("nil collector should format to empty string")
	}
}
