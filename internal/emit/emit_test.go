package emit

import (
	"strings"
	"testing"

	"github.com/jsxgen/jsxgen/internal/declaration"
)

func TestInterfaceEmptyBecomesIntersectionAlias(t *testing.T) {
	e := NewEmitter(0)
	Interface(e, &declaration.Interface{
		Name: "AriaAttributes",
		Extends: []declaration.HeritageRef{
			{Name: "DOMAttributes"},
			{Name: "HTMLAttributes"},
		},
	})

	got := e.String()
	want := "type AriaAttributes = (DOMAttributes) & (HTMLAttributes);\n"
	if got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
}

func TestInterfaceEmptyWithoutExtendsStaysInterface(t *testing.T) {
	e := NewEmitter(0)
	Interface(e, &declaration.Interface{Name: "AriaAttributes"})

	got := e.String()
	want := "interface AriaAttributes {\n}\n"
	if got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
}

func TestInterfaceWithMembers(t *testing.T) {
	e := NewEmitter(0)
	Interface(e, &declaration.Interface{
		Name:    "AnchorHTMLAttributes",
		Extends: []declaration.HeritageRef{{Name: "HTMLAttributes"}},
		Properties: []declaration.Property{
			{Name: "href", Type: "string", Optional: true},
			{Name: "download", Type: "any", Optional: true},
			{Name: "ping", Type: "string", Optional: false},
		},
	})

	got := e.String()
	want := strings.Join([]string{
		"interface AnchorHTMLAttributes extends HTMLAttributes {",
		"  href?: string;",
		"  download?: any;",
		"  ping: string;",
		"}",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
}

func TestInterfaceQuotesNonIdentifierKeys(t *testing.T) {
	e := NewEmitter(0)
	Interface(e, &declaration.Interface{
		Name: "SVGAttributes",
		Properties: []declaration.Property{
			{Name: "accent-height", Type: "number | string", Optional: true},
			{Name: "class", Type: "string", Optional: true},
		},
	})

	got := e.String()
	if !strings.Contains(got, "'accent-height'?: number | string;") {
		t.Fatalf("dashed key not quoted: %q", got)
	}
	if !strings.Contains(got, "\n  class?: string;") {
		t.Fatalf("identifier key was quoted: %q", got)
	}
}

func TestAliasReanchorsIndent(t *testing.T) {
	e := NewEmitter(1)
	Alias(e, &declaration.TypeAlias{
		Name: "HTMLAttributeReferrerPolicy",
		Text: "type HTMLAttributeReferrerPolicy =\n        | ''\n        | 'origin';",
	})

	got := e.String()
	want := strings.Join([]string{
		"  type HTMLAttributeReferrerPolicy =",
		"  | ''",
		"  | 'origin';",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
}

func TestEmitterNesting(t *testing.T) {
	e := NewEmitter(0)
	e.Block("interface X")
	e.Line("a: string;")
	e.EndBlock()

	want := "interface X {\n  a: string;\n}\n"
	if got := e.String(); got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
}
