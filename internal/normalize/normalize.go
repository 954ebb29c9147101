// Package normalize applies the fixed rewrites that make React attribute
// declarations usable by a string-rendering JSX runtime: no event
// callbacks, no typed children, DOM-cased names folded to lowercase with
// compatibility duplicates for class and for.
package normalize

import (
	"regexp"
	"strings"

	"github.com/jsxgen/jsxgen/internal/declaration"
	"github.com/jsxgen/jsxgen/internal/diagnostic"
)

// droppedParent is removed from extends clauses entirely; the target has
// no keys or refs.
const droppedParent = "ClassAttributes"

// allowedParents are the only parent interfaces an attribute interface
// may extend. Anything else means a new @types/react shape the
// generator does not know about.
var allowedParents = map[string]bool{
	"AriaAttributes":      true,
	"DOMAttributes":       true,
	"HTMLAttributes":      true,
	"MediaHTMLAttributes": true,
	"SVGAttributes":       true,
}

// CollectorAllowList is appended to the extracted type-name set: parents
// and helper aliases the attribute interfaces depend on.
var CollectorAllowList = []string{
	"AriaAttributes",
	"DOMAttributes",
	"HTMLAttributeReferrerPolicy",
	"HTMLAttributes",
	"MediaHTMLAttributes",
	"SVGAttributes",
}

// droppedProperties exist only for React's controlled-input and
// hydration machinery.
var droppedProperties = map[string]bool{
	"defaultChecked":                 true,
	"defaultValue":                   true,
	"suppressContentEditableWarning": true,
	"suppressHydrationWarning":       true,
}

// keepCase lists property names whose casing survives normalization.
var keepCase = map[string]bool{
	"className":               true,
	"dangerouslySetInnerHTML": true,
	"htmlFor":                 true,
}

// propertyAliases duplicates DOM-cased properties under their HTML names.
var propertyAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

var (
	eventHandlerRe  = regexp.MustCompile(`(?i)eventhandler`)
	cssPropertiesRe = regexp.MustCompile(`\bCSSProperties\b`)
	booleanishRe    = regexp.MustCompile(`\bBooleanish\b`)
)

// Interface returns a rewritten copy of one raw interface: generic
// parameters are already absent from the model, extends clauses are
// reduced to bare allow-listed names, and properties are dropped,
// retyped, renamed and duplicated per the fixed rules. The input model
// is left untouched.
func Interface(iface *declaration.Interface) (*declaration.Interface, error) {
	out := iface.Clone()

	extends := make([]declaration.HeritageRef, 0, len(iface.Extends))
	for _, ref := range iface.Extends {
		if ref.Name == droppedParent {
			continue
		}
		if !allowedParents[ref.Name] {
			return nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape,
				"%s: unexpected parent interface %q in extends clause %q", iface.Name, ref.Name, ref.Args)
		}
		extends = append(extends, declaration.HeritageRef{Name: ref.Name})
	}
	out.Extends = extends

	// The class/for duplication appends more elements than it reads, so
	// the rewritten properties go into a fresh slice, never into the
	// input's backing array.
	props := make([]declaration.Property, 0, len(iface.Properties)+2)
	for _, prop := range iface.Properties {
		if droppedProperties[prop.Name] {
			continue
		}
		if prop.Name != "dangerouslySetInnerHTML" {
			prop.Type = AttributeType(prop.Type)
		}

		alias, hasAlias := propertyAliases[prop.Name]
		if !keepCase[prop.Name] {
			prop.Name = strings.ToLower(prop.Name)
		}
		props = append(props, prop)
		if hasAlias {
			props = append(props, declaration.Property{
				Name:     alias,
				Type:     prop.Type,
				Optional: prop.Optional,
			})
		}
	}
	out.Properties = props

	return out, nil
}

// AttributeType rewrites a property type for the target runtime.
// Event handlers cannot run, so they serialize to plain strings; child
// nodes flatten to concatenated strings, so ReactNode loses its shape;
// style objects and tri-state booleans become their attribute encodings.
func AttributeType(t string) string {
	if eventHandlerRe.MatchString(t) {
		return "string"
	}
	if t == "ReactNode" {
		return "any"
	}
	t = cssPropertiesRe.ReplaceAllString(t, "string")
	t = booleanishRe.ReplaceAllString(t, "(boolean | 'true' | 'false')")
	return t
}
