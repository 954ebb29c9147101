// Package extract locates the intrinsic-elements table inside the React
// declarations and converts interface and type-alias AST nodes into the
// generator's declaration model.
package extract

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/jsxgen/jsxgen/internal/declaration"
	"github.com/jsxgen/jsxgen/internal/diagnostic"
)

const (
	// hostNamespace qualifies attribute type references inside
	// IntrinsicElements entries (React.AnchorHTMLAttributes<...>).
	hostNamespace = "React"

	// excludedRef is the wrapper type that never names an attributes
	// interface directly.
	excludedRef = "DetailedHTMLProps"

	intrinsicsName = "IntrinsicElements"
)

// Intrinsics locates global → JSX → IntrinsicElements in the source tree,
// rewrites every entry's type to the bare attributes-interface name, and
// records the set of referenced names in document order. The returned
// interface is a model copy; the source tree is not touched.
func Intrinsics(sf *ast.SourceFile) (*declaration.Interface, *declaration.NameSet, error) {
	globalStmts, err := namespaceStatements(sf.Statements.Nodes, "global")
	if err != nil {
		return nil, nil, err
	}
	jsxStmts, err := namespaceStatements(globalStmts, "JSX")
	if err != nil {
		return nil, nil, err
	}

	var decl *ast.InterfaceDeclaration
	for _, stmt := range jsxStmts {
		if stmt.Kind != ast.KindInterfaceDeclaration {
			continue
		}
		if d := stmt.AsInterfaceDeclaration(); nameText(d.Name()) == intrinsicsName {
			decl = d
			break
		}
	}
	if decl == nil {
		return nil, nil, diagnostic.Errorf(diagnostic.CategoryMissingStructure, "interface %s not found inside global.JSX", intrinsicsName)
	}

	result := &declaration.Interface{Name: intrinsicsName}
	names := declaration.NewNameSet()

	for _, member := range decl.Members.Nodes {
		if member.Kind != ast.KindPropertySignature {
			return nil, nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape, "%s: unexpected member kind %v, want property signature", intrinsicsName, member.Kind)
		}
		prop := member.AsPropertySignatureDeclaration()
		propName := nameText(prop.Name())
		if prop.Type == nil {
			return nil, nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape, "%s.%s: property has no type annotation", intrinsicsName, propName)
		}

		attrRef := findAttributesRef(prop.Type)
		if attrRef == "" {
			return nil, nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape, "%s.%s: no %s-qualified attributes type reference in %q", intrinsicsName, propName, hostNamespace, nodeText(sf, prop.Type))
		}

		names.Add(attrRef)
		result.Properties = append(result.Properties, declaration.Property{
			Name:     propName,
			Type:     attrRef,
			Optional: isOptional(prop),
		})
	}

	return result, names, nil
}

// findAttributesRef walks a type expression for the first type reference
// whose name is a qualified name React.X with X not being the excluded
// wrapper. Returns the bare right-hand identifier, or "".
func findAttributesRef(typeNode *ast.Node) string {
	var found string
	var visit func(n *ast.Node) bool
	visit = func(n *ast.Node) bool {
		if found != "" {
			return true
		}
		if n.Kind == ast.KindTypeReference {
			ref := n.AsTypeReferenceNode()
			if ref.TypeName != nil && ref.TypeName.Kind == ast.KindQualifiedName {
				qn := ref.TypeName.AsQualifiedName()
				if qn.Left.Kind == ast.KindIdentifier && qn.Left.AsIdentifier().Text == hostNamespace {
					right := nameText(qn.Right)
					if right != excludedRef {
						found = right
						return true
					}
				}
			}
		}
		n.ForEachChild(visit)
		return found != ""
	}
	visit(typeNode)
	return found
}

// JSXNamespaceBlock returns the module-block node of global → JSX in a
// tree. The emitter uses it to find the insertion point in the template.
func JSXNamespaceBlock(sf *ast.SourceFile) (*ast.Node, error) {
	globalStmts, err := namespaceStatements(sf.Statements.Nodes, "global")
	if err != nil {
		return nil, err
	}
	for _, stmt := range globalStmts {
		if stmt.Kind != ast.KindModuleDeclaration {
			continue
		}
		decl := stmt.AsModuleDeclaration()
		if nameText(decl.Name()) != "JSX" {
			continue
		}
		if decl.Body == nil || decl.Body.Kind != ast.KindModuleBlock {
			return nil, diagnostic.Errorf(diagnostic.CategoryMissingStructure, "namespace JSX has no body")
		}
		return decl.Body, nil
	}
	return nil, diagnostic.Errorf(diagnostic.CategoryMissingStructure, "namespace JSX not found")
}

// namespaceStatements finds a namespace/module declaration by name in a
// statement list and returns its body statements.
func namespaceStatements(stmts []*ast.Node, name string) ([]*ast.Node, error) {
	for _, stmt := range stmts {
		if stmt.Kind != ast.KindModuleDeclaration {
			continue
		}
		decl := stmt.AsModuleDeclaration()
		if nameText(decl.Name()) != name {
			continue
		}
		if decl.Body == nil || decl.Body.Kind != ast.KindModuleBlock {
			return nil, diagnostic.Errorf(diagnostic.CategoryMissingStructure, "namespace %s has no body", name)
		}
		return decl.Body.AsModuleBlock().Statements.Nodes, nil
	}
	return nil, diagnostic.Errorf(diagnostic.CategoryMissingStructure, "namespace %s not found", name)
}

// ConvertInterface turns an interface AST node into the raw model:
// original property names and type text, extends clauses with their
// argument text still attached. Generic type parameters are not carried.
func ConvertInterface(sf *ast.SourceFile, node *ast.Node) (*declaration.Interface, error) {
	decl := node.AsInterfaceDeclaration()
	result := &declaration.Interface{Name: nameText(decl.Name())}

	if decl.HeritageClauses != nil {
		for _, clauseNode := range decl.HeritageClauses.Nodes {
			clause := clauseNode.AsHeritageClause()
			for _, t := range clause.Types.Nodes {
				ewta := t.AsExpressionWithTypeArguments()
				var parent string
				if ewta.Expression.Kind == ast.KindIdentifier {
					parent = ewta.Expression.AsIdentifier().Text
				} else {
					parent = nodeText(sf, ewta.Expression)
				}
				result.Extends = append(result.Extends, declaration.HeritageRef{
					Name: parent,
					Args: nodeText(sf, t),
				})
			}
		}
	}

	for _, member := range decl.Members.Nodes {
		if member.Kind != ast.KindPropertySignature {
			return nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape, "%s: unexpected member kind %v, want property signature", result.Name, member.Kind)
		}
		prop := member.AsPropertySignatureDeclaration()
		propName := nameText(prop.Name())
		if prop.Type == nil {
			return nil, diagnostic.Errorf(diagnostic.CategoryUnexpectedShape, "%s.%s: property has no type annotation", result.Name, propName)
		}
		result.Properties = append(result.Properties, declaration.Property{
			Name:     propName,
			Type:     nodeText(sf, prop.Type),
			Optional: isOptional(prop),
		})
	}

	return result, nil
}

// ConvertAlias turns a type-alias AST node into the model, keeping the
// full declaration text verbatim.
func ConvertAlias(sf *ast.SourceFile, node *ast.Node) *declaration.TypeAlias {
	decl := node.AsTypeAliasDeclaration()
	return &declaration.TypeAlias{
		Name: nameText(decl.Name()),
		Text: nodeText(sf, node),
	}
}

func isOptional(prop *ast.PropertySignatureDeclaration) bool {
	return prop.PostfixToken != nil && prop.PostfixToken.Kind == ast.KindQuestionToken
}

// nameText returns the text of an identifier or string-literal name node.
func nameText(n *ast.Node) string {
	switch n.Kind {
	case ast.KindIdentifier:
		return n.AsIdentifier().Text
	case ast.KindStringLiteral:
		return n.AsStringLiteral().Text
	default:
		return n.Text()
	}
}

// nodeText slices a node's source text out of its file.
func nodeText(sf *ast.SourceFile, n *ast.Node) string {
	return strings.TrimSpace(sf.Text()[n.Pos():n.End()])
}
