package extract

import (
	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/jsxgen/jsxgen/internal/declaration"
	"github.com/jsxgen/jsxgen/internal/diagnostic"
)

// CollectTypeDecls returns every interface and type-alias declaration in
// the file, in document order, flattened across nested namespace scopes.
// Pure read; the tree is not mutated.
func CollectTypeDecls(sf *ast.SourceFile) []*ast.Node {
	var decls []*ast.Node
	var walk func(stmts []*ast.Node)
	walk = func(stmts []*ast.Node) {
		for _, stmt := range stmts {
			switch stmt.Kind {
			case ast.KindInterfaceDeclaration, ast.KindTypeAliasDeclaration:
				decls = append(decls, stmt)
			case ast.KindModuleDeclaration:
				decl := stmt.AsModuleDeclaration()
				if decl.Body != nil && decl.Body.Kind == ast.KindModuleBlock {
					walk(decl.Body.AsModuleBlock().Statements.Nodes)
				}
			}
		}
	}
	walk(sf.Statements.Nodes)
	return decls
}

// DeclName returns the declared name of an interface or type-alias node.
func DeclName(node *ast.Node) string {
	switch node.Kind {
	case ast.KindInterfaceDeclaration:
		return nameText(node.AsInterfaceDeclaration().Name())
	case ast.KindTypeAliasDeclaration:
		return nameText(node.AsTypeAliasDeclaration().Name())
	default:
		return ""
	}
}

// FilterByName keeps the declarations whose name is in the set,
// preserving document order. Every name in the set must match exactly
// one declaration; zero or multiple matches abort the run.
func FilterByName(decls []*ast.Node, names *declaration.NameSet) ([]*ast.Node, error) {
	counts := make(map[string]int, names.Len())
	var kept []*ast.Node
	for _, decl := range decls {
		name := DeclName(decl)
		if !names.Has(name) {
			continue
		}
		counts[name]++
		kept = append(kept, decl)
	}

	for _, name := range names.Names() {
		switch counts[name] {
		case 0:
			return nil, diagnostic.Errorf(diagnostic.CategoryUnresolvedName, "type %s referenced by the intrinsic table was not found in the source declarations", name)
		case 1:
		default:
			return nil, diagnostic.Errorf(diagnostic.CategoryUnresolvedName, "type %s matches %d declarations in the source declarations, want exactly one", name, counts[name])
		}
	}

	return kept, nil
}
