// Package ast re-exports the subset of typescript-go's internal ast
// package needed by importers outside the typescript-go module.
package ast

import "github.com/microsoft/typescript-go/internal/ast"

type (
	Kind       = ast.Kind
	Node       = ast.Node
	NodeList   = ast.NodeList
	SourceFile = ast.SourceFile
	Diagnostic = ast.Diagnostic

	Identifier                   = ast.Identifier
	StringLiteral                = ast.StringLiteral
	QualifiedName                = ast.QualifiedName
	TypeReferenceNode            = ast.TypeReferenceNode
	PropertySignatureDeclaration = ast.PropertySignatureDeclaration
	InterfaceDeclaration         = ast.InterfaceDeclaration
	TypeAliasDeclaration         = ast.TypeAliasDeclaration
	ModuleDeclaration            = ast.ModuleDeclaration
	ModuleBlock                  = ast.ModuleBlock
	HeritageClause               = ast.HeritageClause
	ExpressionWithTypeArguments  = ast.ExpressionWithTypeArguments
)

const (
	KindIdentifier                  = ast.KindIdentifier
	KindStringLiteral               = ast.KindStringLiteral
	KindQuestionToken               = ast.KindQuestionToken
	KindExtendsKeyword              = ast.KindExtendsKeyword
	KindQualifiedName               = ast.KindQualifiedName
	KindTypeReference               = ast.KindTypeReference
	KindPropertySignature           = ast.KindPropertySignature
	KindHeritageClause              = ast.KindHeritageClause
	KindExpressionWithTypeArguments = ast.KindExpressionWithTypeArguments
	KindInterfaceDeclaration        = ast.KindInterfaceDeclaration
	KindTypeAliasDeclaration        = ast.KindTypeAliasDeclaration
	KindModuleDeclaration           = ast.KindModuleDeclaration
	KindModuleBlock                 = ast.KindModuleBlock
)
