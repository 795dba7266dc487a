package scanner

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

const (
	nodeUsing               = "using_directive"
	nodeQualifiedName       = "qualified_name"
	nodeIdentifier          = "identifier"
	nodeMemberAccess        = "member_access_expression"
	nodeNamespace           = "namespace_declaration"
	nodeFileScopedNamespace = "file_scoped_namespace_declaration"
)

// scanCSharp collects using directive targets, qualified type names, and
// member access chains. Names of the file's own namespace declarations are
// not collected. Files with syntax errors are also scanned line by line.
func scanCSharp(ctx context.Context, src []byte) ([]string, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	var names []string
	collect(root, "", src, &names)

	if root.HasError() {
		names = append(names, scanText(".cs", src)...)
	}
	return names, nil
}

func collect(node *sitter.Node, parentType string, src []byte, names *[]string) {
	switch node.Type() {
	case nodeUsing:
		if target := usingTarget(node); target != nil {
			*names = append(*names, target.Content(src))
		}
		return
	case nodeQualifiedName:
		if parentType != nodeQualifiedName {
			*names = append(*names, node.Content(src))
		}
		return
	case nodeMemberAccess:
		if parentType != nodeMemberAccess {
			*names = append(*names, node.Content(src))
		}
	}

	skipName := node.Type() == nodeNamespace || node.Type() == nodeFileScopedNamespace
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		if skipName && isName(child) {
			skipName = false
			continue
		}
		collect(child, node.Type(), src, names)
	}
}

// usingTarget returns the imported name, which follows any alias.
func usingTarget(node *sitter.Node) *sitter.Node {
	var target *sitter.Node
	for i := range int(node.NamedChildCount()) {
		if child := node.NamedChild(i); child != nil && isName(child) {
			target = child
		}
	}
	return target
}

func isName(node *sitter.Node) bool {
	t := node.Type()
	return t == nodeQualifiedName || t == nodeIdentifier
}
