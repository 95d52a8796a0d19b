package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// WalkAST recursively traverses an AST in pre-order and applies a visitor
// function to each node
func WalkAST(node *sitter.Node, visitor func(*sitter.Node)) {
	visitor(node)

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		WalkAST(child, visitor)
	}
}

// NodeText returns the source text covered by a node
func NodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// UnquoteString strips string prefixes (r, b, u, f) and surrounding
// quotes from a string-literal node's text. Triple quotes are handled
// before single quotes.
func UnquoteString(text string) string {
	text = strings.TrimLeft(text, "rRbBuUfF")

	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(text, q) && strings.HasSuffix(text, q) && len(text) >= 2*len(q) {
			return text[len(q) : len(text)-len(q)]
		}
	}
	return text
}
