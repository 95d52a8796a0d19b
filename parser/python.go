package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

type PythonParser struct {
	BaseParser
}

// pythonBranchKinds are the node types that add one decision path to a
// function's cyclomatic complexity. Async for/with parse to the same
// node types as their synchronous forms.
var pythonBranchKinds = map[string]bool{
	"if_statement":     true,
	"elif_clause":      true,
	"for_statement":    true,
	"while_statement":  true,
	"boolean_operator": true,
	"with_statement":   true,
	"except_clause":    true,
}

// NewPythonParser creates a new Python source parser using tree-sitter
func NewPythonParser() (*PythonParser, error) {
	parser := sitter.NewParser()
	language := python.GetLanguage()
	parser.SetLanguage(language)

	return &PythonParser{
		BaseParser: BaseParser{
			parser:   parser,
			language: language,
			langName: "python",
		},
	}, nil
}

func (p *PythonParser) Close() {
}

// Parse turns Python source text into a SyntaxTree. Malformed input is
// reported as a *ParseError, never a panic.
func (p *PythonParser) Parse(source []byte) (*SyntaxTree, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	if tree == nil {
		return nil, &ParseError{Msg: "parser produced no tree"}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxErrorFrom(root, source)
	}

	st := &SyntaxTree{Source: source, Language: p.langName}

	WalkAST(root, func(n *sitter.Node) {
		switch n.Type() {
		case "class_definition":
			if class := p.processClass(n, source); class != nil {
				st.Declarations = append(st.Declarations, Declaration{Class: class})
			}
		case "function_definition":
			if fn := p.processFunction(n, source); fn != nil {
				st.Declarations = append(st.Declarations, Declaration{Function: fn})
			}
		}
	})

	return st, nil
}

// processFunction extracts one function definition, including methods,
// nested functions, and async functions.
func (p *PythonParser) processFunction(node *sitter.Node, source []byte) *Function {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	fn := &Function{
		Name: NodeText(nameNode, source),
		Line: int(node.StartPoint().Row) + 1,
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		fn.Params = p.processParameters(params, source)
	}

	fn.Docstring = leadingDocstring(node.ChildByFieldName("body"), source)
	fn.Complexity = countComplexity(node)

	return fn
}

// processClass extracts one class definition with its docstring.
func (p *PythonParser) processClass(node *sitter.Node, source []byte) *Class {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &Class{
		Name:      NodeText(nameNode, source),
		Line:      int(node.StartPoint().Row) + 1,
		Docstring: leadingDocstring(node.ChildByFieldName("body"), source),
	}
}

// processParameters extracts named parameters in declaration order.
// Splat parameters (*args, **kwargs) and bare separators are skipped.
func (p *PythonParser) processParameters(node *sitter.Node, source []byte) []Param {
	var params []Param

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "identifier":
			params = append(params, Param{Name: NodeText(child, source)})
		case "typed_parameter":
			param := Param{}
			if inner := child.NamedChild(0); inner != nil && inner.Type() == "identifier" {
				param.Name = NodeText(inner, source)
			}
			if typeNode := child.ChildByFieldName("type"); typeNode != nil {
				param.Type = NodeText(typeNode, source)
			}
			if param.Name != "" {
				params = append(params, param)
			}
		case "default_parameter":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil && nameNode.Type() == "identifier" {
				params = append(params, Param{Name: NodeText(nameNode, source)})
			}
		case "typed_default_parameter":
			param := Param{}
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				param.Name = NodeText(nameNode, source)
			}
			if typeNode := child.ChildByFieldName("type"); typeNode != nil {
				param.Type = NodeText(typeNode, source)
			}
			if param.Name != "" {
				params = append(params, param)
			}
		}
	}

	return params
}

// leadingDocstring returns the docstring of a block body: the string
// literal that is the body's first statement. An empty string literal
// counts as no docstring.
func leadingDocstring(body *sitter.Node, source []byte) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}

	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}

	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}

	return strings.TrimSpace(UnquoteString(NodeText(str, source)))
}

// countComplexity computes cyclomatic complexity for a function node:
// 1 plus every branching construct anywhere in the function's subtree,
// nested function bodies included.
func countComplexity(node *sitter.Node) int {
	complexity := 1

	WalkAST(node, func(n *sitter.Node) {
		if pythonBranchKinds[n.Type()] {
			complexity++
		}
	})

	return complexity
}

// syntaxErrorFrom builds a ParseError from the first ERROR or MISSING
// node in the tree.
func syntaxErrorFrom(root *sitter.Node, source []byte) *ParseError {
	var bad *sitter.Node

	WalkAST(root, func(n *sitter.Node) {
		if bad != nil {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			bad = n
		}
	})

	if bad == nil {
		return &ParseError{Msg: "invalid syntax"}
	}

	line := int(bad.StartPoint().Row) + 1
	if bad.IsMissing() {
		return &ParseError{Line: line, Msg: "invalid syntax: missing " + bad.Type()}
	}

	text := NodeText(bad, source)
	if len(text) > 40 {
		text = text[:40]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return &ParseError{Line: line, Msg: "invalid syntax"}
	}
	return &ParseError{Line: line, Msg: "invalid syntax near '" + text + "'"}
}
