package parser

import sitter "github.com/smacker/go-tree-sitter"

// Parser defines the interface for language-specific source code parsers
type Parser interface {
	GetLanguage() string
	Close()
	Parse(source []byte) (*SyntaxTree, error)
}

// BaseParser provides common functionality for all language parsers
type BaseParser struct {
	parser   *sitter.Parser
	language *sitter.Language
	langName string
}

// SyntaxTree is the parsed structural view of one source file. It holds
// the classes and functions found in the source in pre-order depth-first
// declaration order. A SyntaxTree is owned by the call that produced it
// and is never shared or cached across calls.
type SyntaxTree struct {
	Source       []byte
	Language     string
	Declarations []Declaration
}

// Declaration is one class or function found in the tree. Exactly one of
// Class and Function is set.
type Declaration struct {
	Class    *Class
	Function *Function
}

// Function describes one function or method definition, at any nesting
// depth, synchronous or asynchronous.
type Function struct {
	Name       string
	Line       int // 1-based
	Params     []Param
	Docstring  string // "" when absent
	Complexity int    // 1 + branching constructs in the function subtree
}

// Param is a single declared parameter with its optional type annotation.
type Param struct {
	Name string
	Type string // "" when unannotated
}

// Class describes one class definition.
type Class struct {
	Name      string
	Line      int // 1-based
	Docstring string
}

// Functions returns the tree's functions in declaration order.
func (t *SyntaxTree) Functions() []*Function {
	var funcs []*Function
	for _, decl := range t.Declarations {
		if decl.Function != nil {
			funcs = append(funcs, decl.Function)
		}
	}
	return funcs
}

// FindFunction returns the first function whose name matches exactly,
// or nil if the tree contains no such function.
func (t *SyntaxTree) FindFunction(name string) *Function {
	for _, decl := range t.Declarations {
		if decl.Function != nil && decl.Function.Name == name {
			return decl.Function
		}
	}
	return nil
}

// GetLanguage returns the language name for this parser
func (bp *BaseParser) GetLanguage() string {
	return bp.langName
}

func (bp *BaseParser) Close() {
}
