package parser

import "fmt"

// ParseError reports that source text is not syntactically valid in the
// parser's grammar. It is returned as a value the caller can inspect;
// malformed input never panics.
type ParseError struct {
	Line int // 1-based line of the first error node, 0 if unknown
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d)", e.Msg, e.Line)
	}
	return e.Msg
}
