package audit

import (
	"fmt"
	"strings"
)

// GenerateDocumentation produces a markdown overview of the classes and
// functions in a source file, in declaration order. fileLabel is embedded
// in the document title.
//
// A parse failure does not fail the operation: the returned status is
// still StatusDocsGenerated and the document body is the parse-error
// message. Callers wanting stricter behavior must inspect the body.
func (a *Auditor) GenerateDocumentation(source, fileLabel string) *DocResult {
	var body strings.Builder

	tree, err := a.parse(source)
	if err != nil {
		fmt.Fprintf(&body, "Could not parse file due to syntax error: %v", err)
	} else {
		for _, decl := range tree.Declarations {
			switch {
			case decl.Class != nil:
				fmt.Fprintf(&body, "\n### Class: `%s`\n", decl.Class.Name)
				if decl.Class.Docstring != "" {
					fmt.Fprintf(&body, "> %s\n\n", decl.Class.Docstring)
				}
			case decl.Function != nil:
				names := make([]string, len(decl.Function.Params))
				for i, p := range decl.Function.Params {
					names[i] = p.Name
				}
				fmt.Fprintf(&body, "- `def %s(%s):`\n", decl.Function.Name, strings.Join(names, ", "))
				if decl.Function.Docstring != "" {
					fmt.Fprintf(&body, "  - **Docstring:** %s\n", decl.Function.Docstring)
				} else {
					body.WriteString("  - **Purpose:** [TODO: Describe the function's purpose.]\n")
				}
			}
		}
	}

	doc := fmt.Sprintf(`# Documentation for %s
This document provides an auto-generated overview of the code structure.

## Summary
The file contains %d lines of code.

## Code Structure
%s
*Note: This is auto-generated documentation. Please review and fill in the details.*
`, "`"+fileLabel+"`", countLines(source), body.String())

	return &DocResult{
		Status:        StatusDocsGenerated,
		FilePath:      fileLabel,
		Documentation: doc,
	}
}
