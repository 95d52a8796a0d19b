package audit

// Status values reported by audit operations.
const (
	StatusAnalysisComplete = "analysis_complete"
	StatusDocsGenerated    = "documentation_generated"
	StatusTestsGenerated   = "tests_generated"
	StatusError            = "error"
)

// NoIssuesFound is the summary used when analysis has nothing to flag.
const NoIssuesFound = "No major issues found."

// QualityIssue is one finding tied to a function and line.
type QualityIssue struct {
	Function   string `json:"function"`
	Line       int    `json:"line,omitempty"`
	Complexity int    `json:"complexity,omitempty"`
	Message    string `json:"message"`
}

// QualityReport is the result of static quality analysis on one source
// file. On a parse failure Status is "error" and Message carries the
// parser's message; the remaining fields are zero.
type QualityReport struct {
	Status                 string         `json:"status"`
	Message                string         `json:"message,omitempty"`
	LineCount              int            `json:"line_count"`
	OverallComplexityScore int            `json:"overall_complexity_score"`
	Issues                 []QualityIssue `json:"issues_found,omitempty"`
	Summary                string         `json:"summary,omitempty"`
	Suggestions            []string       `json:"suggestions,omitempty"`
}

// DocResult is the generated documentation for one source file.
type DocResult struct {
	Status        string `json:"status"`
	FilePath      string `json:"file_path"`
	Documentation string `json:"documentation"`
}

// TestResult is the generated unit-test skeleton for one function.
type TestResult struct {
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	FunctionTested string `json:"function_tested,omitempty"`
	TestSuiteCode  string `json:"test_suite_code,omitempty"`
}
