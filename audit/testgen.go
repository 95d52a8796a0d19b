package audit

import (
	"fmt"
	"strings"
	"unicode"
)

// testSkeletonTemplate is the fixed unittest scaffold. Placeholders:
// %[1]s function name, %[2]s capitalized suite name, %[3]s rendered
// parameter list.
const testSkeletonTemplate = `import unittest
# TODO: Update this import to match the actual file name
# from your_module import %[1]s

class Test%[2]s(unittest.TestCase):
    """
    Test suite for the %[1]s function.
    """

    def setUp(self):
        """Set up test fixtures, if any."""
        # self.fixture = ...
        pass

    def test_nominal_case(self):
        """
        Tests the function with typical, expected inputs.
        Arguments: (%[3]s)
        """
        # Example:
        # result = %[1]s(...)
        # self.assertEqual(result, 'expected_output')
        self.assertTrue(True)  # Placeholder assertion

    def test_edge_cases(self):
        """
        Tests edge cases like empty inputs, None, or zero values.
        """
        # Example for a function that takes a list:
        # self.assertEqual(%[1]s([]), [])
        pass  # TODO: Add edge case tests

    def test_invalid_input(self):
        """
        Tests how the function handles invalid input types.
        """
        # Example:
        # with self.assertRaises(TypeError):
        #     %[1]s(123)  # Assuming it expects a string
        pass  # TODO: Add invalid input tests

if __name__ == '__main__':
    unittest.main()
`

// GenerateTestSkeleton produces a unit-test scaffold for the first
// function named functionName (exact match). A missing function is a
// genuine error, unlike documentation generation's soft failure.
func (a *Auditor) GenerateTestSkeleton(source, functionName string) *TestResult {
	tree, err := a.parse(source)
	if err != nil {
		return &TestResult{
			Status:  StatusError,
			Message: fmt.Sprintf("Syntax error in file: %v", err),
		}
	}

	fn := tree.FindFunction(functionName)
	if fn == nil {
		return &TestResult{
			Status:  StatusError,
			Message: fmt.Sprintf("Function '%s' not found in the file.", functionName),
		}
	}

	rendered := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		if p.Type != "" {
			rendered[i] = p.Name + ": " + p.Type
		} else {
			rendered[i] = p.Name
		}
	}

	code := fmt.Sprintf(testSkeletonTemplate,
		functionName, capitalize(functionName), strings.Join(rendered, ", "))

	return &TestResult{
		Status:         StatusTestsGenerated,
		FunctionTested: functionName,
		TestSuiteCode:  code,
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
