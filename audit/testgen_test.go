package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTestSkeleton(t *testing.T) {
	result := New().GenerateTestSkeleton(`def add(a: int, b: int):
    """Add two numbers."""
    return a + b
`, "add")

	assert.Equal(t, StatusTestsGenerated, result.Status)
	assert.Equal(t, "add", result.FunctionTested)

	code := result.TestSuiteCode
	assert.Contains(t, code, "import unittest")
	assert.Contains(t, code, "class TestAdd(unittest.TestCase):")
	assert.Contains(t, code, "def setUp(self):")
	assert.Contains(t, code, "def test_nominal_case(self):")
	assert.Contains(t, code, "Arguments: (a: int, b: int)")
	assert.Contains(t, code, "def test_edge_cases(self):")
	assert.Contains(t, code, "def test_invalid_input(self):")
	assert.Contains(t, code, "self.assertTrue(True)")
}

func TestGenerateTestSkeletonUnannotatedParams(t *testing.T) {
	result := New().GenerateTestSkeleton("def greet(name, excited=False):\n    pass\n", "greet")

	require.Equal(t, StatusTestsGenerated, result.Status)
	assert.Contains(t, result.TestSuiteCode, "Arguments: (name, excited)")
	assert.Contains(t, result.TestSuiteCode, "class TestGreet(unittest.TestCase):")
}

func TestGenerateTestSkeletonNotFound(t *testing.T) {
	result := New().GenerateTestSkeleton("def add(a, b):\n    return a + b\n", "subtract")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "Function 'subtract' not found in the file.", result.Message)
	assert.Empty(t, result.TestSuiteCode)
}

func TestGenerateTestSkeletonExactMatch(t *testing.T) {
	result := New().GenerateTestSkeleton("def Add(a, b):\n    return a + b\n", "add")

	assert.Equal(t, StatusError, result.Status)
}

func TestGenerateTestSkeletonParseError(t *testing.T) {
	result := New().GenerateTestSkeleton("def broken(:\n    pass\n", "broken")

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Message, "Syntax error in file:")
}

func TestGenerateTestSkeletonFirstMatchWins(t *testing.T) {
	result := New().GenerateTestSkeleton(`def dup(a):
    pass

def dup(a, b):
    pass
`, "dup")

	require.Equal(t, StatusTestsGenerated, result.Status)
	assert.Contains(t, result.TestSuiteCode, "Arguments: (a)")
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add", "Add"},
		{"myFunc", "Myfunc"},
		{"my_func", "My_func"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalize(tt.in))
	}
}
