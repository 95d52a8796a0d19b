package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePython(t *testing.T, source string) *SyntaxTree {
	t.Helper()

	p, err := NewPythonParser()
	require.NoError(t, err)
	defer p.Close()

	tree, err := p.Parse([]byte(source))
	require.NoError(t, err)
	return tree
}

func TestParseSimpleFunction(t *testing.T) {
	tree := parsePython(t, `def add(a: int, b: int):
    """Add two numbers."""
    return a + b
`)

	funcs := tree.Functions()
	require.Len(t, funcs, 1)

	fn := funcs[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, 1, fn.Line)
	assert.Equal(t, "Add two numbers.", fn.Docstring)
	assert.Equal(t, 1, fn.Complexity)

	require.Len(t, fn.Params, 2)
	assert.Equal(t, Param{Name: "a", Type: "int"}, fn.Params[0])
	assert.Equal(t, Param{Name: "b", Type: "int"}, fn.Params[1])
}

func TestParseUnannotatedAndDefaultParams(t *testing.T) {
	tree := parsePython(t, `def greet(name, greeting="hi", times: int = 1, *args, **kwargs):
    pass
`)

	funcs := tree.Functions()
	require.Len(t, funcs, 1)

	// Splat parameters are not extracted.
	require.Len(t, funcs[0].Params, 3)
	assert.Equal(t, Param{Name: "name"}, funcs[0].Params[0])
	assert.Equal(t, Param{Name: "greeting"}, funcs[0].Params[1])
	assert.Equal(t, Param{Name: "times", Type: "int"}, funcs[0].Params[2])
}

func TestParseClassWithMethods(t *testing.T) {
	tree := parsePython(t, `class Greeter:
    """Says hello."""

    def greet(self, name):
        """Greet someone."""
        return "hi " + name

def standalone():
    pass
`)

	require.Len(t, tree.Declarations, 3)

	require.NotNil(t, tree.Declarations[0].Class)
	assert.Equal(t, "Greeter", tree.Declarations[0].Class.Name)
	assert.Equal(t, "Says hello.", tree.Declarations[0].Class.Docstring)

	// Pre-order: the method follows its class, before the next top-level def.
	require.NotNil(t, tree.Declarations[1].Function)
	assert.Equal(t, "greet", tree.Declarations[1].Function.Name)

	require.NotNil(t, tree.Declarations[2].Function)
	assert.Equal(t, "standalone", tree.Declarations[2].Function.Name)
}

func TestParseNestedAndAsyncFunctions(t *testing.T) {
	tree := parsePython(t, `def outer():
    def inner():
        pass
    return inner

async def fetch(url):
    return url
`)

	funcs := tree.Functions()
	require.Len(t, funcs, 3)
	assert.Equal(t, "outer", funcs[0].Name)
	assert.Equal(t, "inner", funcs[1].Name)
	assert.Equal(t, "fetch", funcs[2].Name)
	assert.Equal(t, 2, funcs[1].Line)
}

func TestComplexityCountsBranchConstructs(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{
			name:   "no branches",
			source: "def f():\n    return 1\n",
			want:   1,
		},
		{
			name:   "single if",
			source: "def f(x):\n    if x:\n        return 1\n    return 0\n",
			want:   2,
		},
		{
			name:   "if with elif",
			source: "def f(x):\n    if x == 1:\n        return 1\n    elif x == 2:\n        return 2\n    return 0\n",
			want:   3,
		},
		{
			name:   "boolean operators",
			source: "def f(a, b, c):\n    return a and b or c\n",
			want:   3,
		},
		{
			name: "loops with and except",
			source: `def f(x):
    for i in range(x):
        while i < 3:
            i += 1
    with open('f') as fh:
        try:
            fh.read()
        except IOError:
            pass
    return x
`,
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parsePython(t, tt.source)
			funcs := tree.Functions()
			require.Len(t, funcs, 1)
			assert.Equal(t, tt.want, funcs[0].Complexity)
		})
	}
}

func TestComplexityIncludesNestedFunctionBranches(t *testing.T) {
	tree := parsePython(t, `def outer(x):
    def inner(y):
        if y:
            return 1
        return 0
    return inner(x)
`)

	funcs := tree.Functions()
	require.Len(t, funcs, 2)

	// The outer walk covers the full subtree, inner bodies included.
	assert.Equal(t, 2, funcs[0].Complexity)
	assert.Equal(t, 2, funcs[1].Complexity)
}

func TestEmptyDocstringCountsAsMissing(t *testing.T) {
	tree := parsePython(t, "def f():\n    \"\"\"\"\"\"\n    pass\n")

	funcs := tree.Functions()
	require.Len(t, funcs, 1)
	assert.Empty(t, funcs[0].Docstring)
}

func TestParseEmptySource(t *testing.T) {
	tree := parsePython(t, "")
	assert.Empty(t, tree.Declarations)
}

func TestParseErrorIsTyped(t *testing.T) {
	p, err := NewPythonParser()
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Parse([]byte("def broken(:\n    return 1\n"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.NotEmpty(t, parseErr.Msg)
}

func TestCreateParser(t *testing.T) {
	p, err := CreateParser("example.py")
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, "python", p.GetLanguage())

	_, err = CreateParser("example.rb")
	assert.Error(t, err)
}

func TestUnquoteString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"""triple"""`, "triple"},
		{`'''triple'''`, "triple"},
		{`"single"`, "single"},
		{`'single'`, "single"},
		{`r"raw"`, "raw"},
		{`""`, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UnquoteString(tt.in))
	}
}
