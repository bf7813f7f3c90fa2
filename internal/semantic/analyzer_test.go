package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmm/internal/parser"
)

func analyzeSource(t *testing.T, source string) []string {
	t.Helper()

	prog, err := parser.ParseSource("test.cmm", source)
	require.NoError(t, err, "parse failed")

	analyzer := NewAnalyzer()
	errs := analyzer.Analyze(prog)

	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
	}
	return messages
}

func TestCleanProgramHasNoErrors(t *testing.T) {
	errs := analyzeSource(t, `
int gcd(int a, int b) {
    while (b != 0) {
        int r;
        r = a - a / b * b;
        a = b;
        b = r;
    }
    return a;
}
int main() {
    write(gcd(read(), read()));
    return 0;
}`)
	assert.Empty(t, errs)
}

func TestUndefinedVariable(t *testing.T) {
	errs := analyzeSource(t, `int main() { return x; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `undefined variable "x"`)
}

func TestUndefinedFunction(t *testing.T) {
	errs := analyzeSource(t, `int main() { return f(1); }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `undefined function "f"`)
}

func TestCallArityMismatch(t *testing.T) {
	errs := analyzeSource(t, `
int f(int x) { return x; }
int main() { return f(1, 2); }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `function "f" expects 1 argument(s), got 2`)
}

func TestBuiltinArity(t *testing.T) {
	errs := analyzeSource(t, `
int main() {
    write(1, 2);
    return read(3);
}`)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], `function "write" expects 1 argument(s), got 2`)
	assert.Contains(t, errs[1], `function "read" expects 0 argument(s), got 1`)
}

func TestDuplicateFunctionDefinition(t *testing.T) {
	errs := analyzeSource(t, `
int main() { return 1; }
int main() { return 2; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `duplicate definition of function "main"`)
}

func TestConflictingDeclarationArity(t *testing.T) {
	errs := analyzeSource(t, `
int f(int x);
int f(int x, int y) { return x + y; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `conflicting declarations of function "f"`)
}

func TestRepeatedCompatibleDeclarationIsFine(t *testing.T) {
	errs := analyzeSource(t, `
int f(int x);
int f(int x);
int f(int x) { return x; }`)
	assert.Empty(t, errs)
}

func TestDuplicateParameter(t *testing.T) {
	errs := analyzeSource(t, `int f(int x, int x) { return x; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `duplicate parameter "x"`)
}

func TestVariableRedefinitionInSameScope(t *testing.T) {
	errs := analyzeSource(t, `
int main() {
    int a;
    int a;
    return 0;
}`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `redefinition of variable "a"`)
}

func TestShadowingInNestedBlockIsFine(t *testing.T) {
	errs := analyzeSource(t, `
int main() {
    int a;
    a = 1;
    {
        int a;
        a = 2;
    }
    return a;
}`)
	assert.Empty(t, errs)
}

func TestInnerScopeNamesDoNotLeak(t *testing.T) {
	errs := analyzeSource(t, `
int main() {
    {
        int inner;
        inner = 1;
    }
    return inner;
}`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `undefined variable "inner"`)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	errs := analyzeSource(t, `
int main() {
    1 = 2;
    return 0;
}`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "invalid assignment target")
}

func TestParenthesizedAssignmentTargetIsFine(t *testing.T) {
	errs := analyzeSource(t, `
int main() {
    int a;
    (a) = 2;
    return a;
}`)
	assert.Empty(t, errs)
}

func TestFunctionsMayBeCalledBeforeTheirDefinition(t *testing.T) {
	errs := analyzeSource(t, `
int main() { return helper(); }
int helper() { return 42; }`)
	assert.Empty(t, errs)
}

func TestGlobalNamesResolveForLaterChecks(t *testing.T) {
	// Globals are rejected by the translator, not the analyzer; references
	// to them must not cascade into undefined-variable noise.
	errs := analyzeSource(t, `
int g;
int main() { return g; }`)
	assert.Empty(t, errs)
}

func TestFunctionNameIsNotAVariable(t *testing.T) {
	errs := analyzeSource(t, `
int f() { return 0; }
int main() { return f; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `undefined variable "f"`)
}
