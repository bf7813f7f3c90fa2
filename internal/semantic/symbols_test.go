package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmm/internal/ast"
)

func TestSharedIDPool(t *testing.T) {
	root := NewSymbolTable(nil)

	a := root.DefineVariable("a", SymbolVariable, ast.Position{})
	tmp := root.NewTempID()
	inner := root.PushScope()
	b := inner.DefineVariable("b", SymbolVariable, ast.Position{})

	// Named variables and temporaries share one monotonic id space
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, tmp)
	assert.Equal(t, 3, b.ID)
}

func TestScopeChainLookup(t *testing.T) {
	root := NewSymbolTable(nil)
	outer := root.DefineVariable("x", SymbolVariable, ast.Position{})

	inner := root.PushScope()
	assert.Same(t, outer, inner.Lookup("x"))
	assert.Nil(t, inner.LookupLocal("x"))

	shadow := inner.DefineVariable("x", SymbolVariable, ast.Position{})
	assert.Same(t, shadow, inner.Lookup("x"))
	assert.NotEqual(t, outer.ID, shadow.ID)

	assert.Same(t, root, inner.PopScope())
	assert.Same(t, outer, root.Lookup("x"))
}

func TestDefineParamsInSourceOrder(t *testing.T) {
	root := NewSymbolTable(nil)
	scope := root.PushScope()

	params := []*ast.Param{
		{Name: "a"},
		{Name: "b"},
		{Name: "c"},
	}
	symbols := scope.DefineParams(params)

	require.Len(t, symbols, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{symbols[0].ID, symbols[1].ID, symbols[2].ID})
	assert.Equal(t, SymbolParameter, symbols[0].Kind)
	assert.Same(t, symbols[1], scope.Lookup("b"))
}

func TestAddFuncRegistration(t *testing.T) {
	root := NewSymbolTable(nil)

	decl, err := root.AddFunc("f", 2, false, ast.Position{})
	require.NoError(t, err)
	assert.False(t, decl.Defined)

	def, err := root.AddFunc("f", 2, true, ast.Position{})
	require.NoError(t, err)
	assert.Same(t, decl, def)
	assert.True(t, def.Defined)

	_, err = root.AddFunc("f", 2, true, ast.Position{})
	assert.ErrorContains(t, err, "duplicate definition")

	_, err = root.AddFunc("f", 3, false, ast.Position{})
	assert.ErrorContains(t, err, "conflicting declarations")
}

func TestAddFuncRejectsVariableName(t *testing.T) {
	root := NewSymbolTable(nil)
	root.DefineVariable("x", SymbolVariable, ast.Position{})

	_, err := root.AddFunc("x", 0, true, ast.Position{})
	assert.ErrorContains(t, err, "already declared as a variable")
}

func TestBuiltins(t *testing.T) {
	root := NewSymbolTable(nil)
	AddBuiltins(root)

	read := root.Lookup("read")
	require.NotNil(t, read)
	assert.True(t, read.Builtin)
	assert.Zero(t, read.ParamCount)

	write := root.Lookup("write")
	require.NotNil(t, write)
	assert.Equal(t, 1, write.ParamCount)
}
