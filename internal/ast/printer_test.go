package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprString(t *testing.T) {
	expr := &AssignExpr{
		Target: &VarRef{Name: "a"},
		Value: &BinaryExpr{
			Op:   "+",
			Left: &VarRef{Name: "b"},
			Right: &ParenExpr{Inner: &BinaryExpr{
				Op:    "*",
				Left:  &IntLit{Value: 2},
				Right: &UnaryExpr{Op: "-", Operand: &VarRef{Name: "c"}},
			}},
		},
	}

	assert.Equal(t, "a = b + (2 * -c)", expr.String())
}

func TestStmtString(t *testing.T) {
	stmt := &IfStmt{
		Cond: &BinaryExpr{Op: ">", Left: &VarRef{Name: "a"}, Right: &IntLit{Value: 0}},
		Then: &ExprStmt{Expr: &CallExpr{Callee: "write", Args: []Expr{&VarRef{Name: "a"}}}},
		Else: &ReturnStmt{Value: &IntLit{Value: 0}},
	}

	assert.Equal(t, "if (a > 0) write(a); else return 0;", stmt.String())
}

func TestFuncDefString(t *testing.T) {
	def := &FuncDef{
		Spec:   SpecInt,
		Name:   "inc",
		Params: []*Param{{Spec: SpecInt, Name: "x"}},
		Body: &CompSt{
			Defs: []*Def{{
				Spec: SpecInt,
				Decs: []*VarDec{{Name: "r", Init: &IntLit{Value: 0}}},
			}},
			Stmts: []Stmt{
				&ReturnStmt{Value: &BinaryExpr{Op: "+", Left: &VarRef{Name: "x"}, Right: &IntLit{Value: 1}}},
			},
		},
	}

	assert.Equal(t, "int inc(int x) {\n    int r = 0;\n    return x + 1;\n}", def.String())
}

func TestGlobalDeclString(t *testing.T) {
	decl := &GlobalDecl{
		Spec: SpecFloat,
		Decs: []*VarDec{{Name: "a"}, {Name: "b"}},
	}

	assert.Equal(t, "float a, b;", decl.String())
}

func TestWhileString(t *testing.T) {
	stmt := &WhileStmt{
		Cond: &UnaryExpr{Op: "!", Operand: &CallExpr{Callee: "done"}},
		Body: &ExprStmt{Expr: &FloatLit{Text: "1.5"}},
	}

	assert.Equal(t, "while (!done()) 1.5;", stmt.String())
}
