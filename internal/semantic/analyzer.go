package semantic

import (
	"fmt"

	"github.com/tliron/commonlog"

	"cmm/internal/ast"
	"cmm/internal/errors"
)

var log = commonlog.GetLogger("cmm.semantic")

// Analyzer validates a program before translation: function registration,
// name resolution, call arity, and assignment targets. It reports user errors
// and never aborts; the translator afterwards trusts that names resolve.
type Analyzer struct {
	errors    []errors.CompilerError
	scope     *SymbolTable
	functions *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		errors: make([]errors.CompilerError, 0),
	}
}

func (a *Analyzer) Analyze(prog *ast.Program) []errors.CompilerError {
	a.errors = make([]errors.CompilerError, 0)
	a.functions = NewSymbolTable(nil)
	AddBuiltins(a.functions)
	a.scope = a.functions.PushScope()

	// Functions first, so calls may reference definitions that appear later
	a.collectFunctions(prog)

	for _, def := range prog.ExtDefs {
		switch node := def.(type) {
		case *ast.GlobalDecl:
			// Globals violate a translator assumption; the translator owns
			// that diagnostic. Names are still defined so later references
			// resolve instead of cascading.
			for _, dec := range node.Decs {
				a.scope.DefineVariable(dec.Name, SymbolVariable, dec.Pos)
				if dec.Init != nil {
					a.analyzeExpr(dec.Init)
				}
			}
		case *ast.FuncDef:
			a.analyzeFuncDef(node)
		}
	}

	log.Debugf("analysis finished with %d error(s)", len(a.errors))
	return a.errors
}

func (a *Analyzer) collectFunctions(prog *ast.Program) {
	for _, def := range prog.ExtDefs {
		switch node := def.(type) {
		case *ast.FuncDecl:
			a.registerFunc(node.Name, len(node.Params), false, node.Pos)
		case *ast.FuncDef:
			a.registerFunc(node.Name, len(node.Params), true, node.Pos)
		}
	}
}

func (a *Analyzer) registerFunc(name string, paramCount int, isDef bool, pos ast.Position) {
	if _, err := a.functions.AddFunc(name, paramCount, isDef, pos); err != nil {
		code := errors.ErrorConflictingDeclaration
		if existing := a.functions.Lookup(name); isDef && existing != nil &&
			existing.Defined && existing.ParamCount == paramCount {
			code = errors.ErrorDuplicateDeclaration
		}
		a.errorf(pos, code, "%s", err)
	}
}

func (a *Analyzer) analyzeFuncDef(fn *ast.FuncDef) {
	log.Debugf("analyzing function %s", fn.Name)
	a.scope = a.scope.PushScope()

	for _, param := range fn.Params {
		if a.scope.LookupLocal(param.Name) != nil {
			a.errorf(param.Pos, errors.ErrorDuplicateDeclaration,
				"duplicate parameter %q", param.Name)
			continue
		}
		a.scope.DefineVariable(param.Name, SymbolParameter, param.Pos)
	}

	a.analyzeCompSt(fn.Body)
	a.scope = a.scope.PopScope()
}

func (a *Analyzer) analyzeCompSt(comp *ast.CompSt) {
	for _, def := range comp.Defs {
		for _, dec := range def.Decs {
			if a.scope.LookupLocal(dec.Name) != nil {
				a.errorf(dec.Pos, errors.ErrorDuplicateDeclaration,
					"redefinition of variable %q", dec.Name)
				continue
			}
			a.scope.DefineVariable(dec.Name, SymbolVariable, dec.Pos)
			if dec.Init != nil {
				a.analyzeExpr(dec.Init)
			}
		}
	}
	for _, stmt := range comp.Stmts {
		a.analyzeStmt(stmt)
	}
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch node := stmt.(type) {
	case *ast.ExprStmt:
		a.analyzeExpr(node.Expr)
	case *ast.ReturnStmt:
		a.analyzeExpr(node.Value)
	case *ast.IfStmt:
		a.analyzeExpr(node.Cond)
		a.analyzeStmt(node.Then)
		if node.Else != nil {
			a.analyzeStmt(node.Else)
		}
	case *ast.WhileStmt:
		a.analyzeExpr(node.Cond)
		a.analyzeStmt(node.Body)
	case *ast.CompSt:
		a.scope = a.scope.PushScope()
		a.analyzeCompSt(node)
		a.scope = a.scope.PopScope()
	}
}

func (a *Analyzer) analyzeExpr(expr ast.Expr) {
	switch node := expr.(type) {
	case *ast.VarRef:
		symbol := a.scope.Lookup(node.Name)
		if symbol == nil || symbol.Kind == SymbolFunction {
			a.errorf(node.Pos, errors.ErrorUndefinedVariable,
				"undefined variable %q", node.Name)
		}
	case *ast.CallExpr:
		a.analyzeCall(node)
	case *ast.AssignExpr:
		if !isAssignable(node.Target) {
			a.errorf(node.Pos, errors.ErrorInvalidAssignment,
				"invalid assignment target")
		}
		a.analyzeExpr(node.Target)
		a.analyzeExpr(node.Value)
	case *ast.BinaryExpr:
		a.analyzeExpr(node.Left)
		a.analyzeExpr(node.Right)
	case *ast.UnaryExpr:
		a.analyzeExpr(node.Operand)
	case *ast.ParenExpr:
		a.analyzeExpr(node.Inner)
	}
}

func (a *Analyzer) analyzeCall(call *ast.CallExpr) {
	symbol := a.functions.Lookup(call.Callee)
	if symbol == nil || symbol.Kind != SymbolFunction {
		a.errorf(call.Pos, errors.ErrorUndefinedFunction,
			"undefined function %q", call.Callee)
	} else if symbol.ParamCount != len(call.Args) {
		a.errorf(call.Pos, errors.ErrorInvalidArguments,
			"function %q expects %d argument(s), got %d",
			call.Callee, symbol.ParamCount, len(call.Args))
	}
	for _, arg := range call.Args {
		a.analyzeExpr(arg)
	}
}

// isAssignable reports whether an expression can be the target of "=":
// a variable reference, possibly parenthesized.
func isAssignable(expr ast.Expr) bool {
	switch node := expr.(type) {
	case *ast.VarRef:
		return true
	case *ast.ParenExpr:
		return isAssignable(node.Inner)
	default:
		return false
	}
}

func (a *Analyzer) errorf(pos ast.Position, code, format string, args ...interface{}) {
	a.errors = append(a.errors, errors.CompilerError{
		Level:    errors.Error,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	})
}
