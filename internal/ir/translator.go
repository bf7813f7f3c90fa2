package ir

import (
	"fmt"

	"github.com/tliron/commonlog"

	"cmm/internal/ast"
	"cmm/internal/semantic"
)

var log = commonlog.GetLogger("cmm.ir")

// TranslateError is a translation-time assumption violation. Translation
// continues past these with a safe placeholder; earlier semantic errors are
// not repeated here.
type TranslateError struct {
	Line    int
	Message string
}

func (e TranslateError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// Translator lowers an analyzed AST to three-address code. It carries all
// run state, so independent translators never share anything.
type Translator struct {
	code   *Code
	scope  *semantic.SymbolTable
	labels int
	errs   []TranslateError
}

// NewTranslator creates a translator over a symbol table root. The table
// must already contain the read/write builtins.
func NewTranslator(symbols *semantic.SymbolTable) *Translator {
	return &Translator{
		code:  NewCode(),
		scope: symbols,
	}
}

// Errors returns the assumption violations hit during translation.
func (t *Translator) Errors() []TranslateError {
	return t.errs
}

// Translate lowers a whole program and returns the instruction list.
func (t *Translator) Translate(prog *ast.Program) *Code {
	for _, def := range prog.ExtDefs {
		t.translateExtDef(def)
	}
	log.Debugf("translation emitted %d instruction(s)", t.code.Len())
	return t.code
}

func (t *Translator) translateExtDef(def ast.ExtDef) {
	switch node := def.(type) {
	case *ast.GlobalDecl:
		t.errorf(node.Pos.Line, "Assumption 4 is violated. Global variables are not allowed.")
	case *ast.FuncDecl:
		// Declarations register the signature and emit nothing. Conflicts
		// were reported by semantic analysis.
		t.scope.AddFunc(node.Name, len(node.Params), false, node.Pos)
	case *ast.FuncDef:
		if _, err := t.scope.AddFunc(node.Name, len(node.Params), true, node.Pos); err != nil {
			return
		}
		log.Debugf("lowering function %s", node.Name)
		t.scope = t.scope.PushScope()
		params := t.scope.DefineParams(node.Params)
		t.genFuncDef(node.Name, params)
		t.translateCompSt(node.Body)
		t.scope = t.scope.PopScope()
	}
}

func (t *Translator) genFuncDef(name string, params []*semantic.Symbol) {
	t.code.Append(&FuncDef{Name: name})
	for _, param := range params {
		t.code.Append(&Param{VarID: param.ID})
	}
}

func (t *Translator) translateCompSt(comp *ast.CompSt) {
	for _, def := range comp.Defs {
		t.translateDef(def)
	}
	for _, stmt := range comp.Stmts {
		t.translateStmt(stmt)
	}
}

func (t *Translator) translateDef(def *ast.Def) {
	for _, dec := range def.Decs {
		symbol := t.scope.DefineVariable(dec.Name, semantic.SymbolVariable, dec.Pos)
		if dec.Init != nil {
			v := t.translateExp(dec.Init)
			t.code.Append(&Assign{Dst: Variable(symbol.ID), Src: v})
		}
	}
}

func (t *Translator) translateStmt(stmt ast.Stmt) {
	switch node := stmt.(type) {
	case *ast.ExprStmt:
		t.translateExp(node.Expr)
	case *ast.CompSt:
		t.scope = t.scope.PushScope()
		t.translateCompSt(node)
		t.scope = t.scope.PopScope()
	case *ast.ReturnStmt:
		v := t.translateExp(node.Value)
		t.code.Append(&Return{Value: v})
	case *ast.IfStmt:
		if node.Else != nil {
			t.translateIfElse(node)
		} else {
			t.translateIf(node)
		}
	case *ast.WhileStmt:
		t.translateWhile(node)
	}
}

func (t *Translator) translateIf(node *ast.IfStmt) {
	labelTrue := t.newLabel()
	labelFalse := t.newLabel()

	t.translateCond(node.Cond, labelTrue, labelFalse)
	t.code.Append(&Label{ID: labelTrue})
	t.translateStmt(node.Then)
	t.code.Append(&Label{ID: labelFalse})
}

func (t *Translator) translateIfElse(node *ast.IfStmt) {
	labelTrue := t.newLabel()
	labelFalse := t.newLabel()
	labelExit := t.newLabel()

	t.translateCond(node.Cond, labelTrue, labelFalse)
	t.code.Append(&Label{ID: labelTrue})
	t.translateStmt(node.Then)
	t.code.Append(&Goto{Target: labelExit})
	t.code.Append(&Label{ID: labelFalse})
	t.translateStmt(node.Else)
	t.code.Append(&Label{ID: labelExit})
}

func (t *Translator) translateWhile(node *ast.WhileStmt) {
	labelBegin := t.newLabel()
	labelBody := t.newLabel()
	labelFalse := t.newLabel()

	t.code.Append(&Label{ID: labelBegin})
	t.translateCond(node.Cond, labelBody, labelFalse)
	t.code.Append(&Label{ID: labelBody})
	t.translateStmt(node.Body)
	t.code.Append(&Goto{Target: labelBegin})
	t.code.Append(&Label{ID: labelFalse})
}

// translateExp lowers an expression and returns the operand holding its
// value. Boolean-shaped expressions are materialized through the condition
// lowerer.
func (t *Translator) translateExp(expr ast.Expr) Operand {
	switch node := expr.(type) {
	case *ast.IntLit:
		return Const(node.Value)
	case *ast.FloatLit:
		t.errorf(node.Pos.Line, "Assumption 1 is violated. Floats are not allowed.")
		return Const(0)
	case *ast.VarRef:
		return t.translateVar(node)
	case *ast.ParenExpr:
		return t.translateExp(node.Inner)
	case *ast.UnaryExpr:
		if node.Op == "-" {
			return t.translateUnaryMinus(node)
		}
		return t.translateBoolExp(node)
	case *ast.AssignExpr:
		return t.translateAssign(node)
	case *ast.BinaryExpr:
		switch node.Op {
		case "+":
			return t.translateArith(node, OpAdd)
		case "-":
			return t.translateArith(node, OpSub)
		case "*":
			return t.translateArith(node, OpMul)
		case "/":
			return t.translateArith(node, OpDiv)
		default:
			return t.translateBoolExp(node)
		}
	case *ast.CallExpr:
		return t.translateCall(node)
	}
	panic(fmt.Sprintf("unexpected expression node %T", expr))
}

func (t *Translator) translateVar(node *ast.VarRef) Operand {
	symbol := t.scope.Lookup(node.Name)
	if symbol == nil || symbol.Kind == semantic.SymbolFunction {
		// Semantic analysis resolves every reference; reaching this is a
		// pipeline bug, not a user error.
		panic(fmt.Sprintf("unresolved variable %q at line %d", node.Name, node.Pos.Line))
	}
	return Variable(symbol.ID)
}

func (t *Translator) translateUnaryMinus(node *ast.UnaryExpr) Operand {
	v := t.translateExp(node.Operand)
	if v.IsConst() {
		return Const(-v.Val)
	}

	tmp := t.newTemp()
	t.code.Append(&Arith{Op: OpSub, Dst: tmp, Left: Const(0), Right: v})
	return tmp
}

func (t *Translator) translateArith(node *ast.BinaryExpr, op ArithOp) Operand {
	l := t.translateExp(node.Left)
	r := t.translateExp(node.Right)

	// A constant zero divisor is left to the runtime instruction
	if l.IsConst() && r.IsConst() && !(op == OpDiv && r.Val == 0) {
		return Const(op.Eval(l.Val, r.Val))
	}

	tmp := t.newTemp()
	t.code.Append(&Arith{Op: op, Dst: tmp, Left: l, Right: r})
	return tmp
}

func (t *Translator) translateAssign(node *ast.AssignExpr) Operand {
	l := t.translateExp(node.Target)
	r := t.translateExp(node.Value)

	if l.IsConst() {
		panic(fmt.Sprintf("constant assignment target at line %d", node.Pos.Line))
	}
	t.code.Append(&Assign{Dst: l, Src: r})
	return l
}

func (t *Translator) translateCall(node *ast.CallExpr) Operand {
	if node.Callee == "read" && len(node.Args) == 0 {
		tmp := t.newTemp()
		t.code.Append(&Read{DstID: tmp.ID})
		return tmp
	}

	if node.Callee == "write" && len(node.Args) == 1 {
		v := t.translateExp(node.Args[0])
		t.code.Append(&Write{Value: v})
		return Const(0)
	}

	t.translateArgs(node.Args)
	tmp := t.newTemp()
	t.code.Append(&Call{Callee: node.Callee, DstID: tmp.ID})
	return tmp
}

// translateArgs evaluates arguments in source order but appends their ARG
// instructions in reverse, so a callee popping a stack sees them in source
// order. Downstream stages rely on this exact convention.
func (t *Translator) translateArgs(args []ast.Expr) {
	if len(args) == 0 {
		return
	}

	v := t.translateExp(args[0])
	t.translateArgs(args[1:])
	t.code.Append(&Arg{Value: v})
}

// translateBoolExp materializes a boolean-shaped expression as a value. The
// write on the true path after the zero preset is redundant but keeps every
// path correct.
func (t *Translator) translateBoolExp(expr ast.Expr) Operand {
	labelTrue := t.newLabel()
	labelFalse := t.newLabel()
	tmp := t.newTemp()

	t.code.Append(&Assign{Dst: tmp, Src: Const(0)})
	t.translateCond(expr, labelTrue, labelFalse)
	t.code.Append(&Label{ID: labelTrue})
	t.code.Append(&Assign{Dst: tmp, Src: Const(1)})
	t.code.Append(&Label{ID: labelFalse})
	return tmp
}

// translateCond emits code that jumps to labelTrue when expr is truthy and
// to labelFalse otherwise. Every path through the emitted block reaches one
// of the two labels; nothing falls through.
func (t *Translator) translateCond(expr ast.Expr, labelTrue, labelFalse int) {
	switch node := expr.(type) {
	case *ast.ParenExpr:
		t.translateCond(node.Inner, labelTrue, labelFalse)
	case *ast.UnaryExpr:
		if node.Op == "!" {
			t.translateCond(node.Operand, labelFalse, labelTrue)
			return
		}
		t.translateCondOtherwise(expr, labelTrue, labelFalse)
	case *ast.BinaryExpr:
		switch node.Op {
		case "==", "!=", "<", "<=", ">", ">=":
			t.translateCondRelop(node, labelTrue, labelFalse)
		case "&&":
			mid := t.newLabel()
			t.translateCond(node.Left, mid, labelFalse)
			t.code.Append(&Label{ID: mid})
			t.translateCond(node.Right, labelTrue, labelFalse)
		case "||":
			mid := t.newLabel()
			t.translateCond(node.Left, labelTrue, mid)
			t.code.Append(&Label{ID: mid})
			t.translateCond(node.Right, labelTrue, labelFalse)
		default:
			t.translateCondOtherwise(expr, labelTrue, labelFalse)
		}
	default:
		t.translateCondOtherwise(expr, labelTrue, labelFalse)
	}
}

func (t *Translator) translateCondRelop(node *ast.BinaryExpr, labelTrue, labelFalse int) {
	op, ok := RelOpFromString(node.Op)
	if !ok {
		panic(fmt.Sprintf("unexpected relational operator %q", node.Op))
	}

	l := t.translateExp(node.Left)
	r := t.translateExp(node.Right)

	if l.IsConst() && r.IsConst() {
		if op.Eval(l.Val, r.Val) {
			t.code.Append(&Goto{Target: labelTrue})
		} else {
			t.code.Append(&Goto{Target: labelFalse})
		}
		return
	}

	t.code.Append(&CondGoto{Op: op, Left: l, Right: r, Target: labelTrue})
	t.code.Append(&Goto{Target: labelFalse})
}

func (t *Translator) translateCondOtherwise(expr ast.Expr, labelTrue, labelFalse int) {
	v := t.translateExp(expr)

	if v.IsConst() {
		if v.Val != 0 {
			t.code.Append(&Goto{Target: labelTrue})
		} else {
			t.code.Append(&Goto{Target: labelFalse})
		}
		return
	}

	t.code.Append(&CondGoto{Op: RelNe, Left: v, Right: Const(0), Target: labelTrue})
	t.code.Append(&Goto{Target: labelFalse})
}

func (t *Translator) newLabel() int {
	t.labels++
	return t.labels
}

func (t *Translator) newTemp() Operand {
	return Variable(t.scope.NewTempID())
}

func (t *Translator) errorf(line int, msg string) {
	t.errs = append(t.errs, TranslateError{Line: line, Message: msg})
}
