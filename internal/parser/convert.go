package parser

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"cmm/grammar"
	"cmm/internal/ast"
)

// The grammar parses expressions as a flat operand/operator chain; this file
// rebuilds the tree with proper precedence and converts every production into
// its internal/ast counterpart.

var binaryPrecedence = map[string]int{
	"=":  1,
	"||": 2,
	"&&": 3,
	"==": 4, "!=": 4, "<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6,
}

var rightAssociative = map[string]bool{
	"=": true,
}

func pos(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Line: p.Line, Column: p.Column}
}

func specifier(s string) ast.Specifier {
	if s == "float" {
		return ast.SpecFloat
	}
	return ast.SpecInt
}

func convertProgram(tree *grammar.Program) *ast.Program {
	prog := &ast.Program{Pos: pos(tree.Pos)}
	for _, def := range tree.ExtDefs {
		prog.ExtDefs = append(prog.ExtDefs, convertExtDef(def))
	}
	return prog
}

func convertExtDef(def *grammar.ExtDef) ast.ExtDef {
	spec := specifier(def.Spec)
	if def.Fun == nil {
		return &ast.GlobalDecl{Pos: pos(def.Pos), Spec: spec, Decs: convertDecs(def.Decs)}
	}

	params := make([]*ast.Param, len(def.Fun.Params))
	for i, p := range def.Fun.Params {
		params[i] = &ast.Param{Pos: pos(p.Pos), Spec: specifier(p.Spec), Name: p.Name}
	}
	if def.Body == nil {
		return &ast.FuncDecl{Pos: pos(def.Pos), Spec: spec, Name: def.Fun.Name, Params: params}
	}
	return &ast.FuncDef{
		Pos:    pos(def.Pos),
		Spec:   spec,
		Name:   def.Fun.Name,
		Params: params,
		Body:   convertCompSt(def.Body),
	}
}

func convertDecs(decs []*grammar.VarDec) []*ast.VarDec {
	out := make([]*ast.VarDec, len(decs))
	for i, d := range decs {
		dec := &ast.VarDec{Pos: pos(d.Pos), Name: d.Name}
		if d.Init != nil {
			dec.Init = convertExpr(d.Init)
		}
		out[i] = dec
	}
	return out
}

func convertCompSt(comp *grammar.CompSt) *ast.CompSt {
	out := &ast.CompSt{Pos: pos(comp.Pos)}
	for _, def := range comp.Defs {
		out.Defs = append(out.Defs, &ast.Def{
			Pos:  pos(def.Pos),
			Spec: specifier(def.Spec),
			Decs: convertDecs(def.Decs),
		})
	}
	for _, stmt := range comp.Stmts {
		out.Stmts = append(out.Stmts, convertStmt(stmt))
	}
	return out
}

func convertStmt(stmt *grammar.Stmt) ast.Stmt {
	switch {
	case stmt.Comp != nil:
		return convertCompSt(stmt.Comp)
	case stmt.Return != nil:
		return &ast.ReturnStmt{Pos: pos(stmt.Return.Pos), Value: convertExpr(stmt.Return.Expr)}
	case stmt.If != nil:
		out := &ast.IfStmt{
			Pos:  pos(stmt.If.Pos),
			Cond: convertExpr(stmt.If.Cond),
			Then: convertStmt(stmt.If.Then),
		}
		if stmt.If.Else != nil {
			out.Else = convertStmt(stmt.If.Else)
		}
		return out
	case stmt.While != nil:
		return &ast.WhileStmt{
			Pos:  pos(stmt.While.Pos),
			Cond: convertExpr(stmt.While.Cond),
			Body: convertStmt(stmt.While.Body),
		}
	default:
		return &ast.ExprStmt{Pos: pos(stmt.Expr.Pos), Expr: convertExpr(stmt.Expr.Expr)}
	}
}

func convertExpr(e *grammar.Expr) ast.Expr {
	lhs := convertUnary(e.First)
	idx := 0
	return climb(lhs, e.Rest, 1, &idx)
}

// climb is precedence climbing over the flat operator chain. Assignment is
// the only right-associative operator.
func climb(lhs ast.Expr, ops []*grammar.OpExpr, minPrec int, idx *int) ast.Expr {
	for *idx < len(ops) && binaryPrecedence[ops[*idx].Op] >= minPrec {
		op := ops[*idx]
		prec := binaryPrecedence[op.Op]
		*idx++

		rhs := convertUnary(op.Right)
		for *idx < len(ops) {
			next := binaryPrecedence[ops[*idx].Op]
			if next > prec || (next == prec && rightAssociative[ops[*idx].Op]) {
				rhs = climb(rhs, ops, next, idx)
				continue
			}
			break
		}

		lhs = makeBinary(op.Op, lhs, rhs)
	}
	return lhs
}

func makeBinary(op string, lhs, rhs ast.Expr) ast.Expr {
	if op == "=" {
		return &ast.AssignExpr{Pos: lhs.NodePos(), Target: lhs, Value: rhs}
	}
	return &ast.BinaryExpr{Pos: lhs.NodePos(), Op: op, Left: lhs, Right: rhs}
}

func convertUnary(u *grammar.UnaryExpr) ast.Expr {
	if u.Operand != nil {
		return &ast.UnaryExpr{Pos: pos(u.Pos), Op: u.Op, Operand: convertUnary(u.Operand)}
	}
	return convertPrimary(u.Primary)
}

func convertPrimary(p *grammar.Primary) ast.Expr {
	switch {
	case p.Call != nil:
		call := &ast.CallExpr{Pos: pos(p.Call.Pos), Callee: p.Call.Name}
		for _, arg := range p.Call.Args {
			call.Args = append(call.Args, convertExpr(arg))
		}
		return call
	case p.Var != nil:
		return &ast.VarRef{Pos: pos(p.Pos), Name: *p.Var}
	case p.Float != nil:
		return &ast.FloatLit{Pos: pos(p.Pos), Text: *p.Float}
	case p.Int != nil:
		// ParseInt clamps on range error; out-of-range literals saturate
		v, _ := strconv.ParseInt(*p.Int, 10, 32)
		return &ast.IntLit{Pos: pos(p.Pos), Value: int32(v)}
	default:
		return &ast.ParenExpr{Pos: pos(p.Pos), Inner: convertExpr(p.Paren)}
	}
}
