package ast

import (
	"fmt"
	"strings"
)

// String renders nodes back to source-like text, mainly for debugging and
// test failure messages. The layout is canonical, not a copy of the input.

func (p *Program) String() string {
	var sb strings.Builder
	for i, def := range p.ExtDefs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(def.String())
	}
	return sb.String()
}

func (g *GlobalDecl) String() string {
	decs := make([]string, len(g.Decs))
	for i, d := range g.Decs {
		decs[i] = d.String()
	}
	return fmt.Sprintf("%s %s;", g.Spec, strings.Join(decs, ", "))
}

func (f *FuncDecl) String() string {
	return fmt.Sprintf("%s %s(%s);", f.Spec, f.Name, paramList(f.Params))
}

func (f *FuncDef) String() string {
	return fmt.Sprintf("%s %s(%s) %s", f.Spec, f.Name, paramList(f.Params), f.Body)
}

func paramList(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func (p *Param) String() string {
	return fmt.Sprintf("%s %s", p.Spec, p.Name)
}

func (v *VarDec) String() string {
	if v.Init != nil {
		return fmt.Sprintf("%s = %s", v.Name, v.Init)
	}
	return v.Name
}

func (c *CompSt) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, def := range c.Defs {
		sb.WriteString(indent(def.String()))
		sb.WriteString("\n")
	}
	for _, stmt := range c.Stmts {
		sb.WriteString(indent(stmt.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

func (d *Def) String() string {
	decs := make([]string, len(d.Decs))
	for i, dec := range d.Decs {
		decs[i] = dec.String()
	}
	return fmt.Sprintf("%s %s;", d.Spec, strings.Join(decs, ", "))
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", r.Value)
}

func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("if (%s) %s else %s", i.Cond, i.Then, i.Else)
	}
	return fmt.Sprintf("if (%s) %s", i.Cond, i.Then)
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond, w.Body)
}

func (i *IntLit) String() string {
	return fmt.Sprintf("%d", i.Value)
}

func (f *FloatLit) String() string {
	return f.Text
}

func (v *VarRef) String() string {
	return v.Name
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

func (a *AssignExpr) String() string {
	return fmt.Sprintf("%s = %s", a.Target, a.Value)
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Operand.String()
}

func (p *ParenExpr) String() string {
	return fmt.Sprintf("(%s)", p.Inner)
}
