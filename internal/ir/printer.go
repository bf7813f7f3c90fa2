package ir

import (
	"fmt"
	"strings"
)

// Textual forms match the downstream assembler: constants render as "#N",
// variables as "vN", labels as "labelN".

func (o Operand) String() string {
	if o.Kind == OperandConst {
		return fmt.Sprintf("#%d", o.Val)
	}
	return fmt.Sprintf("v%d", o.ID)
}

func (l *Label) String() string {
	return fmt.Sprintf("LABEL label%d :", l.ID)
}

func (f *FuncDef) String() string {
	return fmt.Sprintf("FUNCTION %s :", f.Name)
}

func (p *Param) String() string {
	return fmt.Sprintf("PARAM v%d", p.VarID)
}

func (a *Assign) String() string {
	return fmt.Sprintf("%s := %s", a.Dst, a.Src)
}

func (a *Arith) String() string {
	return fmt.Sprintf("%s := %s %s %s", a.Dst, a.Left, a.Op, a.Right)
}

func (g *Goto) String() string {
	return fmt.Sprintf("GOTO label%d", g.Target)
}

func (c *CondGoto) String() string {
	return fmt.Sprintf("IF %s %s %s GOTO label%d", c.Left, c.Op, c.Right, c.Target)
}

func (r *Return) String() string {
	return fmt.Sprintf("RETURN %s", r.Value)
}

func (a *Arg) String() string {
	return fmt.Sprintf("ARG %s", a.Value)
}

func (c *Call) String() string {
	return fmt.Sprintf("v%d := CALL %s", c.DstID, c.Callee)
}

func (r *Read) String() string {
	return fmt.Sprintf("READ v%d", r.DstID)
}

func (w *Write) String() string {
	return fmt.Sprintf("WRITE %s", w.Value)
}

func (c *Code) String() string {
	var sb strings.Builder
	for _, ins := range c.instrs {
		sb.WriteString(ins.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
