package ast

type Node interface {
	NodePos() Position
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (g *GlobalDecl) NodePos() Position { return g.Pos }
func (f *FuncDecl) NodePos() Position   { return f.Pos }
func (f *FuncDef) NodePos() Position    { return f.Pos }
func (p *Param) NodePos() Position      { return p.Pos }
func (v *VarDec) NodePos() Position     { return v.Pos }
func (c *CompSt) NodePos() Position     { return c.Pos }
func (d *Def) NodePos() Position        { return d.Pos }

func (e *ExprStmt) NodePos() Position   { return e.Pos }
func (r *ReturnStmt) NodePos() Position { return r.Pos }
func (i *IfStmt) NodePos() Position     { return i.Pos }
func (w *WhileStmt) NodePos() Position  { return w.Pos }

func (i *IntLit) NodePos() Position     { return i.Pos }
func (f *FloatLit) NodePos() Position   { return f.Pos }
func (v *VarRef) NodePos() Position     { return v.Pos }
func (c *CallExpr) NodePos() Position   { return c.Pos }
func (a *AssignExpr) NodePos() Position { return a.Pos }
func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (u *UnaryExpr) NodePos() Position  { return u.Pos }
func (p *ParenExpr) NodePos() Position  { return p.Pos }
