package ast

type Expr interface {
	Node
	isExpr()
}

func (*IntLit) isExpr() {}

func (*FloatLit) isExpr() {}

func (*VarRef) isExpr() {}

func (*CallExpr) isExpr() {}

func (*AssignExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*ParenExpr) isExpr() {}
