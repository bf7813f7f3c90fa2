package ast

type Stmt interface {
	Node
	isStmt()
}

func (*ExprStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*WhileStmt) isStmt() {}

func (*CompSt) isStmt() {}

// ExtDef is a top-level item: a global declarator list, a function
// declaration, or a function definition.
type ExtDef interface {
	Node
	isExtDef()
}

func (*GlobalDecl) isExtDef() {}

func (*FuncDecl) isExtDef() {}

func (*FuncDef) isExtDef() {}
