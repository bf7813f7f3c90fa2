package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the root production: a sequence of external definitions.
// Example: "int inc(int x) { return x + 1; }\nint main() { return inc(1); }"
type Program struct {
	Pos lexer.Position

	ExtDefs []*ExtDef `@@*`
}

// ExtDef is one external definition: a specifier followed by either a
// function declarator (with a body or a ";") or a global declarator list.
type ExtDef struct {
	Pos lexer.Position

	Spec string    `@("int" | "float")`
	Fun  *FunDec   `( @@`
	Body *CompSt   `  ( @@ | ";" )`
	Decs []*VarDec `| @@ { "," @@ } ";" )`
}

// FunDec is a function declarator.
// Example: "inc(int x)", "main()"
type FunDec struct {
	Pos lexer.Position

	Name   string      `@Ident "("`
	Params []*ParamDec `[ @@ { "," @@ } ] ")"`
}

// ParamDec is one formal parameter.
// Example: "int x"
type ParamDec struct {
	Pos lexer.Position

	Spec string `@("int" | "float")`
	Name string `@Ident`
}

// VarDec is one declarator, optionally initialized.
// Example: "a", "a = read()"
type VarDec struct {
	Pos lexer.Position

	Name string `@Ident`
	Init *Expr  `[ "=" @@ ]`
}

// CompSt is a compound statement: local definitions then statements.
type CompSt struct {
	Pos lexer.Position

	Defs  []*Def  `"{" @@*`
	Stmts []*Stmt `@@* "}"`
}

// Def is a local definition line.
// Example: "int a, b;", "int i = 0;"
type Def struct {
	Pos lexer.Position

	Spec string    `@("int" | "float")`
	Decs []*VarDec `@@ { "," @@ } ";"`
}

type Stmt struct {
	Pos lexer.Position

	Comp   *CompSt     `  @@`
	Return *ReturnStmt `| @@`
	If     *IfStmt     `| @@`
	While  *WhileStmt  `| @@`
	Expr   *ExprStmt   `| @@`
}

type ReturnStmt struct {
	Pos lexer.Position

	Expr *Expr `"return" @@ ";"`
}

type IfStmt struct {
	Pos lexer.Position

	Cond *Expr `"if" "(" @@ ")"`
	Then *Stmt `@@`
	Else *Stmt `[ "else" @@ ]`
}

type WhileStmt struct {
	Pos lexer.Position

	Cond *Expr `"while" "(" @@ ")"`
	Body *Stmt `@@`
}

type ExprStmt struct {
	Pos lexer.Position

	Expr *Expr `@@ ";"`
}

// Expr is a flat operand/operator chain. Operator precedence and the
// right-associativity of "=" are resolved by the parser package.
type Expr struct {
	Pos lexer.Position

	First *UnaryExpr `@@`
	Rest  []*OpExpr  `@@*`
}

type OpExpr struct {
	Pos lexer.Position

	Op    string     `@("=" | "||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/")`
	Right *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos lexer.Position

	Op      string     `( @("-" | "!")`
	Operand *UnaryExpr `  @@`
	Primary *Primary   `| @@ )`
}

type Primary struct {
	Pos lexer.Position

	Call  *Call   `  @@`
	Var   *string `| @Ident`
	Float *string `| @Float`
	Int   *string `| @Int`
	Paren *Expr   `| "(" @@ ")"`
}

// Call is a function call.
// Example: "read()", "write(a)", "gcd(a, b)"
type Call struct {
	Pos lexer.Position

	Name string  `@Ident "("`
	Args []*Expr `[ @@ { "," @@ } ] ")"`
}
