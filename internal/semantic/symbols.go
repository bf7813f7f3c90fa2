package semantic

import (
	"fmt"

	"cmm/internal/ast"
)

type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolParameter
	SymbolVariable
)

type Symbol struct {
	Name       string
	Kind       SymbolKind
	ID         int // variable id from the shared pool; 0 for functions
	ParamCount int // functions only
	Defined    bool
	Builtin    bool
	Pos        ast.Position
}

// IDPool hands out variable ids. Named variables and translator temporaries
// draw from the same pool, so the two id spaces never collide and every id is
// unique across a compilation unit.
type IDPool struct {
	next int
}

func (p *IDPool) Next() int {
	p.next++
	return p.next
}

type SymbolTable struct {
	symbols map[string]*Symbol
	parent  *SymbolTable
	pool    *IDPool
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	st := &SymbolTable{
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}
	if parent != nil {
		st.pool = parent.pool
	} else {
		st.pool = &IDPool{}
	}
	return st
}

// PushScope opens a nested scope sharing the root's id pool.
func (st *SymbolTable) PushScope() *SymbolTable {
	return NewSymbolTable(st)
}

// PopScope drops the innermost scope.
func (st *SymbolTable) PopScope() *SymbolTable {
	return st.parent
}

// DefineVariable inserts a named variable or parameter and allocates its id.
func (st *SymbolTable) DefineVariable(name string, kind SymbolKind, pos ast.Position) *Symbol {
	symbol := &Symbol{
		Name: name,
		Kind: kind,
		ID:   st.pool.Next(),
		Pos:  pos,
	}
	st.symbols[name] = symbol
	return symbol
}

// DefineParams inserts a parameter field list in source order.
func (st *SymbolTable) DefineParams(params []*ast.Param) []*Symbol {
	symbols := make([]*Symbol, len(params))
	for i, p := range params {
		symbols[i] = st.DefineVariable(p.Name, SymbolParameter, p.Pos)
	}
	return symbols
}

// AddFunc registers a function, with isDef marking a definition as opposed to
// a forward declaration. Conflicting registrations are errors; re-declaring a
// known function with the same arity is not.
func (st *SymbolTable) AddFunc(name string, paramCount int, isDef bool, pos ast.Position) (*Symbol, error) {
	if existing := st.Lookup(name); existing != nil {
		if existing.Kind != SymbolFunction {
			return nil, fmt.Errorf("%q is already declared as a variable", name)
		}
		if existing.ParamCount != paramCount {
			return nil, fmt.Errorf("conflicting declarations of function %q", name)
		}
		if existing.Defined && isDef {
			return nil, fmt.Errorf("duplicate definition of function %q", name)
		}
		if isDef {
			existing.Defined = true
		}
		return existing, nil
	}

	symbol := &Symbol{
		Name:       name,
		Kind:       SymbolFunction,
		ParamCount: paramCount,
		Defined:    isDef,
		Pos:        pos,
	}
	st.symbols[name] = symbol
	return symbol, nil
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil
}

func (st *SymbolTable) LookupLocal(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	return nil
}

// NewTempID allocates a fresh temporary-variable id from the shared pool.
func (st *SymbolTable) NewTempID() int {
	return st.pool.Next()
}

// AddBuiltins registers the read/write I/O primitives.
func AddBuiltins(st *SymbolTable) {
	st.symbols["read"] = &Symbol{Name: "read", Kind: SymbolFunction, ParamCount: 0, Defined: true, Builtin: true}
	st.symbols["write"] = &Symbol{Name: "write", Kind: SymbolFunction, ParamCount: 1, Defined: true, Builtin: true}
}
