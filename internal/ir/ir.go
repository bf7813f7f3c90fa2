package ir

// This file provides the main entry point for lowering a program to
// three-address intermediate code.

import (
	"cmm/internal/ast"
	"cmm/internal/semantic"
)

// TranslateProgram lowers an analyzed program with a fresh symbol table and
// returns the instruction list plus any assumption violations.
func TranslateProgram(prog *ast.Program) (*Code, []TranslateError) {
	symbols := semantic.NewSymbolTable(nil)
	semantic.AddBuiltins(symbols)

	translator := NewTranslator(symbols)
	code := translator.Translate(prog)
	return code, translator.Errors()
}
