package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"cmm/grammar"
	"cmm/internal/ast"
)

var parser = buildParser()

func buildParser() *participle.Parser[grammar.Program] {
	p, err := participle.Build[grammar.Program](
		participle.Lexer(grammar.CmmLexer),
		participle.Elide("Whitespace", "Comment"),
		// Lookahead disambiguates "int f(" from "int a," after a specifier
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

func ParseSource(sourceName string, source string) (*ast.Program, error) {
	tree, err := parser.ParseString(sourceName, source)
	if err != nil {
		return nil, err
	}
	return convertProgram(tree), nil
}
