package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CmmLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, nil},

		// Float literals must win over Int
		{"Float", `[0-9]+\.[0-9]+`, nil},

		// Integer literals
		{"Int", `[0-9]+`, nil},

		// Keywords first, so "return" never lexes as an identifier
		{"Keyword", `\b(int|float|if|else|while|return)\b`, nil},

		// Identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators (longest match first)
		{"Operator", `(\|\||&&|==|!=|<=|>=|=|[-+*/<>!])`, nil},

		// Punctuation
		{"Punctuation", `[(){},;]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
