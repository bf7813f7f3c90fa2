// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"cmm/internal/errors"
	"cmm/internal/ir"
	"cmm/internal/parser"
	"cmm/internal/semantic"
)

func main() {
	verbosity := flag.Int("v", 0, "log verbosity")
	output := flag.String("o", "", "write intermediate code to a file instead of stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: cmm [-v N] [-o out.ir] <file.cmm>")
		os.Exit(1)
	}

	commonlog.Configure(*verbosity, nil)

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}

	prog, err := parser.ParseSource(path, string(source))
	if err != nil {
		reportParseError(string(source), err)
		os.Exit(1)
	}

	analyzer := semantic.NewAnalyzer()
	if semanticErrors := analyzer.Analyze(prog); len(semanticErrors) > 0 {
		reporter := errors.NewErrorReporter(path, string(source))
		for _, e := range semanticErrors {
			fmt.Print(reporter.FormatError(e))
		}
		os.Exit(1)
	}

	code, translateErrors := ir.TranslateProgram(prog)
	for _, e := range translateErrors {
		color.Red("%s", e)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			color.Red("Failed to create output file: %s", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := code.Dump(out); err != nil {
		color.Red("Failed to write intermediate code: %s", err)
		os.Exit(1)
	}
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
