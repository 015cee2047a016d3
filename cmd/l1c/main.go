// l1c compiles L1 source (a register-level IR resembling a parenthesized
// listing of x86-64 instructions) to AT&T x86-64 assembly. It has no
// subcommands: L1 has exactly one pipeline (parse, lower, emit), so there's
// nothing to dispatch on beyond the flags below.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrechen77/l1-compiler/internal/codegen"
	"github.com/andrechen77/l1-compiler/internal/diag"
	"github.com/andrechen77/l1-compiler/internal/grammar"
	"github.com/andrechen77/l1-compiler/internal/lower"
	"github.com/xyproto/env/v2"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("l1c", flag.ContinueOnError)
	output := fs.String("o", env.Str("L1C_OUTPUT", "prog.S"), "output assembly path")
	verbose := fs.Bool("v", env.Bool("L1C_VERBOSE"), "print progress to stderr")
	dumpTree := fs.Bool("dump-tree", false, "print the parse tree instead of compiling")
	dumpAST := fs.Bool("dump-ast", false, "print the lowered program instead of compiling")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: l1c [-o path] [-v] [-dump-tree] [-dump-ast] <source.l1>")
		return 1
	}
	sourcePath := fs.Arg(0)

	if err := grammar.Validate(); err != nil {
		report(err)
		return 1
	}

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		report(diag.New(diag.Internal, diag.Location{}, "reading %s: %v", sourcePath, err))
		return 1
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "l1c: parsing %s\n", sourcePath)
	}
	tree, err := grammar.Parse(sourcePath, src)
	if err != nil {
		report(err)
		return 1
	}
	if *dumpTree {
		fmt.Println(grammar.ProgramSource(tree))
		return 0
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "l1c: lowering to AST\n")
	}
	prog, err := lower.Lower(tree)
	if err != nil {
		report(err)
		return 1
	}
	if *dumpAST {
		fmt.Print(prog.String())
		return 0
	}

	out, err := os.Create(*output)
	if err != nil {
		report(diag.New(diag.Internal, diag.Location{}, "creating %s: %v", *output, err))
		return 1
	}
	defer out.Close()

	if *verbose {
		fmt.Fprintf(os.Stderr, "l1c: emitting assembly to %s\n", *output)
	}
	if err := codegen.Emit(out, prog); err != nil {
		report(diag.New(diag.Internal, diag.Location{}, "writing %s: %v", *output, err))
		return 1
	}

	return 0
}

// report prints err, colorized when stderr is a terminal (spec §7: fatal
// diagnostics are the only output a failing compile produces).
func report(err error) {
	if diag.IsTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "\033[31m%v\033[0m\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
