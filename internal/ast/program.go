package ast

import "strings"

// Function is one `(@name argc localc (instructions))` block (spec §3
// Function). NumLocals and NumArgs both come straight from the source text;
// lowering does not invent or infer either.
type Function struct {
	Name         string
	NumArgs      int64
	NumLocals    int64
	Instructions []Instruction
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(f.Name)
	b.WriteString("\n")
	for _, instr := range f.Instructions {
		b.WriteString("  ")
		b.WriteString(instr.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Program is the whole compilation unit (spec §3 Program). EntryPointLabel
// names the entry function; it need not be the first one listed (spec
// §4.1 program: the entry name is a standalone field preceding the
// function list).
type Program struct {
	EntryPointLabel string
	Functions       []*Function
}

// EntryPoint looks up the function named by EntryPointLabel. Lowering
// rejects a program whose entry name doesn't match any defined function
// (spec §4.3), so by the time codegen runs this is guaranteed to resolve;
// it still returns nil rather than panic so callers that run ahead of that
// check (tests, dump-ast) can probe it directly.
func (p *Program) EntryPoint() *Function {
	for _, fn := range p.Functions {
		if fn.Name == p.EntryPointLabel {
			return fn
		}
	}
	return nil
}

func (p *Program) String() string {
	var b strings.Builder
	for _, fn := range p.Functions {
		b.WriteString(fn.String())
	}
	return b.String()
}
