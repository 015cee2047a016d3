package codegen

import (
	"fmt"
	"io"

	"github.com/andrechen77/l1-compiler/internal/ast"
)

// Emit walks prog and writes AT&T x86-64 assembly to w (spec §4.4, §4.5).
// Opening and closing the destination file is the caller's job (spec §4.5:
// "the file is closed after the last function" — by the driver, not here);
// Emit itself only ever writes, so it's testable against a bytes.Buffer
// without touching the filesystem.
func Emit(w io.Writer, prog *ast.Program) error {
	e := &emitter{w: w}
	e.prologue(prog)
	for _, fn := range prog.Functions {
		e.function(fn)
	}
	return e.err
}

// emitter accumulates the first write error encountered; every call after
// that is a no-op. This is the same sticky-error shape as bufio.Writer's
// Flush, and it means none of the per-instruction emit methods below need
// their own error return or error check.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) line(format string, args ...any) {
	e.printf(format+"\n", args...)
}

// prologue emits the single global `go` entry point (spec §4.4): push the
// six callee-saved registers, call the mangled entry function, pop them in
// reverse, return. It calls into prog.EntryPoint() (rather than re-mangling
// prog.EntryPointLabel directly) so an unresolved entry point — which
// lowering is responsible for rejecting before codegen ever runs — can't
// silently produce a `call` to a symbol no function defines.
func (e *emitter) prologue(prog *ast.Program) {
	entry := prog.EntryPoint()
	if entry == nil {
		panic(fmt.Sprintf("codegen: entry point %q does not name any defined function", prog.EntryPointLabel))
	}

	e.line(".globl go")
	e.line("go:")
	for _, r := range calleeSaved {
		e.line("\tpushq %s", regOperand(r))
	}
	e.line("\tcall %s", Mangle(entry.Name))
	for i := len(calleeSaved) - 1; i >= 0; i-- {
		e.line("\tpopq %s", regOperand(calleeSaved[i]))
	}
	e.line("\tretq")
}

// function emits `<mangled_name>:`, the locals-allocating prologue, then
// every instruction in order (spec §4.4 "Per function").
func (e *emitter) function(fn *ast.Function) {
	e.line("%s:", Mangle(fn.Name))
	e.line("\tsubq $%d, %%rsp", 8*fn.NumLocals)
	for _, instr := range fn.Instructions {
		e.instruction(fn, instr)
	}
}

func (e *emitter) instruction(fn *ast.Function, instr ast.Instruction) {
	switch i := instr.(type) {
	case *ast.Label:
		e.emitLabel(i)
	case *ast.Return:
		e.emitReturn(fn)
	case *ast.Assignment:
		e.emitAssignment(i)
	case *ast.CompareAssignment:
		e.emitCompareAssignment(i)
	case *ast.CompareJump:
		e.emitCompareJump(i)
	case *ast.Goto:
		e.emitGoto(i)
	case *ast.CallFunction:
		e.emitCallFunction(i)
	case *ast.CallRegister:
		e.emitCallRegister(i)
	case *ast.Increment:
		e.emitIncrement(i)
	case *ast.Decrement:
		e.emitDecrement(i)
	case *ast.Leaq:
		e.emitLeaq(i)
	default:
		panic(fmt.Sprintf("codegen: unhandled instruction type %T", instr))
	}
}
