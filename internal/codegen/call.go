package codegen

import "github.com/andrechen77/l1-compiler/internal/ast"

// emitCallFunction implements spec §4.4's two CallFunction rows. A runtime
// call emits a plain `call` to the dispatched C symbol (the runtime ABI
// already matches System-V, so no stack fixup is needed). A user call uses
// the jump-call convention (spec §9): adjust the stack for stack-passed
// arguments plus a synthesized return slot, then jmp — relying on the
// callee's own `return` to clean up the whole frame.
func (e *emitter) emitCallFunction(i *ast.CallFunction) {
	if i.IsRuntime {
		e.line("\tcall %s", runtimeCallSymbol(i.Name, i.NumArgs))
		return
	}
	e.userCallStackFixup(i.NumArgs)
	e.line("\tjmp %s", Mangle(i.Name))
}

// emitCallRegister is CallFunction(user)'s indirect-target twin: same
// stack fixup, but the jump target is whatever address the register holds.
func (e *emitter) emitCallRegister(i *ast.CallRegister) {
	e.userCallStackFixup(i.NumArgs)
	e.line("\tjmp *%s", regOperand(i.Reg))
}

func runtimeCallSymbol(name string, numArgs int64) string {
	if name == "tensor-error" {
		return tensorErrorSymbol(numArgs)
	}
	return runtimeSymbol[name]
}

func (e *emitter) userCallStackFixup(numArgs int64) {
	e.line("\tsubq $%d, %%rsp", 8*(stackArgCount(numArgs)+1))
}
