package codegen

import "github.com/andrechen77/l1-compiler/internal/ast"

// emitReturn implements spec §4.4's Return row: the jump-call convention
// (§9) means the callee, not the caller, unwinds the whole synthesized
// frame — locals plus whatever stack-passed arguments the caller pushed.
// The return address itself isn't added back in: retq pops it.
func (e *emitter) emitReturn(fn *ast.Function) {
	fixup := 8 * (stackArgCount(fn.NumArgs) + fn.NumLocals)
	e.line("\taddq $%d, %%rsp", fixup)
	e.line("\tretq")
}
