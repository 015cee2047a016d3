package codegen

import "github.com/andrechen77/l1-compiler/internal/ast"

// emitLeaq implements spec §4.4's Leaq row: dst = base + index*scale,
// computed without a memory access via the x86-64 SIB addressing mode.
func (e *emitter) emitLeaq(i *ast.Leaq) {
	e.line("\tleaq (%s,%s,%d), %s", regOperand(i.Base), regOperand(i.Index), i.Scale, regOperand(i.Dst))
}
