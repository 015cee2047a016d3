package codegen

import (
	"fmt"

	"github.com/andrechen77/l1-compiler/internal/ast"
)

// assignMnemonic is spec §4.4's Assignment mnemonic table. Right shift is
// sarq, corrected from the source's salq-for-both bug (spec §9 REDESIGN
// FLAG 3).
var assignMnemonic = map[ast.AssignOp]string{
	ast.AssignPure:       "movq",
	ast.AssignAdd:        "addq",
	ast.AssignSubtract:   "subq",
	ast.AssignMultiply:   "imulq",
	ast.AssignBitwiseAnd: "andq",
	ast.AssignLshift:     "salq",
	ast.AssignRshift:     "sarq",
}

// emitAssignment covers every `dst op src` surface form in spec §4.1's
// table: plain move, the four update-in-place arithmetic operators, the two
// shifts, and all four memory read/write variants. Lowering has already
// picked the right Value kinds for Dst/Src (register vs. MemoryLocation vs.
// Number), so one mnemonic+operand-pair shape handles all of them here.
func (e *emitter) emitAssignment(i *ast.Assignment) {
	mnemonic, ok := assignMnemonic[i.Op]
	if !ok {
		panic(fmt.Sprintf("codegen: unhandled assign operator %v", i.Op))
	}
	e.line("\t%s %s, %s", mnemonic, shiftAwareOperand(i.Op, i.Src), operand(i.Dst))
}

// shiftAwareOperand renders src normally, except a shift whose source is
// the register rcx must render as %cl — the shift-count sub-register, not
// the full 64-bit name (spec §4.4 Assignment row).
func shiftAwareOperand(op ast.AssignOp, src ast.Value) string {
	if op == ast.AssignLshift || op == ast.AssignRshift {
		if reg, ok := src.(ast.RegisterValue); ok && reg.Reg == ast.RCX {
			return "%cl"
		}
	}
	return operand(src)
}
