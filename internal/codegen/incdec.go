package codegen

import "github.com/andrechen77/l1-compiler/internal/ast"

func (e *emitter) emitIncrement(i *ast.Increment) {
	e.line("\tincq %s", regOperand(i.Dst))
}

func (e *emitter) emitDecrement(i *ast.Decrement) {
	e.line("\tdecq %s", regOperand(i.Dst))
}
