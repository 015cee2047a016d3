package codegen

import "github.com/andrechen77/l1-compiler/internal/ast"

func (e *emitter) emitGoto(i *ast.Goto) {
	e.line("\tjmp %s", Mangle(i.Label))
}
