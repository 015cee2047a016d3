package codegen

import "github.com/andrechen77/l1-compiler/internal/ast"

func (e *emitter) emitLabel(i *ast.Label) {
	e.line("%s:", Mangle(i.Name))
}
