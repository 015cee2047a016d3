package codegen

import (
	"fmt"

	"github.com/andrechen77/l1-compiler/internal/ast"
)

// operand renders any ast.Value in the operand position spec §4.4 assigns
// it: register → `%name`, memory → `offset(%base)`, number → `$value`,
// label/function reference → `$_name` (address-of, per spec §4.4 "Label
// address in source position").
func operand(v ast.Value) string {
	switch val := v.(type) {
	case ast.RegisterValue:
		return regOperand(val.Reg)
	case ast.MemoryLocation:
		return fmt.Sprintf("%d(%%%s)", val.Offset, val.Base)
	case ast.Number:
		return fmt.Sprintf("$%d", val.Value)
	case ast.LabelLocation:
		return "$" + Mangle(val.Name)
	default:
		panic(fmt.Sprintf("codegen: unhandled value type %T", v))
	}
}

// regOperand renders a bare register as an operand, always by its full
// 64-bit name. The %cl shift-count form is chosen by shiftAwareOperand in
// assign.go, not here.
func regOperand(r ast.Register) string {
	return "%" + r.String()
}
