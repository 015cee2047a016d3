package codegen

import "fmt"

// integerArgRegs lists the six System-V integer argument registers, in
// order. L1 source code places call arguments into these registers itself
// (they're exactly the grammar's "idk" operand class — see
// ast.Register.IsArgumentRegister), so codegen never emits argument-register
// moves; this table's only job here is sizing the stack-argument adjustment
// below.
var integerArgRegs = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// stackArgCount is the number of call arguments that spill to the stack
// once the six integer argument registers are exhausted (spec §4.4
// CallFunction/CallRegister row and §8 boundary behaviors).
func stackArgCount(numArgs int64) int64 {
	n := numArgs - int64(len(integerArgRegs))
	if n < 0 {
		return 0
	}
	return n
}

// runtimeSymbol maps the five fixed L1 runtime call names to the C symbols
// the runtime library actually exports (spec §4.4, §6). Four of the five
// keep their L1 spelling; tuple-error's dash isn't a legal C identifier
// character, so it becomes tuple_error. tensor-error is arity-routed
// instead (see tensorErrorSymbol) since it has no single fixed symbol.
var runtimeSymbol = map[string]string{
	"print":       "print",
	"input":       "input",
	"allocate":    "allocate",
	"tuple-error": "tuple_error",
}

// tensorErrorSymbol dispatches `call tensor-error N` to one of three C
// symbols by argument count (spec §4.4, scenario 5): 1 argument means the
// tuple allocation itself failed (no dimensions to report), 3 means a
// single bad dimension, 4 a pair of mismatched dimensions.
func tensorErrorSymbol(numArgs int64) string {
	switch numArgs {
	case 1:
		return "array_tensor_error_null"
	case 3:
		return "array_tensor"
	case 4:
		return "tensor_error"
	default:
		panic(fmt.Sprintf("codegen: tensor-error called with unsupported arity %d (lowering should have rejected this)", numArgs))
	}
}
