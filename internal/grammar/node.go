package grammar

import "github.com/andrechen77/l1-compiler/internal/diag"

// Node is a parse-tree node (spec §4.2): every accepted production creates a
// node storing its rule tag, its source location, and its children. Leaf
// productions (numbers, registers) retain their matched text verbatim in
// Text; label and function-name nodes retain the name without its `:` or
// `@` sigil. Structural productions retain their children, plus, where the
// production carries an operator or a runtime-call name, that text.
// Lookahead-only sub-matches are never materialized here.
type Node struct {
	Rule     string
	Text     string
	Loc      diag.Location
	Children []*Node
}

// Rule tags. Named after the original grammar's production names so the
// lowering pass (and anyone cross-referencing the grammar) can trace a node
// back to the production that built it.
const (
	RuleProgram           = "program"
	RuleFunction          = "function"
	RuleFunctionName      = "function_name"
	RuleLabel             = "label"
	RuleName              = "name"
	RuleNumber            = "number"
	RuleRegister          = "register"
	RuleMemory            = "memory"
	RuleReturn            = "return"
	RuleAssignment        = "assignment"
	RuleMemoryRead        = "memory_read"
	RuleMemoryWrite       = "memory_write"
	RuleArithOp           = "arithmetic_operation"
	RuleShiftOpRegister   = "shift_operation_register"
	RuleShiftOpImmediate  = "shift_operation_immediate"
	RulePlusWriteMemory   = "plus_write_memory"
	RuleMinusWriteMemory  = "minus_write_memory"
	RulePlusReadMemory    = "plus_read_memory"
	RuleMinusReadMemory   = "minus_read_memory"
	RuleCompareAssignment = "compare_assignment"
	RuleCompareJump       = "cjump"
	RuleGoto              = "goto"
	RuleCall              = "call"
	RuleCallRuntime       = "call_runtime"
	RuleIncrement         = "increment"
	RuleDecrement         = "decrement"
	RuleLeaq              = "leaq"
)

// Child returns the i-th child, or nil if out of range. Exported so
// internal/lower can walk the tree without reaching into Children by hand.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
