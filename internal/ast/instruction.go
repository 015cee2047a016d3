package ast

import "fmt"

// AssignOp identifies which arithmetic family an Assignment instruction
// performs (spec §3 AssignOperation): plain move, one of the four
// update-in-place operators, or one of the two shifts. Assignment covers
// every `dst <- ...` and `dst op= ...` surface form in the grammar,
// including the four memory variants (spec §4.1 memory_read, memory_write,
// plus_write_memory, plus_read_memory and their minus_ counterparts) —
// those differ from the register forms only in which side (Dst or Src) is
// a MemoryLocation instead of a register.
type AssignOp int

const (
	AssignPure AssignOp = iota
	AssignAdd
	AssignSubtract
	AssignMultiply
	AssignBitwiseAnd
	AssignLshift
	AssignRshift
)

func (op AssignOp) String() string {
	switch op {
	case AssignPure:
		return "<-"
	case AssignAdd:
		return "+="
	case AssignSubtract:
		return "-="
	case AssignMultiply:
		return "*="
	case AssignBitwiseAnd:
		return "&="
	case AssignLshift:
		return "<<="
	case AssignRshift:
		return ">>="
	default:
		panic(fmt.Sprintf("ast: unhandled AssignOp %d", int(op)))
	}
}

// CompareOp identifies the comparison used by CompareAssignment and
// CompareJump (spec §3 ComparisonOperator).
type CompareOp int

const (
	CompareLt CompareOp = iota
	CompareLe
	CompareEq
)

func (op CompareOp) String() string {
	switch op {
	case CompareLt:
		return "<"
	case CompareLe:
		return "<="
	case CompareEq:
		return "="
	default:
		panic(fmt.Sprintf("ast: unhandled CompareOp %d", int(op)))
	}
}

// Instruction is one line of a function body (spec §3 Instruction
// hierarchy). As with Value, instructionNode is unexported so every
// concrete instruction kind lives in this package and lowering's type
// switches can be exhaustive against a closed set.
type Instruction interface {
	String() string
	instructionNode()
}

// Label marks a jump target within a function body. It performs no
// operation on its own.
type Label struct {
	Name string
}

func (i *Label) String() string { return ":" + i.Name }
func (*Label) instructionNode() {}

// Return ends the current function, honoring the jump-call tail convention
// (spec §9 REDESIGN FLAGS) rather than a plain `ret`.
type Return struct{}

func (i *Return) String() string { return "return" }
func (*Return) instructionNode() {}

// Assignment is `dst op src` (spec §3 InstructionAssignment), the single
// unified instruction for every move/update-in-place/shift/memory-access
// form the grammar distinguishes syntactically. Dst and Src are never both
// MemoryLocation — the grammar has no memory-to-memory form — but either
// one alone may be, which is why both are Value rather than Register:
//   - plain/arith/shift register forms: Dst is RegisterValue, Src is
//     whatever operand class that surface form allows.
//   - memory_read / plus_read_memory / minus_read_memory: Dst is
//     RegisterValue, Src is a MemoryLocation (Op AssignPure/Add/Subtract).
//   - memory_write / plus_write_memory / minus_write_memory: Dst is a
//     MemoryLocation, Src is RegisterValue or Number (Op AssignPure/Add/
//     Subtract).
type Assignment struct {
	Dst Value
	Op  AssignOp
	Src Value
}

func (i *Assignment) String() string { return fmt.Sprintf("%s %s %s", i.Dst, i.Op, i.Src) }
func (*Assignment) instructionNode() {}

// CompareAssignment is `dst <- lhs cmp rhs` (spec §3
// InstructionCompareAssignment).
type CompareAssignment struct {
	Dst Register
	Lhs Value
	Op  CompareOp
	Rhs Value
}

func (i *CompareAssignment) String() string {
	return fmt.Sprintf("%s <- %s %s %s", i.Dst, i.Lhs, i.Op, i.Rhs)
}
func (*CompareAssignment) instructionNode() {}

// CompareJump is `cjump lhs cmp rhs :label`.
type CompareJump struct {
	Lhs   Value
	Op    CompareOp
	Rhs   Value
	Label string
}

func (i *CompareJump) String() string {
	return fmt.Sprintf("cjump %s %s %s :%s", i.Lhs, i.Op, i.Rhs, i.Label)
}
func (*CompareJump) instructionNode() {}

// Goto is an unconditional jump to a label within the same function.
type Goto struct {
	Label string
}

func (i *Goto) String() string { return "goto :" + i.Label }
func (*Goto) instructionNode() {}

// CallFunction calls a named function, honoring the jump-call tail
// convention (spec §9): IsRuntime distinguishes the five fixed runtime
// entry points (print, input, allocate, tuple-error, tensor-error) from a
// user-defined L1 function, since the two are assembled differently (spec
// §4.4) even though both are named calls. NumArgs is validated at lowering
// against the fixed arity for Name when IsRuntime is true, except for
// "tensor-error" where 1, 3 and 4 are all accepted (spec §7 ArityError).
type CallFunction struct {
	Name      string
	IsRuntime bool
	NumArgs   int64
}

func (i *CallFunction) String() string { return fmt.Sprintf("call %s %d", i.Name, i.NumArgs) }
func (*CallFunction) instructionNode() {}

// CallRegister calls whatever function address is held in a register
// (spec §4.1 call_dest's register alternative), the indirect-call form of
// CallFunction.
type CallRegister struct {
	Reg     Register
	NumArgs int64
}

func (i *CallRegister) String() string { return fmt.Sprintf("call %s %d", i.Reg, i.NumArgs) }
func (*CallRegister) instructionNode() {}

// Increment is `dst++`.
type Increment struct {
	Dst Register
}

func (i *Increment) String() string { return i.Dst.String() + "++" }
func (*Increment) instructionNode() {}

// Decrement is `dst--`.
type Decrement struct {
	Dst Register
}

func (i *Decrement) String() string { return i.Dst.String() + "--" }
func (*Decrement) instructionNode() {}

// Leaq is `dst @ base index scale`: dst = base + index*scale (spec §3
// InstructionLeaq), scale restricted to {1,2,4,8}.
type Leaq struct {
	Dst   Register
	Base  Register
	Index Register
	Scale int64
}

func (i *Leaq) String() string {
	return fmt.Sprintf("%s @ %s %s %d", i.Dst, i.Base, i.Index, i.Scale)
}
func (*Leaq) instructionNode() {}
