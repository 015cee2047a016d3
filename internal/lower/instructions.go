package lower

import (
	"github.com/andrechen77/l1-compiler/internal/ast"
	"github.com/andrechen77/l1-compiler/internal/diag"
	"github.com/andrechen77/l1-compiler/internal/grammar"
)

// fixedArity gives the required argument count for the four runtime
// functions whose arity the grammar itself already pins to a single digit
// (spec §4.5); tensor-error is handled separately since the grammar accepts
// any number there and lowering does the real check.
var fixedArity = map[string]int64{
	"print": 1, "input": 0, "allocate": 2, "tuple-error": 3,
}

func lowerInstruction(n *grammar.Node, seen map[string]grammar.Node) (ast.Instruction, error) {
	switch n.Rule {
	case grammar.RuleReturn:
		return &ast.Return{}, nil

	case grammar.RuleLabel:
		if err := checkMangleInjective(n.Text, n, seen); err != nil {
			return nil, err
		}
		return &ast.Label{Name: n.Text}, nil

	case grammar.RuleGoto:
		return &ast.Goto{Label: n.Child(0).Text}, nil

	case grammar.RuleAssignment:
		dst := lowerRegister(n.Child(0))
		src, err := lowerValue(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Dst: ast.RegisterValue{Reg: dst}, Op: ast.AssignPure, Src: src}, nil

	case grammar.RuleCompareAssignment:
		dst := lowerRegister(n.Child(0))
		lhs, err := lowerValue(n.Child(1))
		if err != nil {
			return nil, err
		}
		rhs, err := lowerValue(n.Child(2))
		if err != nil {
			return nil, err
		}
		return &ast.CompareAssignment{Dst: dst, Lhs: lhs, Op: compareOps[n.Text], Rhs: rhs}, nil

	case grammar.RuleCompareJump:
		lhs, err := lowerValue(n.Child(0))
		if err != nil {
			return nil, err
		}
		rhs, err := lowerValue(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.CompareJump{Lhs: lhs, Op: compareOps[n.Text], Rhs: rhs, Label: n.Child(2).Text}, nil

	case grammar.RuleMemoryRead:
		dst := lowerRegister(n.Child(0))
		mem, err := lowerMemory(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Dst: ast.RegisterValue{Reg: dst}, Op: ast.AssignPure, Src: mem}, nil

	case grammar.RuleMemoryWrite:
		mem, err := lowerMemory(n.Child(0))
		if err != nil {
			return nil, err
		}
		src := lowerRegister(n.Child(1))
		return &ast.Assignment{Dst: mem, Op: ast.AssignPure, Src: ast.RegisterValue{Reg: src}}, nil

	case grammar.RuleArithOp:
		dst := lowerRegister(n.Child(0))
		val, err := lowerValue(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Dst: ast.RegisterValue{Reg: dst}, Op: assignOps[n.Text], Src: val}, nil

	case grammar.RuleShiftOpRegister:
		dst := lowerRegister(n.Child(0))
		src := lowerRegister(n.Child(1)) // grammar guarantees this is rcx
		return &ast.Assignment{Dst: ast.RegisterValue{Reg: dst}, Op: assignOps[n.Text], Src: ast.RegisterValue{Reg: src}}, nil

	case grammar.RuleShiftOpImmediate:
		dst := lowerRegister(n.Child(0))
		count, err := parseNumber(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Dst: ast.RegisterValue{Reg: dst}, Op: assignOps[n.Text], Src: ast.Number{Value: count}}, nil

	case grammar.RulePlusWriteMemory, grammar.RuleMinusWriteMemory:
		mem, err := lowerMemory(n.Child(0))
		if err != nil {
			return nil, err
		}
		val, err := lowerValue(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Dst: mem, Op: assignOps[n.Text], Src: val}, nil

	case grammar.RulePlusReadMemory, grammar.RuleMinusReadMemory:
		dst := lowerRegister(n.Child(0))
		mem, err := lowerMemory(n.Child(1))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Dst: ast.RegisterValue{Reg: dst}, Op: assignOps[n.Text], Src: mem}, nil

	case grammar.RuleCall:
		numArgs, err := parseNumber(n.Child(1))
		if err != nil {
			return nil, err
		}
		destNode := n.Child(0)
		if destNode.Rule == grammar.RuleRegister {
			return &ast.CallRegister{Reg: lowerRegister(destNode), NumArgs: numArgs}, nil
		}
		return &ast.CallFunction{Name: destNode.Text, IsRuntime: false, NumArgs: numArgs}, nil

	case grammar.RuleCallRuntime:
		return lowerCallRuntime(n)

	case grammar.RuleIncrement:
		return &ast.Increment{Dst: lowerRegister(n.Child(0))}, nil

	case grammar.RuleDecrement:
		return &ast.Decrement{Dst: lowerRegister(n.Child(0))}, nil

	case grammar.RuleLeaq:
		dst := lowerRegister(n.Child(0))
		base := lowerRegister(n.Child(1))
		index := lowerRegister(n.Child(2))
		scale, err := parseNumber(n.Child(3))
		if err != nil {
			return nil, err
		}
		return &ast.Leaq{Dst: dst, Base: base, Index: index, Scale: scale}, nil

	default:
		panic("lower: unhandled instruction rule " + n.Rule)
	}
}

func lowerCallRuntime(n *grammar.Node) (ast.Instruction, error) {
	numArgs, err := parseNumber(n.Child(0))
	if err != nil {
		return nil, err
	}

	if n.Text == "tensor-error" {
		if numArgs != 1 && numArgs != 3 && numArgs != 4 {
			return nil, diag.New(diag.Arity, n.Loc,
				"call tensor-error accepts 1, 3 or 4 arguments, got %d", numArgs)
		}
		return &ast.CallFunction{Name: n.Text, IsRuntime: true, NumArgs: numArgs}, nil
	}

	// The other four runtime names already have their single valid arity
	// pinned by the grammar itself, so a mismatch here would mean the parse
	// tree didn't come from this package's parser.
	if want, ok := fixedArity[n.Text]; ok && numArgs != want {
		panic("lower: call_runtime node for " + n.Text + " has arity inconsistent with the grammar")
	}
	return &ast.CallFunction{Name: n.Text, IsRuntime: true, NumArgs: numArgs}, nil
}
