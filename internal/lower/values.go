package lower

import (
	"strconv"

	"github.com/andrechen77/l1-compiler/internal/ast"
	"github.com/andrechen77/l1-compiler/internal/diag"
	"github.com/andrechen77/l1-compiler/internal/grammar"
)

// parseNumber converts a number Node's text to int64, reporting overflow as
// an internal error — the grammar accepts arbitrarily long digit runs (spec
// §4.1), so range checking is deliberately deferred here.
func parseNumber(n *grammar.Node) (int64, error) {
	v, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return 0, diag.New(diag.Internal, n.Loc, "numeric literal %q does not fit in a 64-bit signed integer", n.Text)
	}
	return v, nil
}

func lowerRegister(n *grammar.Node) ast.Register {
	r, ok := ast.RegisterFromName(n.Text)
	if !ok {
		// The grammar only ever produces register nodes whose text is one of
		// the sixteen valid names; reaching here means lowering was handed a
		// tree that didn't come from this package's own parser.
		panic("lower: register node with unrecognized name " + n.Text)
	}
	return r
}

// lowerValue converts any node matched as an arithmetic_value, source_value,
// or call_dest (spec §4.1 "t" / "s" / "u") to a Value.
func lowerValue(n *grammar.Node) (ast.Value, error) {
	switch n.Rule {
	case grammar.RuleRegister:
		return ast.RegisterValue{Reg: lowerRegister(n)}, nil
	case grammar.RuleNumber:
		v, err := parseNumber(n)
		if err != nil {
			return nil, err
		}
		return ast.Number{Value: v}, nil
	case grammar.RuleLabel, grammar.RuleFunctionName:
		return ast.LabelLocation{Name: n.Text}, nil
	default:
		panic("lower: unexpected value node rule " + n.Rule)
	}
}

// lowerMemory converts a memory Node to a MemoryLocation, enforcing the
// 8-byte alignment invariant (spec §3: "Offset must be a multiple of 8").
func lowerMemory(n *grammar.Node) (ast.MemoryLocation, error) {
	base := lowerRegister(n.Child(0))
	offsetNode := n.Child(1)
	offset, err := parseNumber(offsetNode)
	if err != nil {
		return ast.MemoryLocation{}, err
	}
	if offset%8 != 0 {
		return ast.MemoryLocation{}, diag.New(diag.Alignment, offsetNode.Loc,
			"memory offset %d is not a multiple of 8", offset)
	}
	return ast.MemoryLocation{Base: base, Offset: offset}, nil
}

var assignOps = map[string]ast.AssignOp{
	"+=": ast.AssignAdd, "-=": ast.AssignSubtract, "*=": ast.AssignMultiply, "&=": ast.AssignBitwiseAnd,
	"<<=": ast.AssignLshift, ">>=": ast.AssignRshift,
}

var compareOps = map[string]ast.CompareOp{
	"<": ast.CompareLt, "<=": ast.CompareLe, "=": ast.CompareEq,
}
