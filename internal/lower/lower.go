// Package lower implements the pure grammar.Node → ast.Program pass (spec
// §4.3): it never touches the filesystem or emits text, only builds an AST
// and reports diagnostics. Each exported-looking helper below is a total
// function over the already-grammar-validated parse tree — the only things
// it still has to check are the ones the grammar cannot express (numeric
// range, memory alignment, arity, name collisions).
package lower

import (
	"github.com/andrechen77/l1-compiler/internal/ast"
	"github.com/andrechen77/l1-compiler/internal/diag"
	"github.com/andrechen77/l1-compiler/internal/grammar"
)

// Lower converts a parse tree into a Program. prog.Child(0) is the entry
// name (spec §4.1 program: `'(' fn_name function+ ')'`); the entry
// function need not be first among prog.Children[1:]. Lowering rejects a
// program whose entry name resolves to no function (spec §3's Program
// invariant: "first instruction of the entry-point function is reachable"
// presupposes the entry-point function exists at all).
func Lower(prog *grammar.Node) (*ast.Program, error) {
	entryNode := prog.Child(0)
	out := &ast.Program{EntryPointLabel: entryNode.Text}
	seen := make(map[string]grammar.Node) // mangled name -> first definition, for the injectivity check

	for _, fnNode := range prog.Children[1:] {
		fn, err := lowerFunction(fnNode, seen)
		if err != nil {
			return nil, err
		}
		if err := checkMangleInjective(fn.Name, fnNode, seen); err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, fn)
	}
	if out.EntryPoint() == nil {
		return nil, diag.New(diag.Internal, entryNode.Loc,
			"entry point %q does not name any defined function", out.EntryPointLabel)
	}
	return out, nil
}

// checkMangleInjective rejects two label or function definitions whose
// mangled names would collide (spec's Open Question on name mangling:
// enforced at lowering time, not left as a silent link-time clash).
// Mangling here is `_` + name, so a collision can only arise from two
// definitions sharing the exact same source name — the grammar forbids
// neither duplicate function names nor a label shadowing a function name,
// so this check is the only thing that does. seen is shared across both
// function names and label names: they mangle into the same symbol
// namespace, so a function named `foo` and a label `:foo` collide exactly
// as two same-named functions would.
func checkMangleInjective(name string, node *grammar.Node, seen map[string]grammar.Node) error {
	mangled := "_" + name
	if first, ok := seen[mangled]; ok {
		return diag.New(diag.Internal, node.Loc,
			"%q mangles to the same symbol as the one declared at %s", name, first.Loc)
	}
	seen[mangled] = *node
	return nil
}

func lowerFunction(n *grammar.Node, seen map[string]grammar.Node) (*ast.Function, error) {
	nameNode := n.Child(0)
	argcNode := n.Child(1)
	localcNode := n.Child(2)

	argc, err := parseNumber(argcNode)
	if err != nil {
		return nil, err
	}
	localc, err := parseNumber(localcNode)
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{Name: nameNode.Text, NumArgs: argc, NumLocals: localc}
	for _, instrNode := range n.Children[3:] {
		instr, err := lowerInstruction(instrNode, seen)
		if err != nil {
			return nil, err
		}
		fn.Instructions = append(fn.Instructions, instr)
	}
	return fn, nil
}
