package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrechen77/l1-compiler/internal/ast"
)

func emitString(t *testing.T, prog *ast.Program) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Emit(&buf, prog); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	return buf.String()
}

func mustContain(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q\ngot:\n%s", want, out)
	}
}

func program(entry string, fns ...*ast.Function) *ast.Program {
	return &ast.Program{EntryPointLabel: entry, Functions: fns}
}

func TestEmitIdentityReturn(t *testing.T) {
	fn := &ast.Function{
		Name:    "main",
		NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{&ast.Return{}},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, ".globl go")
	mustContain(t, out, "call _main")
	mustContain(t, out, "_main:")
	mustContain(t, out, "addq $0, %rsp")
	mustContain(t, out, "retq")
}

func TestEmitMemoryLoadAndStore(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 1,
		Instructions: []ast.Instruction{
			&ast.Assignment{Dst: ast.RegisterValue{Reg: ast.RAX}, Op: ast.AssignPure, Src: ast.MemoryLocation{Base: ast.RBP, Offset: 8}},
			&ast.Assignment{Dst: ast.MemoryLocation{Base: ast.RBP, Offset: 16}, Op: ast.AssignPure, Src: ast.RegisterValue{Reg: ast.RAX}},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "movq 8(%rbp), %rax")
	mustContain(t, out, "movq %rax, 16(%rbp)")
}

func TestEmitShiftByRegisterUsesLowByte(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.Assignment{Dst: ast.RegisterValue{Reg: ast.RAX}, Op: ast.AssignLshift, Src: ast.RegisterValue{Reg: ast.RCX}},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "salq %cl, %rax")
}

func TestEmitCompareJumpNonConstant(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CompareJump{Lhs: ast.RegisterValue{Reg: ast.RAX}, Op: ast.CompareLt, Rhs: ast.RegisterValue{Reg: ast.RBX}, Label: "done"},
			&ast.Label{Name: "done"},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "cmpq %rbx, %rax")
	mustContain(t, out, "jl _done")
	mustContain(t, out, "_done:")
}

func TestEmitCompareAssignmentCanonicalizesImmediateLhs(t *testing.T) {
	// rdi <- 5 < rax: the immediate lhs swaps with rax, flipping < to >,
	// and the set+movzbq sequence targets rax's low byte (the canonical
	// lhs), not rdi.
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CompareAssignment{Dst: ast.RDI, Lhs: ast.Number{Value: 5}, Op: ast.CompareLt, Rhs: ast.RegisterValue{Reg: ast.RAX}},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "cmpq $5, %rax")
	mustContain(t, out, "setg %al")
	mustContain(t, out, "movzbq %al, %rdi")
}

func TestEmitCompareAssignmentConstantFolds(t *testing.T) {
	fnTrue := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CompareAssignment{Dst: ast.RAX, Lhs: ast.Number{Value: 3}, Op: ast.CompareLt, Rhs: ast.Number{Value: 5}},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fnTrue))
	mustContain(t, out, "movq $1, %rax")

	fnFalse := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CompareAssignment{Dst: ast.RAX, Lhs: ast.Number{Value: 5}, Op: ast.CompareLt, Rhs: ast.Number{Value: 3}},
			&ast.Return{},
		},
	}
	out = emitString(t, program("main", fnFalse))
	mustContain(t, out, "movq $0, %rax")
}

func TestEmitCompareJumpConstantFoldsToUnconditionalOrNothing(t *testing.T) {
	fnTrue := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CompareJump{Lhs: ast.Number{Value: 3}, Op: ast.CompareLt, Rhs: ast.Number{Value: 5}, Label: "l"},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fnTrue))
	mustContain(t, out, "jmp _l")
	if strings.Contains(out, "cmpq") {
		t.Errorf("constant-true cjump should not emit a cmpq:\n%s", out)
	}

	fnFalse := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CompareJump{Lhs: ast.Number{Value: 5}, Op: ast.CompareLt, Rhs: ast.Number{Value: 3}, Label: "l"},
			&ast.Return{},
		},
	}
	out = emitString(t, program("main", fnFalse))
	if strings.Contains(out, "jmp _l") || strings.Contains(out, "cmpq") {
		t.Errorf("constant-false cjump should emit neither jmp nor cmpq:\n%s", out)
	}
}

func TestEmitRuntimeCallDispatch(t *testing.T) {
	cases := []struct {
		name    string
		numArgs int64
		want    string
	}{
		{"print", 1, "call print"},
		{"input", 0, "call input"},
		{"allocate", 2, "call allocate"},
		{"tuple-error", 3, "call tuple_error"},
		{"tensor-error", 1, "call array_tensor_error_null"},
		{"tensor-error", 3, "call array_tensor"},
		{"tensor-error", 4, "call tensor_error"},
	}
	for _, c := range cases {
		fn := &ast.Function{
			Name: "main", NumArgs: 0, NumLocals: 0,
			Instructions: []ast.Instruction{
				&ast.CallFunction{Name: c.name, IsRuntime: true, NumArgs: c.numArgs},
				&ast.Return{},
			},
		}
		out := emitString(t, program("main", fn))
		mustContain(t, out, c.want)
	}
}

func TestEmitUserCallStackFixupForEightArguments(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CallFunction{Name: "helper", IsRuntime: false, NumArgs: 8},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	// 8 args - 6 register slots = 2 stack args, +1 for the synthesized
	// return slot = 3 words = 24 bytes (spec §8).
	mustContain(t, out, "subq $24, %rsp")
	mustContain(t, out, "jmp _helper")
}

func TestEmitCallRegisterUsesIndirectJump(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.CallRegister{Reg: ast.RAX, NumArgs: 2},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "subq $8, %rsp")
	mustContain(t, out, "jmp *%rax")
}

func TestEmitReturnFixupIncludesLocalsAndStackArgs(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 8, NumLocals: 2,
		Instructions: []ast.Instruction{&ast.Return{}},
	}
	out := emitString(t, program("main", fn))
	// stackArgCount(8) = 2, + 2 locals = 4 words = 32 bytes.
	mustContain(t, out, "addq $32, %rsp")
}

func TestEmitIncrementDecrement(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.Increment{Dst: ast.RAX},
			&ast.Decrement{Dst: ast.RBX},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "incq %rax")
	mustContain(t, out, "decq %rbx")
}

func TestEmitLeaq(t *testing.T) {
	fn := &ast.Function{
		Name: "main", NumArgs: 0, NumLocals: 0,
		Instructions: []ast.Instruction{
			&ast.Leaq{Dst: ast.RAX, Base: ast.RBX, Index: ast.RCX, Scale: 8},
			&ast.Return{},
		},
	}
	out := emitString(t, program("main", fn))
	mustContain(t, out, "leaq (%rbx,%rcx,8), %rax")
}

func TestEmitProloguePushesAndPopsCalleeSaved(t *testing.T) {
	fn := &ast.Function{Name: "main", Instructions: []ast.Instruction{&ast.Return{}}}
	out := emitString(t, program("main", fn))
	lines := strings.Split(out, "\n")
	var pushes, pops []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		switch {
		case strings.HasPrefix(l, "pushq"):
			pushes = append(pushes, l)
		case strings.HasPrefix(l, "popq"):
			pops = append(pops, l)
		}
	}
	if len(pushes) != 6 || len(pops) != 6 {
		t.Fatalf("expected 6 pushes and 6 pops, got %d/%d:\n%s", len(pushes), len(pops), out)
	}
	for i := range pushes {
		pushedReg := strings.Fields(pushes[i])[1]
		poppedReg := strings.Fields(pops[len(pops)-1-i])[1]
		if pushedReg != poppedReg {
			t.Errorf("push/pop order mismatch: pushed %s, popped %s in matching position", pushedReg, poppedReg)
		}
	}
}
