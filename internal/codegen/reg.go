// Package codegen implements the AST → AT&T x86-64 text emitter (spec §4.4):
// it walks an *ast.Program and writes assembly to any io.Writer, honoring
// L1's jump-call tail convention, name mangling, and runtime call dispatch.
package codegen

import (
	"fmt"

	"github.com/andrechen77/l1-compiler/internal/ast"
)

// lowByte gives the 8-bit sub-register name used by set{cc}/movzbq (spec
// §4.4 register low-byte table). rsp has no entry: the grammar's writable
// class excludes rsp, so no Value reaching this table can name it.
var lowByte = map[ast.Register]string{
	ast.RAX: "al", ast.RBX: "bl", ast.RCX: "cl", ast.RDX: "dl",
	ast.RDI: "dil", ast.RSI: "sil",
	ast.R8: "r8b", ast.R9: "r9b", ast.R10: "r10b", ast.R11: "r11b",
	ast.R12: "r12b", ast.R13: "r13b", ast.R14: "r14b", ast.R15: "r15b",
	ast.RBP: "bpl",
}

// lowByteOf panics rather than returning an error: reaching rsp here means a
// CompareAssignment/CompareJump destination or lhs slipped past the grammar's
// writable-register restriction, an internal invariant violation rather than
// a user-facing diagnostic.
func lowByteOf(r ast.Register) string {
	b, ok := lowByte[r]
	if !ok {
		panic(fmt.Sprintf("codegen: register %s has no low-byte form", r))
	}
	return b
}

// calleeSaved lists the registers the `go` entry wrapper pushes on entry and
// pops, in reverse, on exit (spec §4.4 prologue).
var calleeSaved = []ast.Register{ast.RBX, ast.RBP, ast.R12, ast.R13, ast.R14, ast.R15}
