package grammar

import "testing"

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse("test.l1", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return n
}

func TestParseSmallestLegalProgram(t *testing.T) {
	prog := mustParse(t, "(@main (@main 0 0 return))")
	if prog.Rule != RuleProgram {
		t.Fatalf("got rule %q, want %q", prog.Rule, RuleProgram)
	}
	if prog.Child(0).Text != "main" {
		t.Fatalf("entry name = %q, want %q", prog.Child(0).Text, "main")
	}
	if len(prog.Children) != 2 {
		t.Fatalf("got %d children, want 1 entry name + 1 function", len(prog.Children))
	}
	fn := prog.Children[1]
	if fn.Rule != RuleFunction || fn.Child(0).Text != "main" {
		t.Fatalf("got %+v", fn)
	}
	instrs := fn.Children[3:]
	if len(instrs) != 1 || instrs[0].Rule != RuleReturn {
		t.Fatalf("instructions = %+v, want single return", instrs)
	}
}

func TestParseEntryPointNeedNotBeFirstFunction(t *testing.T) {
	prog := mustParse(t, "(@main (@helper 0 0 return) (@main 0 0 return))")
	if prog.Child(0).Text != "main" {
		t.Fatalf("entry name = %q, want %q", prog.Child(0).Text, "main")
	}
	if prog.Children[1].Child(0).Text != "helper" || prog.Children[2].Child(0).Text != "main" {
		t.Fatalf("functions in unexpected order: %+v", prog.Children[1:])
	}
}

func TestParseEmptyFunctionBodyIsError(t *testing.T) {
	if _, err := Parse("test.l1", []byte("(@main (@main 0 0))")); err == nil {
		t.Fatalf("expected ParseError for empty function body, got nil")
	}
}

func TestParseCompareAssignmentBeforePlainAssignment(t *testing.T) {
	prog := mustParse(t, "(@main (@main 0 0 rax <- rbx < rcx return))")
	instrs := prog.Children[1].Children[3:]
	first := instrs[0]
	if first.Rule != RuleCompareAssignment {
		t.Fatalf("got rule %q, want %q — plain assignment must not shadow compare-assignment", first.Rule, RuleCompareAssignment)
	}
	if first.Text != "<" {
		t.Fatalf("comparison operator = %q, want %q", first.Text, "<")
	}
}

func TestParsePlainAssignmentStillWorks(t *testing.T) {
	prog := mustParse(t, "(@main (@main 0 0 rax <- rbx return))")
	instrs := prog.Children[1].Children[3:]
	if instrs[0].Rule != RuleAssignment {
		t.Fatalf("got rule %q, want %q", instrs[0].Rule, RuleAssignment)
	}
}

func TestParseCallRuntimeFixedArity(t *testing.T) {
	prog := mustParse(t, "(@main (@main 0 0 call print 1 return))")
	instrs := prog.Children[1].Children[3:]
	if instrs[0].Rule != RuleCallRuntime || instrs[0].Text != "print" {
		t.Fatalf("got %+v, want call_runtime print", instrs[0])
	}
}

func TestParseCallRuntimeWrongFixedArityFails(t *testing.T) {
	if _, err := Parse("test.l1", []byte("(@main (@main 0 0 call print 2 return))")); err == nil {
		t.Fatalf("expected ParseError for call print with wrong arity, got nil")
	}
}

func TestParseTensorErrorAcceptsAnyNumberSyntactically(t *testing.T) {
	prog := mustParse(t, "(@main (@main 0 0 call tensor-error 5 return))")
	instrs := prog.Children[1].Children[3:]
	if instrs[0].Rule != RuleCallRuntime || instrs[0].Text != "tensor-error" {
		t.Fatalf("got %+v, want call_runtime tensor-error", instrs[0])
	}
	if instrs[0].Child(0).Text != "5" {
		t.Fatalf("arg = %q, want %q (arity validity is checked at lowering, not parse)", instrs[0].Child(0).Text, "5")
	}
}

func TestParseLeaqRejectsTwoDigitScale(t *testing.T) {
	if _, err := Parse("test.l1", []byte("(@main (@main 0 0 rax @ rbx rcx 16 return))")); err == nil {
		t.Fatalf("expected ParseError for scale 16, got nil")
	}
}

func TestParseLeaqAcceptsValidScale(t *testing.T) {
	prog := mustParse(t, "(@main (@main 0 0 rax @ rbx rcx 8 return))")
	instrs := prog.Children[1].Children[3:]
	if instrs[0].Rule != RuleLeaq {
		t.Fatalf("got rule %q, want %q", instrs[0].Rule, RuleLeaq)
	}
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "(@main\n// entry function\n(@main 0 0\n// a comment\nreturn\n)\n)\n"
	mustParse(t, src)
}

func TestParseCommentAfterFinalParenIsError(t *testing.T) {
	src := "(@main (@main 0 0 return))\n// trailing comment\n"
	if _, err := Parse("test.l1", []byte(src)); err == nil {
		t.Fatalf("expected ParseError for comment after final paren, got nil")
	}
}

func TestParseRejectsTrailingGarbageInBody(t *testing.T) {
	if _, err := Parse("test.l1", []byte("(@main (@main 0 0 return $bogus))")); err == nil {
		t.Fatalf("expected ParseError for trailing garbage, got nil")
	}
}

func TestValidateGrammarSelfCheckPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
