package grammar

import "fmt"

// ruleRefs records, for every named production, which other productions it
// references. This mirrors `pegtl::analyze<grammar>()` in the original
// implementation (spec §7 GrammarError: "PEG analyze detects grammar
// definition issues at startup") — it does not drive parsing itself (the
// parser below is a set of direct recursive-descent functions), but it lets
// Validate catch a dangling reference before any source file is read.
var ruleRefs = map[string][]string{
	RuleProgram:  {RuleFunctionName, RuleFunction},
	RuleFunction: {RuleFunctionName, "argument_number", "local_number", "instruction"},
	"instruction": {
		RuleReturn, RuleCompareAssignment, RuleAssignment, RuleMemoryRead, RuleMemoryWrite,
		RuleArithOp, RuleShiftOpRegister, RuleShiftOpImmediate,
		RulePlusWriteMemory, RuleMinusWriteMemory, RulePlusReadMemory, RuleMinusReadMemory,
		RuleCompareJump, RuleLabel, RuleGoto, RuleCall, RuleCallRuntime,
		RuleIncrement, RuleDecrement, RuleLeaq,
	},
	RuleAssignment:        {"writable", "source_value"},
	RuleMemoryRead:        {"writable", RuleMemory},
	RuleMemoryWrite:       {RuleMemory, "writable"},
	RuleArithOp:           {"writable", "arithmetic_value"},
	RuleShiftOpRegister:   {"writable", "rcx_only"},
	RuleShiftOpImmediate:  {"writable", RuleNumber},
	RulePlusWriteMemory:   {RuleMemory, "arithmetic_value"},
	RuleMinusWriteMemory:  {RuleMemory, "arithmetic_value"},
	RulePlusReadMemory:    {"writable", RuleMemory},
	RuleMinusReadMemory:   {"writable", RuleMemory},
	RuleCompareAssignment: {"writable", "arithmetic_value", "arithmetic_value"},
	RuleCompareJump:       {"arithmetic_value", "arithmetic_value", RuleLabel},
	RuleGoto:              {RuleLabel},
	RuleCall:              {"call_dest", RuleNumber},
	RuleCallRuntime:       {RuleNumber},
	RuleIncrement:         {"writable"},
	RuleDecrement:         {"writable"},
	RuleLeaq:              {"writable", "writable", "writable", RuleNumber},
	RuleReturn:            {},
	RuleMemory:            {"any", RuleNumber},
	"source_value":        {"arithmetic_value", RuleLabel, RuleFunctionName},
	"arithmetic_value":    {"any", RuleNumber},
	"call_dest":           {"writable", RuleFunctionName},
	"any":                 {"writable"},
	"writable":            {"idk"},
	"idk":                 {"rcx_only"},
	"rcx_only":            {},
	RuleLabel:             {RuleName},
	RuleFunctionName:      {RuleName},
	RuleName:              {},
	RuleNumber:            {},
	"argument_number":     {RuleNumber},
	"local_number":        {RuleNumber},
}

// Validate walks ruleRefs and fails if any production references a rule that
// isn't itself defined, the same startup check the original grammar performs
// via pegtl::analyze before parsing the first file.
func Validate() error {
	for rule, refs := range ruleRefs {
		for _, ref := range refs {
			if _, ok := ruleRefs[ref]; !ok {
				return fmt.Errorf("grammar: rule %q references undefined rule %q", rule, ref)
			}
		}
	}
	return nil
}
