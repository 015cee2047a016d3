package codegen

// Mangle applies L1's name-mangling contract (spec §4.4, §6): every
// user-visible label or function name is emitted with a leading underscore,
// isolating L1's namespace from the runtime/C symbols it links against.
// Injectivity (two distinct L1 names must not mangle to the same symbol) is
// enforced earlier, at lowering (internal/lower's checkMangleInjective) —
// by the time a name reaches here it's already known to be collision-free.
func Mangle(name string) string {
	return "_" + name
}
