package purelambda

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ============================================================================
// Named Operation Dispatch
// ============================================================================

// NamedOp pairs an operation with the name it is dispatched under.
type NamedOp struct {
	Name string
	Op   IntOp
}

// FunctionLoader returns Dispatch as a two-argument function value.
func FunctionLoader() func(mapping map[string]IntOp, name string) IntOp {
	return Dispatch
}

// Dispatch returns an operation that applies mapping[name] to its input, or
// returns the input unchanged when name is not a key. The mapping is read on
// every call and never modified.
//
// Example:
//
//	ops := map[string]IntOp{"square": IntSquareOperation()}
//	Dispatch(ops, "square")(5) // 25
//	Dispatch(ops, "double")(5) // 5
func Dispatch(mapping map[string]IntOp, name string) IntOp {
	return func(v int) int {
		return foldMatches(namedOps(mapping), name, v)
	}
}

// DispatchEntries is Dispatch over an ordered list that may repeat names.
// Every entry is visited; each match replaces the running result, so the last
// matching entry decides.
func DispatchEntries(entries []NamedOp, name string) IntOp {
	return func(v int) int {
		return foldMatches(entries, name, v)
	}
}

func foldMatches(entries []NamedOp, name string, v int) int {
	return lo.Reduce(entries, func(acc int, e NamedOp, _ int) int {
		if e.Name == name {
			return e.Op(v)
		}
		return acc
	}, v)
}

func namedOps(mapping map[string]IntOp) []NamedOp {
	return lo.MapToSlice(mapping, func(name string, op IntOp) NamedOp {
		return NamedOp{Name: name, Op: op}
	})
}

// Lookup reports the operation registered under name, if any.
func Lookup(mapping map[string]IntOp, name string) mo.Option[IntOp] {
	op, ok := mapping[name]
	if !ok {
		return mo.None[IntOp]()
	}
	return mo.Some(op)
}

// LookupEntries reports the last operation registered under name, matching
// the entry DispatchEntries would apply.
func LookupEntries(entries []NamedOp, name string) mo.Option[IntOp] {
	e, _, ok := lo.FindLastIndexOf(entries, func(e NamedOp) bool {
		return e.Name == name
	})
	if !ok {
		return mo.None[IntOp]()
	}
	return mo.Some(e.Op)
}

// Registry returns the built-in named operations. Each call builds a new map.
func Registry() map[string]IntOp {
	return map[string]IntOp{
		"increment": func(x int) int { return x + 1 },
		"decrement": func(x int) int { return x - 1 },
		"double":    NMultiplyFunctionSupplier(2).Get(),
		"square":    IntSquareOperation(),
		"negate":    func(x int) int { return -x },
	}
}

// RegistryNames lists the keys of Registry in sorted order.
func RegistryNames() []string {
	names := lo.Keys(Registry())
	slices.Sort(names)
	return names
}
