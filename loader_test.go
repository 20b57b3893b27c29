package purelambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOps() map[string]IntOp {
	return map[string]IntOp{
		"inc":    func(x int) int { return x + 1 },
		"square": IntSquareOperation(),
	}
}

func TestDispatch(t *testing.T) {
	ops := sampleOps()

	tests := []struct {
		name string
		op   string
		in   int
		want int
	}{
		{"match inc", "inc", 5, 6},
		{"match square", "square", 5, 25},
		{"miss is identity", "double", 5, 5},
		{"empty name misses", "", 5, 5},
		{"names are case sensitive", "Square", 5, 5},
		{"negative input", "square", -3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dispatch(ops, tt.op)(tt.in))
		})
	}
}

func TestDispatch_EmptyMapping(t *testing.T) {
	for _, m := range []map[string]IntOp{nil, {}} {
		f := Dispatch(m, "anything")
		assert.Equal(t, 0, f(0))
		assert.Equal(t, -17, f(-17))
	}
}

func TestDispatch_MatchIndependentOfOtherEntries(t *testing.T) {
	// Go randomizes map iteration; repeat to cover several orders.
	ops := map[string]IntOp{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		ops[name] = func(x int) int { return x * 100 }
	}
	ops["target"] = func(x int) int { return x + 1 }

	f := Dispatch(ops, "target")
	for range 50 {
		require.Equal(t, 8, f(7))
	}
}

func TestDispatch_DoesNotMutateMapping(t *testing.T) {
	ops := sampleOps()

	Dispatch(ops, "square")(3)
	Dispatch(ops, "missing")(3)

	assert.Len(t, ops, 2)
	assert.Contains(t, ops, "inc")
	assert.Contains(t, ops, "square")
}

func TestDispatch_ReadsMappingAtCallTime(t *testing.T) {
	ops := sampleOps()
	f := Dispatch(ops, "double")

	assert.Equal(t, 5, f(5))

	ops["double"] = NMultiplyFunctionSupplier(2).Get()
	assert.Equal(t, 10, f(5))
}

func TestFunctionLoader(t *testing.T) {
	load := FunctionLoader()

	assert.Equal(t, 6, load(sampleOps(), "inc")(5))
	assert.Equal(t, 5, load(sampleOps(), "nope")(5))
}

func TestDispatchEntries_LastMatchWins(t *testing.T) {
	entries := []NamedOp{
		{Name: "op", Op: func(x int) int { return x + 1 }},
		{Name: "other", Op: func(x int) int { return x * 1000 }},
		{Name: "op", Op: func(x int) int { return x * 10 }},
		{Name: "tail", Op: func(x int) int { return -x }},
	}

	assert.Equal(t, 50, DispatchEntries(entries, "op")(5))
	assert.Equal(t, -5, DispatchEntries(entries, "tail")(5))
	assert.Equal(t, 5, DispatchEntries(entries, "missing")(5))
	assert.Equal(t, 5, DispatchEntries(nil, "op")(5))
}

func TestDispatchEntries_VisitsEveryEntry(t *testing.T) {
	calls := 0
	counting := func(x int) int {
		calls++
		return x
	}
	entries := []NamedOp{
		{Name: "op", Op: counting},
		{Name: "op", Op: counting},
		{Name: "op", Op: counting},
	}

	DispatchEntries(entries, "op")(1)

	assert.Equal(t, 3, calls, "fold must not short-circuit")
}

func TestLookup(t *testing.T) {
	ops := sampleOps()

	found := Lookup(ops, "square")
	require.True(t, found.IsPresent())
	assert.Equal(t, 49, found.MustGet()(7))

	assert.True(t, Lookup(ops, "double").IsAbsent())
	assert.True(t, Lookup(nil, "square").IsAbsent())
}

func TestLookupEntries(t *testing.T) {
	entries := []NamedOp{
		{Name: "op", Op: func(x int) int { return x + 1 }},
		{Name: "op", Op: func(x int) int { return x * 10 }},
	}

	op, ok := LookupEntries(entries, "op").Get()
	require.True(t, ok)
	assert.Equal(t, 50, op(5))

	assert.True(t, LookupEntries(entries, "missing").IsAbsent())
}

func TestRegistry(t *testing.T) {
	ops := Registry()

	assert.Equal(t, 6, Dispatch(ops, "increment")(5))
	assert.Equal(t, 4, Dispatch(ops, "decrement")(5))
	assert.Equal(t, 10, Dispatch(ops, "double")(5))
	assert.Equal(t, 25, Dispatch(ops, "square")(5))
	assert.Equal(t, -5, Dispatch(ops, "negate")(5))
}

func TestRegistry_FreshMapPerCall(t *testing.T) {
	ops := Registry()
	delete(ops, "square")

	assert.Contains(t, Registry(), "square")
}

func TestRegistryNames(t *testing.T) {
	assert.Equal(t, []string{"decrement", "double", "increment", "negate", "square"}, RegistryNames())
}
