package purelambda

import (
	"fmt"
	"strings"
)

// ============================================================================
// Integer Operations
// ============================================================================

// IntOp is a pure, single-argument integer function.
//
// Example:
//
//	inc := IntOp(func(x int) int { return x + 1 })
//	op := inc.Compose(IntSquareOperation()) // (x+1)^2
type IntOp func(int) int

// Apply invokes the operation.
func (f IntOp) Apply(v int) int {
	return f(v)
}

// Identity returns the operation that returns its input (Monoid identity).
func (f IntOp) Identity() IntOp {
	return func(v int) int { return v }
}

// Compose applies the receiver, then next (Monoid operation).
func (f IntOp) Compose(next IntOp) IntOp {
	return func(v int) int {
		return next(f(v))
	}
}

// When applies the operation only to inputs matching pred. Other inputs pass
// through unchanged.
func (f IntOp) When(pred IntPredicate) IntOp {
	return func(v int) int {
		if pred(v) {
			return f(v)
		}
		return v
	}
}

// WithLogging reports every application to logger.
func (f IntOp) WithLogging(logger func(string)) IntOp {
	return func(v int) int {
		out := f(v)
		logger(fmt.Sprintf("apply: %d -> %d", v, out))
		return out
	}
}

// IntBinaryOp is a two-argument 64-bit integer function.
type IntBinaryOp func(a, b int64) int64

// Apply invokes the operation.
func (f IntBinaryOp) Apply(a, b int64) int64 {
	return f(a, b)
}

// IntSupplier produces integers on demand.
type IntSupplier func() int

// Get invokes the supplier.
func (f IntSupplier) Get() int {
	return f()
}

// ============================================================================
// Predicates
// ============================================================================

// IntPredicate is a boolean test over integers.
type IntPredicate func(int) bool

// Test invokes the predicate.
func (p IntPredicate) Test(v int) bool {
	return p(v)
}

// Negate inverts the predicate.
func (p IntPredicate) Negate() IntPredicate {
	return func(v int) bool { return !p(v) }
}

// And holds when both predicates hold. other is not evaluated if p fails.
func (p IntPredicate) And(other IntPredicate) IntPredicate {
	return func(v int) bool { return p(v) && other(v) }
}

// Or holds when either predicate holds.
func (p IntPredicate) Or(other IntPredicate) IntPredicate {
	return func(v int) bool { return p(v) || other(v) }
}

// IsEven reports whether v is divisible by two.
var IsEven IntPredicate = func(v int) bool { return v%2 == 0 }

// StringPredicate is a boolean test over strings.
type StringPredicate func(string) bool

// Test invokes the predicate.
func (p StringPredicate) Test(s string) bool {
	return p(s)
}

// Negate inverts the predicate.
func (p StringPredicate) Negate() StringPredicate {
	return func(s string) bool { return !p(s) }
}

// And holds when both predicates hold.
func (p StringPredicate) And(other StringPredicate) StringPredicate {
	return func(s string) bool { return p(s) && other(s) }
}

// Or holds when either predicate holds.
func (p StringPredicate) Or(other StringPredicate) StringPredicate {
	return func(s string) bool { return p(s) || other(s) }
}

// ============================================================================
// String Operations
// ============================================================================

// StringOp transforms one string into another.
//
// Example:
//
//	shout := StringOp(strings.ToUpper).Compose(func(s string) string {
//	    return s + "!"
//	})
type StringOp func(string) string

// Apply invokes the operation.
func (f StringOp) Apply(s string) string {
	return f(s)
}

// Empty returns the identity transform (Monoid identity).
func (f StringOp) Empty() StringOp {
	return func(s string) string { return s }
}

// Compose applies the receiver, then next (Monoid operation).
func (f StringOp) Compose(next StringOp) StringOp {
	return func(s string) string {
		return next(f(s))
	}
}

// Trim is strings.TrimSpace as a StringOp.
var Trim StringOp = strings.TrimSpace

// ============================================================================
// Suppliers
// ============================================================================

// Supplier produces a value of T on demand.
type Supplier[T any] func() T

// Get invokes the supplier.
func (s Supplier[T]) Get() T {
	return s()
}

// Constant returns a supplier that always yields v.
func Constant[T any](v T) Supplier[T] {
	return func() T { return v }
}
