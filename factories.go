package purelambda

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// HelloSupplier returns a supplier that always yields "Hello".
func HelloSupplier() Supplier[string] {
	return Constant("Hello")
}

// IsEmptyPredicate returns a predicate that holds for the empty string.
func IsEmptyPredicate() StringPredicate {
	return func(s string) bool { return s == "" }
}

// StringMultiplier returns a function that repeats a string count times.
// A negative count panics, as strings.Repeat does.
func StringMultiplier() func(s string, count int) string {
	return strings.Repeat
}

// ToDollarStringFunction returns a formatter that prefixes the plain decimal
// text with a dollar sign. The scale of the input is kept, so 12.50 renders
// as "$12.50" rather than "$12.5".
func ToDollarStringFunction() func(decimal.Decimal) string {
	return func(d decimal.Decimal) string {
		if exp := d.Exponent(); exp < 0 {
			return "$" + d.StringFixed(-exp)
		}
		return "$" + d.String()
	}
}

// LengthInRangePredicate returns a predicate that holds when the rune count
// of its input lies in [minLen, maxLen]. Both bounds are inclusive.
func LengthInRangePredicate(minLen, maxLen int) StringPredicate {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= minLen && n <= maxLen
	}
}

// RandomIntSupplier returns a supplier of non-negative pseudo-random ints.
func RandomIntSupplier() IntSupplier {
	return rand.Int
}

// BoundedRandomIntSupplier returns a function yielding a pseudo-random int in
// [0, bound). Non-positive bounds fail with ErrInvalidBound.
func BoundedRandomIntSupplier() func(bound int) (int, error) {
	return func(bound int) (int, error) {
		if bound <= 0 {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
		}
		return rand.IntN(bound), nil
	}
}

// IntSquareOperation returns x -> x*x.
func IntSquareOperation() IntOp {
	return func(x int) int { return x * x }
}

// LongSumOperation returns (a, b) -> a+b.
func LongSumOperation() IntBinaryOp {
	return func(a, b int64) int64 { return a + b }
}

// StringToIntConverter returns a base-10 parser. Failures wrap ErrParse
// together with the *strconv.NumError from strconv.Atoi.
func StringToIntConverter() func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return n, nil
	}
}

// ParseInt is StringToIntConverter in Result form.
func ParseInt(s string) mo.Result[int] {
	return mo.TupleToResult(StringToIntConverter()(s))
}

// NMultiplyFunctionSupplier returns a supplier of x -> n*x.
func NMultiplyFunctionSupplier(n int) Supplier[IntOp] {
	return func() IntOp {
		return func(x int) int { return n * x }
	}
}

// TrickyWellDoneSupplier returns three nested suppliers. The innermost one
// yields "WELL DONE!".
func TrickyWellDoneSupplier() Supplier[Supplier[Supplier[string]]] {
	return func() Supplier[Supplier[string]] {
		return func() Supplier[string] {
			return Constant("WELL DONE!")
		}
	}
}

// ComposeWithTrimFunction returns a transformer that prepends whitespace
// trimming to a string function: the result computes fn(TrimSpace(s)).
func ComposeWithTrimFunction() func(fn StringOp) StringOp {
	return func(fn StringOp) StringOp {
		return Trim.Compose(fn)
	}
}

// FunctionToConditionalFunction returns a combinator building op.When(pred):
// op is applied to inputs matching pred, every other input is returned as is.
func FunctionToConditionalFunction() func(op IntOp, pred IntPredicate) IntOp {
	return func(op IntOp, pred IntPredicate) IntOp {
		return op.When(pred)
	}
}
