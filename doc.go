/*
Package purelambda provides factories for small function values and a
named-operation dispatcher.

# Overview

Each factory returns a named function type. The types implement nothing
beyond being callable, but carry methods for composition, so results can be
chained without wrapper structs or interfaces.

# Quick Example

	square := purelambda.IntSquareOperation()
	evenSquare := square.When(purelambda.IsEven)

	evenSquare(4) // 16
	evenSquare(3) // 3

# Named Dispatch

Dispatch resolves an operation by name and falls back to identity:

	ops := map[string]purelambda.IntOp{
	    "inc":    func(x int) int { return x + 1 },
	    "square": purelambda.IntSquareOperation(),
	}

	purelambda.Dispatch(ops, "inc")(5)    // 6
	purelambda.Dispatch(ops, "square")(5) // 25
	purelambda.Dispatch(ops, "double")(5) // 5

A miss is not an error. Use Lookup when the caller needs to know whether the
name exists:

	if purelambda.Lookup(ops, name).IsAbsent() {
	    log.Warn().Str("op", name).Msg("unknown operation, using identity")
	}

DispatchEntries accepts an ordered list that may repeat a name; the last
matching entry wins.

# Available Types

  - IntOp: integer operation with Compose, When, WithLogging
  - IntBinaryOp, IntSupplier
  - IntPredicate, StringPredicate: with Negate, And, Or
  - StringOp: string transform with Empty and Compose
  - Supplier[T]: generic producer

# Errors

Two factories can fail. StringToIntConverter wraps ErrParse and the
*strconv.NumError it got from strconv.Atoi. BoundedRandomIntSupplier returns
ErrInvalidBound for bounds <= 0. Everything else is total.

# Package Import

	import pl "github.com/Pure-Company/purelambda"
*/
package purelambda
