/*
Package nonneg implements a validated wrapper for non-negative finite
floating-point values.
It guarantees at construction time that the wrapped value is greater than
or equal to zero and is neither NaN nor infinity, so callers holding
a [Value] never need to re-check it.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Generic over any floating-point representation (float32, float64,
    and named types with those underlying types)
  - Fallible and panicking constructors, mirroring the New/MustNew
    convention
  - Total, NaN-free comparison and ordering
  - Pass-through text, JSON, binary, and SQL encoding with re-validation
    on every decode
  - Exact conversions to and from the [decimal] package

# Representation

A Value is a struct with a single field holding the wrapped
floating-point number.
The zero value of the struct is ready to use and represents 0.

Three construction shapes are available, replacing the need for any
helper sugar:

	a := nonneg.Zero[float64]()      // zero of an explicit representation
	b, err := nonneg.New(5.5)        // validated value, representation inferred
	c, err := nonneg.New[float32](3) // validated value, explicit representation

# Operations

The package provides comparison operations between values, such as Cmp,
Less, Min, Max, and Clamp.
Since NaN can never be wrapped, ordering is total and free of the usual
floating-point comparison pitfalls.
Arithmetic on the wrapped value is deliberately out of scope; unwrap
with [Value.Get], compute, and re-validate with [New].

# Encoding

A Value encodes as the bare number in every supported codec: text,
JSON, binary, and database/sql.
Decoding always re-runs the same validation as [New], so a negative,
NaN, or infinite wire value fails the decode and the invariant holds
end to end.

# Errors

All failures are synchronous and side-effect free.
Constructors return [ErrInvalidValue] when the candidate value is
negative, NaN, or infinite; the Must variants convert that error into
a panic for call sites with pre-validated literals.
*/
package nonneg
