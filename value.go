package nonneg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// ErrInvalidValue is returned when a candidate value is negative, NaN,
// or infinite.
var ErrInvalidValue = errors.New("value must be non-negative and finite")

// Value type represents a non-negative finite floating-point number.
// Its zero value corresponds to 0.
// Value is designed to be safe for concurrent use by multiple goroutines.
type Value[T constraints.Float] struct {
	value T // non-negative finite number
}

// newUnsafe creates a new value without checking the invariant.
// Use it only if you are absolutely sure that the argument is valid.
func newUnsafe[T constraints.Float](value T) Value[T] {
	return Value[T]{value: value}
}

// New returns a validated value.
// Negative zero is accepted, as it satisfies value >= 0; the stored
// value compares equal to [Zero].
//
// New returns [ErrInvalidValue] if:
//   - the value is negative;
//   - the value is NaN;
//   - the value is positive or negative infinity.
func New[T constraints.Float](value T) (Value[T], error) {
	f := float64(value)
	if value < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value[T]{}, ErrInvalidValue
	}
	return newUnsafe(value), nil
}

// MustNew is like [New] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding
// pre-validated literals.
func MustNew[T constraints.Float](value T) Value[T] {
	v, err := New(value)
	if err != nil {
		panic(fmt.Sprintf("New(%v) failed: %v", value, err))
	}
	return v
}

// Zero returns a value equal to 0 for the chosen representation.
// It is identical to the zero value of the struct.
func Zero[T constraints.Float]() Value[T] {
	return Value[T]{}
}

// Parse converts a decimal string to a (possibly rounded) value.
// The string is parsed at the precision of the chosen representation
// and then validated as in [New].
// See also method [Value.String].
func Parse[T constraints.Float](s string) (Value[T], error) {
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return Value[T]{}, fmt.Errorf("parsing value: %w", err)
	}
	return New(T(f))
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParse[T constraints.Float](s string) Value[T] {
	v, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return v
}

// NewFromDecimal converts a decimal to a (possibly rounded) value.
// See also method [Value.Decimal].
//
// NewFromDecimal returns an error if the decimal is negative or cannot
// be represented in the chosen representation.
func NewFromDecimal[T constraints.Float](d decimal.Decimal) (Value[T], error) {
	f, ok := d.Float64()
	if !ok {
		return Value[T]{}, fmt.Errorf("converting decimal: %v cannot be represented as a float", d)
	}
	return New(T(f))
}

// bitSize returns the size of the representation in bits.
func bitSize[T constraints.Float]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// Get returns the wrapped value.
func (v Value[T]) Get() T {
	return v.value
}

// Float64 returns the wrapped value widened to float64.
// The conversion is exact for all representations.
// See also method [Value.Get].
func (v Value[T]) Float64() float64 {
	return float64(v.value)
}

// Decimal returns the decimal representation of the value.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if the value does not fit the supported
// range of the [decimal] package.
func (v Value[T]) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromFloat64(v.Float64())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting value: %w", err)
	}
	return d, nil
}

// Zero returns a value with a value of 0.
func (v Value[T]) Zero() Value[T] {
	return Value[T]{}
}

// One returns a value with a value of 1.
func (v Value[T]) One() Value[T] {
	return newUnsafe(T(1))
}

// ULP returns the unit in the last place, the gap between the value and
// the next representable number.
// At the top of the representable range, where stepping up would
// overflow, the gap below the value is returned instead.
func (v Value[T]) ULP() Value[T] {
	if bitSize[T]() == 32 {
		f := float32(v.value)
		next := math.Nextafter32(f, float32(math.Inf(1)))
		if math.IsInf(float64(next), 1) {
			next, f = f, math.Nextafter32(f, 0)
		}
		return newUnsafe(T(next - f))
	}
	f := v.Float64()
	next := math.Nextafter(f, math.Inf(1))
	if math.IsInf(next, 1) {
		next, f = f, math.Nextafter(f, 0)
	}
	return newUnsafe(T(next - f))
}

// Sign returns:
//
//	0 if v = 0
//	1 if v > 0
func (v Value[T]) Sign() int {
	if v.value > 0 {
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Value[T]) IsZero() bool {
	return v.value == 0
}

// IsPos returns:
//
//	true  if v > 0
//	false otherwise
func (v Value[T]) IsPos() bool {
	return v.value > 0
}

// IsOne returns:
//
//	true  if v = 1
//	false otherwise
func (v Value[T]) IsOne() bool {
	return v.value == 1
}

// WithinOne returns:
//
//	true  if v < 1
//	false otherwise
func (v Value[T]) WithinOne() bool {
	return v.value < 1
}

// Cmp numerically compares values and returns:
//
//	-1 if v < u
//	 0 if v = u
//	+1 if v > u
//
// Unlike raw floating-point comparison, Cmp defines a total order,
// since NaN is excluded by construction.
func (v Value[T]) Cmp(u Value[T]) int {
	switch {
	case v.value < u.value:
		return -1
	case v.value > u.value:
		return 1
	}
	return 0
}

// Less returns:
//
//	true  if v < u
//	false otherwise
func (v Value[T]) Less(u Value[T]) bool {
	return v.value < u.value
}

// Min returns the smaller value.
func (v Value[T]) Min(u Value[T]) Value[T] {
	if v.Cmp(u) <= 0 {
		return v
	}
	return u
}

// Max returns the larger value.
func (v Value[T]) Max(u Value[T]) Value[T] {
	if v.Cmp(u) >= 0 {
		return v
	}
	return u
}

// Clamp compares values and returns:
//
//	min if v < min
//	max if v > max
//	  v otherwise
//
// Clamp returns an error if min is greater than max.
func (v Value[T]) Clamp(min, max Value[T]) (Value[T], error) {
	if min.Cmp(max) > 0 {
		return Value[T]{}, fmt.Errorf("clamping value: min is greater than max")
	}
	if v.Cmp(min) < 0 {
		return min, nil
	}
	if v.Cmp(max) > 0 {
		return max, nil
	}
	return v, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value, rendered exactly as the raw number would
// be: the shortest decimal form that round-trips at the precision of
// the representation.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value[T]) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, bitSize[T]())
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description            |
//	| ---------- | ------- | ---------------------- |
//	| %f, %F     | 5.67    | Decimal notation       |
//	| %e, %E     | 5.67e+0 | Scientific notation    |
//	| %g, %G     | 5.67    | Shortest representation|
//	| %s, %v     | 5.67    | Same as String         |
//	| %q         | "5.67"  | Quoted string          |
//
// The '-', '+', ' ', '0', and '#' flags, width, and precision are
// forwarded unchanged, so a Value renders identically to the raw
// number it wraps.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
func (v Value[T]) Format(state fmt.State, verb rune) {
	directive := make([]byte, 0, 8)
	directive = append(directive, '%')
	for _, flag := range "-+ 0#" {
		if state.Flag(int(flag)) {
			directive = append(directive, byte(flag))
		}
	}
	if width, ok := state.Width(); ok {
		directive = strconv.AppendInt(directive, int64(width), 10)
	}
	if prec, ok := state.Precision(); ok {
		directive = append(directive, '.')
		directive = strconv.AppendInt(directive, int64(prec), 10)
	}
	// Writing result
	//nolint:errcheck
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		directive = append(directive, byte(verb))
		fmt.Fprintf(state, string(directive), v.value)
	case 's', 'v':
		directive = append(directive, 's')
		fmt.Fprintf(state, string(directive), v.String())
	case 'q':
		directive = append(directive, 'q')
		fmt.Fprintf(state, string(directive), v.String())
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(nonneg.Value="))
		state.Write([]byte(v.String()))
		state.Write([]byte(")"))
	}
}
