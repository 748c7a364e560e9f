// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package intfloat implements a fixed-point decimal number, stored as an
// integer mantissa scaled by a power of ten. Unlike native floats, a Value
// is comparable and can be used as a map key, and all arithmetic is plain
// integer arithmetic.
//
// A Value never normalizes its representation: FromMantAndScale(500, 0) and
// FromMantAndScale(50000, 2) represent the same number, and Eq reports them
// equal, but they are distinct map keys, because Go hashes the raw
// (mantissa, scale) pair. Use Eq, not ==, to compare by numeric value.
//
// Arithmetic is not overflow-checked: mantissas wrap the way ints do, and
// division truncates. When accuracy matters more than speed,
// github.com/shopspring/decimal is a safer alternative.
package intfloat

import (
	"fmt"
	"math"
	"strconv"

	mu "github.com/avdva/intfloat/internal/mathutil"
)

// Value is a fixed-point decimal number equal to mant * 10^-scale.
// A positive scale is the number of digits after the decimal point:
// {534, 2} is 5.34. A negative scale is an implicit multiplier:
// {534, -2} is 53400.
//
// The zero Value is ready to use and represents 0.
type Value struct {
	mant  int
	scale int
}

// Zero returns the additive identity, {0, 0}.
func Zero() Value {
	return Value{}
}

// One returns the multiplicative identity, {1, 0}.
func One() Value {
	return Value{mant: 1}
}

// FromMantAndScale returns a value for given mantissa and scale.
// The pair is stored verbatim, nothing is validated or reduced.
func FromMantAndScale(mant, scale int) Value {
	return Value{mant: mant, scale: scale}
}

// FromFloat64 returns a value with the given scale, rounding f to the
// nearest mantissa: FromFloat64(5.34234, 2) is {534, 2}.
// A large f combined with a large scale overflows the mantissa silently.
func FromFloat64(f float64, scale int) Value {
	return Value{mant: int(math.Round(f * math.Pow10(scale))), scale: scale}
}

// FromString parses s as an integer literal in the given base,
// returning a value with scale 0.
// The underlying strconv error is wrapped and can be unwrapped
// into a *strconv.NumError.
func FromString(s string, base int) (Value, error) {
	mant, err := strconv.ParseInt(s, base, strconv.IntSize)
	if err != nil {
		return Value{}, fmt.Errorf("parsing failed: %w", err)
	}
	return Value{mant: int(mant)}, nil
}

func MustFromString(s string, base int) Value {
	v, err := FromString(s, base)
	if err != nil {
		panic(err)
	}
	return v
}

// Mant returns v's mantissa as is.
func (v Value) Mant() int {
	return v.mant
}

// Scale returns v's scale as is.
func (v Value) Scale() int {
	return v.scale
}

// IsZero returns true if the mantissa is zero, whatever the scale.
func (v Value) IsZero() bool {
	return v.mant == 0
}

// align brings both mantissas to a common resolution.
// The operand with the smaller scale is rescaled up to the larger scale,
// so precision is never lost, at the cost of mantissa growth.
func align(a, b Value) (ma, mb, scale int) {
	if b.scale > a.scale {
		return a.mant * mu.Pow10(b.scale-a.scale), b.mant, b.scale
	}
	return a.mant, b.mant * mu.Pow10(a.scale-b.scale), a.scale
}

// Add returns v + other. The result carries the larger of the two scales.
func (v Value) Add(other Value) Value {
	ma, mb, scale := align(v, other)
	return Value{mant: ma + mb, scale: scale}
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.Add(Value{mant: -other.mant, scale: other.scale})
}

// AddAssign sets v to v + other.
func (v *Value) AddAssign(other Value) {
	*v = v.Add(other)
}

// SubAssign sets v to v - other.
func (v *Value) SubAssign(other Value) {
	*v = v.Sub(other)
}

// Mul returns v * other: mantissas multiply, scales add.
func (v Value) Mul(other Value) Value {
	return Value{mant: v.mant * other.mant, scale: v.scale + other.scale}
}

// Div returns v / other: mantissas divide, scales subtract.
// The mantissa division truncates, so the quotient loses precision unless
// v's mantissa is an exact multiple of other's; callers needing exact
// results must pick a large enough scale up front.
// If other is zero, Div panics.
func (v Value) Div(other Value) Value {
	if other.mant == 0 {
		panic("division by zero")
	}
	return Value{mant: v.mant / other.mant, scale: v.scale - other.scale}
}

// Mod returns v - (v/other)*other, using this package's truncating Div.
func (v Value) Mod(other Value) Value {
	return v.Sub(v.Div(other).Mul(other))
}

// Eq returns true, if both values represent the same number,
// whatever their scales.
func (v Value) Eq(other Value) bool {
	if v == other {
		return true
	}
	ma, mb, _ := align(v, other)
	return ma == mb
}

// Cmp compares two values by the numbers they represent.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	ma, mb, _ := align(v, other)
	switch {
	case ma > mb:
		return 1
	case ma < mb:
		return -1
	default:
		return 0
	}
}

// Int64 converts the value to an int64, discarding fractional digits:
// {499, 2} yields 4. The conversion goes through float64, so mantissas
// above 2^53 lose precision.
func (v Value) Int64() int64 {
	return int64(float64(v.mant) * math.Pow10(-v.scale))
}

// Uint64 converts the value to a uint64, discarding fractional digits.
func (v Value) Uint64() uint64 {
	return uint64(float64(v.mant) * math.Pow10(-v.scale))
}

// Float32 returns the value as a float32, computed in 32-bit arithmetic.
func (v Value) Float32() float32 {
	return float32(v.mant) * float32(math.Pow10(-v.scale))
}

// Float64 returns the value as a float64.
func (v Value) Float64() float64 {
	return float64(v.mant) * math.Pow10(-v.scale)
}

// String returns a string representation of the value.
// With scale >= 1 the value is formatted through the Float32 conversion,
// so it carries a decimal point whenever it is not a whole number; the
// 32-bit arithmetic may leave rounding artifacts, e.g. {534, 2} prints as
// 5.3399997. With scale <= 0 the value is formatted through Int64 and
// never contains a point.
func (v Value) String() string {
	if v.scale >= 1 {
		return strconv.FormatFloat(float64(v.Float32()), 'f', -1, 32)
	}
	return strconv.FormatInt(v.Int64(), 10)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.mant, v.scale)
}

// Sum adds up all the values. The running total is seeded with One, not
// Zero, so the result is larger by one than the plain sum of the
// arguments: Sum() returns 1, and Sum(v) returns v+1. Callers that need
// the plain sum have to subtract One from the result.
func Sum(values ...Value) Value {
	total := One()
	for _, v := range values {
		total.AddAssign(v)
	}
	return total
}
