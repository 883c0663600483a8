// Package samples generates deterministic, varied sample values for
// previews and test fixtures. Providers never touch live models; calling
// one twice yields the same sequence.
package samples

import "math"

// Provider produces the canned sample values for a type.
type Provider[T any] func() []T

// Bool returns the boolean samples.
func Bool() []bool { return []bool{true, false} }

// Signed integer samples span a negative value, zero, and a positive
// value scaled by the bit width so different widths sample differently.

// Int8s returns the int8 samples.
func Int8s() []int8 { return []int8{math.MinInt8 / 8, 0, math.MaxInt8 / 8} }

// Int16s returns the int16 samples.
func Int16s() []int16 { return []int16{math.MinInt16 / 16, 0, math.MaxInt16 / 16} }

// Int32s returns the int32 samples.
func Int32s() []int32 { return []int32{math.MinInt32 / 32, 0, math.MaxInt32 / 32} }

// Int64s returns the int64 samples.
func Int64s() []int64 { return []int64{math.MinInt64 / 64, 0, math.MaxInt64 / 64} }

// Uint8s returns the uint8 samples.
func Uint8s() []uint8 { return []uint8{0, math.MaxUint8 / 2, math.MaxUint8 / 8} }

// Uint16s returns the uint16 samples.
func Uint16s() []uint16 { return []uint16{0, math.MaxUint16 / 2, math.MaxUint16 / 16} }

// Uint32s returns the uint32 samples.
func Uint32s() []uint32 { return []uint32{0, math.MaxUint32 / 2, math.MaxUint32 / 32} }

// Uint64s returns the uint64 samples.
func Uint64s() []uint64 { return []uint64{0, math.MaxUint64 / 2, math.MaxUint64 / 64} }

// Float32s returns the float32 samples.
func Float32s() []float32 { return []float32{-math.E, 0, math.Pi} }

// Float64s returns the float64 samples.
func Float64s() []float64 { return []float64{-math.E, 0, math.Pi} }

// ShortString is the short string sample.
const ShortString = "hello"

// LongString exercises consumers that must accommodate long text.
const LongString = "super long string that tests that UI is smart enough to make accommodations for such long strings like this"

// Strings returns the string samples.
func Strings() []string { return []string{ShortString, LongString, ""} }

// Optional returns samples for an optional value: the first sample of the
// element type followed by absent. With no element samples, only absent.
func Optional[T any](elems []T) []*T {
	if len(elems) == 0 {
		return []*T{nil}
	}
	first := elems[0]
	return []*T{&first, nil}
}

// Cross2 combines two sample sets into records, varying the last factor
// fastest. The output order is deterministic.
func Cross2[A, B, T any](as []A, bs []B, combine func(A, B) T) []T {
	out := make([]T, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, combine(a, b))
		}
	}
	return out
}

// Cross3 combines three sample sets into records, varying the last factor
// fastest. The output order is deterministic.
func Cross3[A, B, C, T any](as []A, bs []B, cs []C, combine func(A, B, C) T) []T {
	out := make([]T, 0, len(as)*len(bs)*len(cs))
	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				out = append(out, combine(a, b, c))
			}
		}
	}
	return out
}

// Take returns the first n samples, or all of them if fewer exist.
func Take[T any](values []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(values) {
		n = len(values)
	}
	out := make([]T, n)
	copy(out, values[:n])
	return out
}
