package sizecast_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"

	"sizecast"
)

// limits returns the smallest and largest value of T.
func limits[T constraints.Integer]() (lo, hi T) {
	bits := unsafe.Sizeof(lo) * 8

	if ^T(0) < 0 {
		hi = T(uint64(1)<<(bits-1) - 1)
		lo = -hi - 1

		return lo, hi
	}

	return 0, ^T(0)
}

// samples returns the boundary values of T: its extremes and whichever of
// 0, 1, 255, 256, -255 and -256 it can represent.
func samples[T constraints.Integer]() []T {
	lo, hi := limits[T]()
	res := []T{lo, hi}

	for _, c := range []int64{0, 1, 255, 256, -255, -256} {
		v := T(c)
		if int64(v) == c && (v < 0) == (c < 0) {
			res = append(res, v)
		}
	}

	return res
}

func checkIntoSize[T interface {
	constraints.Unsigned
	sizecast.IntoSizer
}](t *testing.T) {
	t.Helper()

	for _, v := range samples[T]() {
		assert.Equal(t, uint64(v), uint64(v.IntoSize()), "%T(%d)", v, v)
		assert.Equal(t, v.IntoSize(), sizecast.IntoSize(v))
	}
}

func checkIntoSignedSize[T interface {
	constraints.Integer
	sizecast.IntoSignedSizer
}](t *testing.T) {
	t.Helper()

	for _, v := range samples[T]() {
		assert.Equal(t, int64(v), int64(v.IntoSignedSize()), "%T(%d)", v, v)
		assert.Equal(t, v.IntoSignedSize(), sizecast.IntoSignedSize(v))
	}
}

func checkFromSize[T interface {
	constraints.Integer
	sizecast.FromSizer[T]
}](t *testing.T) {
	t.Helper()

	for _, u := range samples[uint]() {
		got := sizecast.FromSize[T](u)
		assert.Equal(t, uint64(u), uint64(got), "%T from %d", got, u)
	}
}

func checkFromSignedSize[T interface {
	constraints.Signed
	sizecast.FromSignedSizer[T]
}](t *testing.T) {
	t.Helper()

	for _, i := range samples[int]() {
		got := sizecast.FromSignedSize[T](i)
		assert.Equal(t, int64(i), int64(got), "%T from %d", got, i)
	}
}

// checkIdentity verifies a kind as wide as uint converts both ways without
// changing the bit pattern.
func checkIdentity[T interface {
	constraints.Unsigned
	sizecast.IntoSizer
	sizecast.FromSizer[T]
}](t *testing.T) {
	t.Helper()

	for _, u := range samples[uint]() {
		assert.Equal(t, u, sizecast.FromSize[T](u).IntoSize())
	}

	_, hi := limits[T]()
	assert.Equal(t, uint(math.MaxUint), hi.IntoSize())
}

func checkSignedIdentity[T interface {
	constraints.Signed
	sizecast.IntoSignedSizer
	sizecast.FromSignedSizer[T]
}](t *testing.T) {
	t.Helper()

	for _, i := range samples[int]() {
		assert.Equal(t, i, sizecast.FromSignedSize[T](i).IntoSignedSize())
	}

	lo, hi := limits[T]()
	assert.Equal(t, math.MinInt, lo.IntoSignedSize())
	assert.Equal(t, math.MaxInt, hi.IntoSignedSize())
}
