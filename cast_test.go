package sizecast_test

import (
	"math"
	"math/bits"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecast"
)

func TestPointerWidth(t *testing.T) {
	t.Parallel()

	assert.Contains(t, []int{16, 32, 64}, sizecast.PointerWidth)
	assert.Equal(t, bits.UintSize, sizecast.PointerWidth)
	assert.Equal(t, strconv.IntSize, sizecast.PointerWidth)
}

func TestSamples(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, []int16{math.MinInt16, math.MaxInt16, 0, 1, 255, 256, -255, -256}, samples[int16]())
	assert.ElementsMatch(t, []uint8{0, math.MaxUint8, 0, 1, 255}, samples[uint8]())
	assert.ElementsMatch(t, []int8{math.MinInt8, math.MaxInt8, 0, 1}, samples[int8]())
}

// The 8 and 16-bit kinds convert into the size types on every target.
func TestSmallKindsExhaustive(t *testing.T) {
	t.Parallel()

	for v := 0; v <= math.MaxUint8; v++ {
		require.Equal(t, uint(v), sizecast.U8(v).IntoSize())
		require.Equal(t, uint(v), sizecast.Uint8ToSize(uint8(v)))
		require.Equal(t, v, sizecast.U8(v).IntoSignedSize())
		require.Equal(t, v, sizecast.Uint8ToSignedSize(uint8(v)))
	}

	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		require.Equal(t, v, sizecast.I8(v).IntoSignedSize())
		require.Equal(t, v, sizecast.Int8ToSignedSize(int8(v)))
	}

	for v := 0; v <= math.MaxUint16; v++ {
		require.Equal(t, uint(v), sizecast.U16(v).IntoSize())
		require.Equal(t, uint(v), sizecast.Uint16ToSize(uint16(v)))
	}

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		require.Equal(t, v, sizecast.I16(v).IntoSignedSize())
		require.Equal(t, v, sizecast.Int16ToSignedSize(int16(v)))
	}
}

func TestCommonBoundaries(t *testing.T) {
	t.Parallel()

	checkIntoSize[sizecast.U8](t)
	checkIntoSize[sizecast.U16](t)
	checkIntoSignedSize[sizecast.U8](t)
	checkIntoSignedSize[sizecast.I8](t)
	checkIntoSignedSize[sizecast.I16](t)
	checkFromSize[sizecast.U64](t)
	checkFromSignedSize[sizecast.I64](t)
}

func TestInt128FromSize(t *testing.T) {
	t.Parallel()

	for _, u := range samples[uint]() {
		got := sizecast.FromSize[sizecast.U128](u)
		assert.True(t, got.IsUint64())
		assert.Equal(t, uint64(u), got.Uint64())

		signed := sizecast.FromSize[sizecast.I128](u)
		assert.Equal(t, int64(0), signed.Hi)
		assert.Equal(t, uint64(u), signed.Lo)
		assert.GreaterOrEqual(t, signed.Sign(), 0)
	}

	for _, i := range samples[int]() {
		got := sizecast.FromSignedSize[sizecast.I128](i)
		require.True(t, got.IsInt64())
		assert.Equal(t, int64(i), got.Int64())
		assert.Equal(t, sizecast.I128From64(int64(i)), got)
	}

	assert.Equal(t, sizecast.U128From64(uint64(math.MaxUint)), sizecast.FromSize[sizecast.U128](math.MaxUint))
}
