//go:build (amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || (wasm && !tinygo)) && !avr

package sizecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecast"
)

func TestPtr64Scenario(t *testing.T) {
	t.Parallel()

	require.Equal(t, 64, sizecast.PointerWidth)

	assert.Equal(t, uint(1), sizecast.U16(1).IntoSize())
	assert.Equal(t, sizecast.U64(math.MaxUint64), sizecast.FromSize[sizecast.U64](math.MaxUint))
	assert.Equal(t, -256, sizecast.I32(-256).IntoSignedSize())
	assert.Equal(t, sizecast.I128From64(math.MinInt64), sizecast.FromSignedSize[sizecast.I128](math.MinInt))
	assert.Equal(t, sizecast.I128{Hi: -1, Lo: 1 << 63}, sizecast.FromSignedSize[sizecast.I128](math.MinInt))
}

func TestPtr64Boundaries(t *testing.T) {
	t.Parallel()

	checkIntoSize[sizecast.U32](t)
	checkIntoSize[sizecast.U64](t)
	checkIntoSignedSize[sizecast.U16](t)
	checkIntoSignedSize[sizecast.U32](t)
	checkIntoSignedSize[sizecast.I32](t)
	checkIntoSignedSize[sizecast.I64](t)
	checkFromSignedSize[sizecast.I64](t)
}

func TestPtr64Identity(t *testing.T) {
	t.Parallel()

	checkIdentity[sizecast.U64](t)
	checkSignedIdentity[sizecast.I64](t)

	assert.Equal(t, uint(math.MaxUint), sizecast.U64(math.MaxUint64).IntoSize())
	assert.Equal(t, math.MaxInt, sizecast.I64(math.MaxInt64).IntoSignedSize())
	assert.Equal(t, math.MinInt, sizecast.I64(math.MinInt64).IntoSignedSize())
}

func TestPtr64Builtins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(math.MaxUint), sizecast.Uint64ToSize(math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), sizecast.SizeToUint64(math.MaxUint))
	assert.Equal(t, math.MinInt, sizecast.Int64ToSignedSize(math.MinInt64))
	assert.Equal(t, int64(math.MinInt64), sizecast.SignedSizeToInt64(math.MinInt))
	assert.Equal(t, math.MaxUint32, sizecast.Uint32ToSignedSize(math.MaxUint32))
	assert.Equal(t, math.MinInt32, sizecast.Int32ToSignedSize(math.MinInt32))
}

func TestPtr64Uint16IntoSignedExhaustive(t *testing.T) {
	t.Parallel()

	for v := 0; v <= math.MaxUint16; v++ {
		require.Equal(t, v, sizecast.U16(v).IntoSignedSize())
		require.Equal(t, v, sizecast.Uint16ToSignedSize(uint16(v)))
	}
}
