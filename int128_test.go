package sizecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"sizecast"
)

func TestI128From64(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want sizecast.I128
	}{
		{0, sizecast.I128{}},
		{1, sizecast.I128{Lo: 1}},
		{-1, sizecast.I128{Hi: -1, Lo: math.MaxUint64}},
		{-256, sizecast.I128{Hi: -1, Lo: math.MaxUint64 - 255}},
		{math.MaxInt64, sizecast.I128{Lo: math.MaxInt64}},
		{math.MinInt64, sizecast.I128{Hi: -1, Lo: 1 << 63}},
	}

	for _, tc := range cases {
		got := sizecast.I128From64(tc.in)
		assert.Equal(t, tc.want, got, "%d", tc.in)
		assert.True(t, got.IsInt64())
		assert.Equal(t, tc.in, got.Int64())
	}
}

func TestInt128Extremes(t *testing.T) {
	t.Parallel()

	assert.False(t, sizecast.MaxU128.IsUint64())
	assert.False(t, sizecast.MaxI128.IsInt64())
	assert.False(t, sizecast.MinI128.IsInt64())
	assert.Equal(t, 1, sizecast.MaxI128.Sign())
	assert.Equal(t, -1, sizecast.MinI128.Sign())
	assert.Equal(t, 0, sizecast.I128{}.Sign())

	// 2^64 has a zero low word but is not an int64.
	assert.False(t, sizecast.I128{Hi: 1}.IsInt64())
	assert.True(t, sizecast.U128From64(math.MaxUint64).IsUint64())
}
