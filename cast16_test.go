//go:build avr

package sizecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecast"
)

func TestPtr16Scenario(t *testing.T) {
	require.Equal(t, 16, sizecast.PointerWidth)

	assert.Equal(t, uint(math.MaxUint16), sizecast.U16(math.MaxUint16).IntoSize())
	assert.Equal(t, sizecast.U32(math.MaxUint16), sizecast.FromSize[sizecast.U32](math.MaxUint))
	assert.Equal(t, sizecast.I32(math.MaxUint16), sizecast.FromSize[sizecast.I32](math.MaxUint))
	assert.Equal(t, sizecast.I32(math.MinInt16), sizecast.FromSignedSize[sizecast.I32](math.MinInt))
}

func TestPtr16Boundaries(t *testing.T) {
	checkIdentity[sizecast.U16](t)
	checkSignedIdentity[sizecast.I16](t)
	checkFromSize[sizecast.U32](t)
	checkFromSize[sizecast.I32](t)
	checkFromSignedSize[sizecast.I16](t)
	checkFromSignedSize[sizecast.I32](t)
}
