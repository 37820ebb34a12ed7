package sizecast

import "math"

// U128 is an unsigned 128-bit integer. The zero value is 0.
type U128 struct {
	Hi, Lo uint64
}

// I128 is a two's complement signed 128-bit integer. The zero value is 0.
type I128 struct {
	Hi int64
	Lo uint64
}

var (
	// MaxU128 is the largest U128.
	MaxU128 = U128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	// MaxI128 is the largest I128.
	MaxI128 = I128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	// MinI128 is the smallest I128.
	MinI128 = I128{Hi: math.MinInt64, Lo: 0}
)

// U128From64 zero-extends v.
func U128From64(v uint64) U128 {
	return U128{Lo: v}
}

// I128From64 sign-extends v.
func I128From64(v int64) I128 {
	return I128{Hi: v >> 63, Lo: uint64(v)}
}

// IsUint64 reports whether u fits in a uint64.
func (u U128) IsUint64() bool {
	return u.Hi == 0
}

// Uint64 returns the low 64 bits of u.
func (u U128) Uint64() uint64 {
	return u.Lo
}

// IsInt64 reports whether i fits in an int64.
func (i I128) IsInt64() bool {
	return i.Hi == int64(i.Lo)>>63
}

// Int64 returns the low 64 bits of i as an int64.
func (i I128) Int64() int64 {
	return int64(i.Lo)
}

// Sign returns -1, 0 or +1.
func (i I128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}
