package matrix

import (
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is a fixed-width integer type that may receive size conversions.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindU8
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Kinds returns every valid kind, narrowest first, unsigned before signed.
func Kinds() []Kind {
	res := make([]Kind, 0, KindTotal-1)
	for k := KindU8; int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

func (k Kind) Valid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	}
}

func (k Kind) Bits() int {
	switch k {
	default:
		panic("bits requested for invalid kind: " + k.String())
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32:
		return 32
	case KindU64, KindI64:
		return 64
	case KindU128, KindI128:
		return 128
	}
}

// GoName is the name of the sizecast type for k, e.g. "U16".
func (k Kind) GoName() string {
	return strings.TrimPrefix(k.String(), "Kind")
}

// Builtin is the predeclared Go type underlying k, or "" for 128-bit kinds.
func (k Kind) Builtin() string {
	if k.Bits() > 64 {
		return ""
	}

	if k.IsSigned() {
		return "int" + strconv.Itoa(k.Bits())
	}

	return "uint" + strconv.Itoa(k.Bits())
}

// ParseKind accepts the table spelling of a kind ("u16", "I128").
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.GoName(), s) {
			return k, true
		}
	}

	return 0, false
}
