package matrix

import (
	"sort"
	"strings"
)

// Capability is a set of conversion directions granted to a kind.
type Capability int

const (
	CapIntoSize       Capability = 1 << iota // T -> uint
	CapIntoSignedSize                        // T -> int
	CapFromSize                              // uint -> T
	CapFromSignedSize                        // int -> T

	CapAll  Capability = (1 << iota) - 1 // all capabilities combined
	CapNone Capability = 0               // no capabilities granted
)

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapIntoSize, "into_size"},
	{CapIntoSignedSize, "into_signed_size"},
	{CapFromSize, "from_size"},
	{CapFromSignedSize, "from_signed_size"},
}

// Capabilities lists the single-direction capabilities in table order.
func Capabilities() []Capability {
	res := make([]Capability, 0, len(capabilityNames))
	for _, c := range capabilityNames {
		res = append(res, c.cap)
	}

	return res
}

func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// String joins the table names of all set flags with "|".
func (c Capability) String() string {
	if c == CapNone {
		return "none"
	}

	var parts []string
	for _, n := range capabilityNames {
		if c&n.cap != 0 {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "|")
}

// Width is a target pointer width in bits.
type Width int

const (
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Widths returns the supported pointer widths in ascending order.
func Widths() []Width {
	return []Width{Width16, Width32, Width64}
}

func (w Width) Valid() bool {
	switch w {
	default:
		return false
	case Width16, Width32, Width64:
		return true
	}
}

// Assignment maps each kind to the capabilities it holds under one width.
// Kinds without any capability are absent.
type Assignment map[Kind]Capability

// Kinds returns the kinds holding all of want, in Kinds() order.
func (a Assignment) Kinds(want Capability) []Kind {
	var res []Kind
	for k, c := range a {
		if c.Has(want) {
			res = append(res, k)
		}
	}

	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })

	return res
}

// Lossless reports whether converting kind k in direction c is exact under
// pointer width w. c must be a single capability.
func Lossless(k Kind, c Capability, w Width) bool {
	bits, width := k.Bits(), int(w)

	switch c {
	default:
		return false
	case CapIntoSize:
		return !k.IsSigned() && bits <= width
	case CapIntoSignedSize:
		if k.IsSigned() {
			return bits <= width
		}

		return bits < width // one bit goes to the sign
	case CapFromSize:
		if k.IsSigned() {
			return bits > width
		}

		return bits >= width
	case CapFromSignedSize:
		return k.IsSigned() && bits >= width
	}
}

// Derive computes the lossless assignment for w.
func Derive(w Width) Assignment {
	res := Assignment{}

	for _, k := range Kinds() {
		for _, c := range Capabilities() {
			if Lossless(k, c, w) {
				res[k] |= c
			}
		}
	}

	return res
}
