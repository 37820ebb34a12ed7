// Package sizecast converts between the size types (uint and int) and
// fixed-width integers without ever losing information.
//
// Which conversions exist depends on the pointer width of the build target.
// A conversion that could truncate on the target is simply not defined, so
// asking for it is a compile error rather than a runtime check:
//
//	n := sizecast.U32(count).IntoSize()        // uint, any target
//	off := sizecast.FromSize[sizecast.U64](n)  // U64, 32 and 64-bit targets
//	big := sizecast.FromSignedSize[sizecast.I128](-1)
//
// Capabilities per pointer width:
//
//	width  IntoSize       IntoSignedSize           FromSize                    FromSignedSize
//	16     U8 U16         U8 I8 I16                U16 U32 I32 U64 I64 U128    I16 I32 I64 I128
//	                                               I128
//	32     U8 U16 U32     U8 I8 U16 I16 I32        U32 U64 I64 U128 I128       I32 I64 I128
//	64     U8 .. U64      U8 I8 U16 I16 U32 I32    U64 U128 I128               I64 I128
//	                      I64
//
// Every per-width file also asserts at compile time that uint, int and
// uintptr are exactly PointerWidth bits wide. Building for a target whose
// pointer width is not 16, 32 or 64 bits fails.
//
// The 16-bit table is selected by TinyGo's avr tag. TinyGo's wasm targets
// report GOARCH=wasm with 32-bit pointers and get the 32-bit table through
// the tinygo tag.
//
// The per-width files are generated from matrix/matrix.yaml by
// cmd/sizecast-gen.
package sizecast

//go:generate go run ./cmd/sizecast-gen -table matrix/matrix.yaml -out .
