package sizecast

// Fixed-width integers carrying the conversion methods. They convert freely
// to and from the predeclared type of the same name and width.
type (
	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	U64 uint64
	I64 int64
)
