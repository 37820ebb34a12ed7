package sizecast

// IntoSizer is implemented by fixed-width integers that fit in a uint on
// the build target.
type IntoSizer interface {
	IntoSize() uint
}

// IntoSignedSizer is implemented by fixed-width integers that fit in an int
// on the build target.
type IntoSignedSizer interface {
	IntoSignedSize() int
}

// FromSizer is implemented by fixed-width integers able to hold any uint on
// the build target. The receiver is ignored.
type FromSizer[T any] interface {
	FromSize(u uint) T
}

// FromSignedSizer is implemented by fixed-width integers able to hold any int
// on the build target. The receiver is ignored.
type FromSignedSizer[T any] interface {
	FromSignedSize(i int) T
}

// IntoSize converts v to a uint.
func IntoSize[T IntoSizer](v T) uint {
	return v.IntoSize()
}

// IntoSignedSize converts v to an int.
func IntoSignedSize[T IntoSignedSizer](v T) int {
	return v.IntoSignedSize()
}

// FromSize converts u to T. It only compiles for types wide enough to hold
// every uint on the build target.
func FromSize[T FromSizer[T]](u uint) T {
	var zero T
	return zero.FromSize(u)
}

// FromSignedSize converts i to T. It only compiles for types wide enough to
// hold every int on the build target.
func FromSignedSize[T FromSignedSizer[T]](i int) T {
	var zero T
	return zero.FromSignedSize(i)
}
