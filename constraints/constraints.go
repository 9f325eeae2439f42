package constraints

// FixedWidthSigned is a constraint that permits any signed integer type whose
// byte width is statically known. Plain int is excluded because its width is
// platform-dependent.
type FixedWidthSigned interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// FixedWidthUnsigned is a constraint that permits any unsigned integer type
// whose byte width is statically known. Plain uint and uintptr are excluded
// because their width is platform-dependent.
type FixedWidthUnsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FixedWidthInteger is a constraint that permits any integer type of a
// statically known byte width (1, 2, 4 or 8 bytes).
type FixedWidthInteger interface {
	FixedWidthSigned | FixedWidthUnsigned
}
