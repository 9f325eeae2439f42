package packets

// Int8Size contains the amount of bytes of an inserted int8 value.
const Int8Size = 1

// InsertInt8 appends the given int8 value to the underlying byte sequence.
func (b *Builder) InsertInt8(value int8) *Builder {
	return b.InsertUint8(uint8(value))
}
