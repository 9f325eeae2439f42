package packets

// Uint8Size contains the amount of bytes of an inserted uint8 value.
const Uint8Size = 1

// InsertUint8 appends the given uint8 value to the underlying byte sequence.
func (b *Builder) InsertUint8(value uint8) *Builder {
	b.bytes = append(b.bytes, value)

	return b
}
