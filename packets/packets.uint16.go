package packets

// Uint16Size contains the amount of bytes of an inserted uint16 value.
const Uint16Size = 2

// InsertUint16 appends the given uint16 value in the Builder's byte order.
func (b *Builder) InsertUint16(value uint16) *Builder {
	b.order.native().PutUint16(b.grow(Uint16Size), value)

	return b
}
