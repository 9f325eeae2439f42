package packets

// Uint32Size contains the amount of bytes of an inserted uint32 value.
const Uint32Size = 4

// InsertUint32 appends the given uint32 value in the Builder's byte order.
func (b *Builder) InsertUint32(value uint32) *Builder {
	b.order.native().PutUint32(b.grow(Uint32Size), value)

	return b
}
