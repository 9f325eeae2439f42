package packets

// Uint64Size contains the amount of bytes of an inserted uint64 value.
const Uint64Size = 8

// InsertUint64 appends the given uint64 value in the Builder's byte order.
func (b *Builder) InsertUint64(value uint64) *Builder {
	b.order.native().PutUint64(b.grow(Uint64Size), value)

	return b
}
