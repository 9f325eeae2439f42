package packets

// Int32Size contains the amount of bytes of an inserted int32 value.
const Int32Size = 4

// InsertInt32 appends the given int32 value in the Builder's byte order.
func (b *Builder) InsertInt32(value int32) *Builder {
	return b.InsertUint32(uint32(value))
}
