package packets

// Int16Size contains the amount of bytes of an inserted int16 value.
const Int16Size = 2

// InsertInt16 appends the given int16 value in the Builder's byte order.
func (b *Builder) InsertInt16(value int16) *Builder {
	return b.InsertUint16(uint16(value))
}
