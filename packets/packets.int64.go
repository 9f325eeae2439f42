package packets

// Int64Size contains the amount of bytes of an inserted int64 value.
const Int64Size = 8

// InsertInt64 appends the given int64 value in the Builder's byte order.
func (b *Builder) InsertInt64(value int64) *Builder {
	return b.InsertUint64(uint64(value))
}
