package packets

// PacketBuilder is implemented by concrete packet types that know how to
// serialize themselves onto a Builder. Implementations call the insert
// primitives in the exact field order their wire format requires.
//
// Packet types which need fragmentation should define a function like
//
//	Fragment(maxSize int) []PacketBuilder
//
// producing a sequence of smaller builders; no fragmentation policy is
// imposed here.
type PacketBuilder interface {
	// Serialize appends the packet's wire representation to the target Builder.
	Serialize(target *Builder)
	// Size returns the total amount of bytes Serialize will append.
	Size() int
}

// Serialize builds the given packet into a fresh byte sequence using the
// given byte order. The target sequence is pre-sized from the packet's
// reported Size, so a well-behaved packet causes no further allocations
// while serializing.
func Serialize(packet PacketBuilder, order ByteOrder) []byte {
	target := NewBuilder(order, make([]byte, 0, packet.Size()))
	packet.Serialize(target)

	return target.Bytes()
}
