package packets

import (
	"encoding/binary"
	"fmt"

	"github.com/Evolution-X/packages-modules-Bluetooth/byteutils"
	"github.com/Evolution-X/packages-modules-Bluetooth/hwaddr"
)

// ByteOrder selects the byte order a Builder uses when decomposing multi-byte
// integers into bytes. It is fixed for the lifetime of a Builder instance and
// never varies per call.
type ByteOrder byte

const (
	// LittleEndian writes the least significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian writes the most significant byte first.
	BigEndian
)

// String returns a human readable representation of the ByteOrder.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", byte(o))
	}
}

// native returns the encoding/binary implementation of the ByteOrder.
func (o ByteOrder) native() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Builder appends the byte representation of primitive values to a growable
// byte sequence. It only ever appends and never reads, removes or reorders
// bytes that are already present.
type Builder struct {
	order ByteOrder
	bytes []byte
}

// NewBuilder creates a new Builder using the given byte order. If a target
// byte sequence is passed, the Builder continues it and all insertions land
// after the bytes already present.
func NewBuilder(order ByteOrder, target ...[]byte) *Builder {
	switch argsCount := len(target); argsCount {
	case 0:
		return &Builder{order: order}
	case 1:
		return &Builder{order: order, bytes: target[0]}
	default:
		panic(fmt.Errorf("illegal argument count %d in packets.NewBuilder(...)", argsCount))
	}
}

// Order returns the byte order the Builder was created with.
func (b *Builder) Order() ByteOrder {
	return b.order
}

// Written returns the amount of bytes in the underlying byte sequence.
func (b *Builder) Written() int {
	return len(b.bytes)
}

// Bytes returns the underlying byte sequence (optionally as a copy).
func (b *Builder) Bytes(clone ...bool) []byte {
	if len(clone) >= 1 && clone[0] {
		return byteutils.Concat(b.bytes)
	}

	return b.bytes
}

// InsertBytes appends the given bytes to the underlying byte sequence.
// It returns the same Builder so calls can be chained.
func (b *Builder) InsertBytes(bytes []byte) *Builder {
	if bytes == nil {
		return b
	}

	b.bytes = append(b.bytes, bytes...)

	return b
}

// InsertAddress appends the bytes of the given hardware address in their
// stored order. Each byte goes through the width-1 integer path, so the
// output is independent of the Builder's byte order.
func (b *Builder) InsertAddress(addr hwaddr.Address) *Builder {
	for _, addressByte := range addr {
		b.InsertUint8(addressByte)
	}

	return b
}

// grow extends the underlying byte sequence by length bytes and returns the
// slice covering the newly appended region.
func (b *Builder) grow(length int) []byte {
	offset := len(b.bytes)
	b.bytes = append(b.bytes, make([]byte, length)...)

	return b.bytes[offset:]
}
