package packets_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Evolution-X/packages-modules-Bluetooth/hwaddr"
	"github.com/Evolution-X/packages-modules-Bluetooth/packets"
)

func TestBuilder_InsertUint16(t *testing.T) {
	le := packets.NewBuilder(packets.LittleEndian).InsertUint16(0x1234)
	require.Equal(t, []byte{0x34, 0x12}, le.Bytes())

	be := packets.NewBuilder(packets.BigEndian).InsertUint16(0x1234)
	require.Equal(t, []byte{0x12, 0x34}, be.Bytes())
}

func TestBuilder_InsertUint32(t *testing.T) {
	le := packets.NewBuilder(packets.LittleEndian).InsertUint32(0xdeadbeef)
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, le.Bytes())

	be := packets.NewBuilder(packets.BigEndian).InsertUint32(0xdeadbeef)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, be.Bytes())
}

func TestBuilder_InsertUint64(t *testing.T) {
	b := packets.NewBuilder(packets.BigEndian).InsertUint64(0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, b.Bytes())
	require.Equal(t, packets.Uint64Size, b.Written())
}

func nativeByteOrder(order packets.ByteOrder) binary.ByteOrder {
	if order == packets.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func TestBuilder_RoundTrip(t *testing.T) {
	for _, order := range []packets.ByteOrder{packets.LittleEndian, packets.BigEndian} {
		for _, value := range []uint8{0, 1, math.MaxUint8} {
			builtBytes := packets.NewBuilder(order).InsertUint8(value).Bytes()
			require.Len(t, builtBytes, packets.Uint8Size)
			require.Equal(t, value, builtBytes[0], "order %s", order)
		}

		for _, value := range []uint16{0, 0x1234, math.MaxUint16} {
			builtBytes := packets.NewBuilder(order).InsertUint16(value).Bytes()
			require.Len(t, builtBytes, packets.Uint16Size)
			require.Equal(t, value, nativeByteOrder(order).Uint16(builtBytes), "order %s", order)
		}

		for _, value := range []uint32{0, 0xdeadbeef, math.MaxUint32} {
			builtBytes := packets.NewBuilder(order).InsertUint32(value).Bytes()
			require.Len(t, builtBytes, packets.Uint32Size)
			require.Equal(t, value, nativeByteOrder(order).Uint32(builtBytes), "order %s", order)
		}

		for _, value := range []uint64{0, 0x0102030405060708, math.MaxUint64} {
			builtBytes := packets.NewBuilder(order).InsertUint64(value).Bytes()
			require.Len(t, builtBytes, packets.Uint64Size)
			require.Equal(t, value, nativeByteOrder(order).Uint64(builtBytes), "order %s", order)
		}
	}
}

func TestBuilder_ContinuesTarget(t *testing.T) {
	target := []byte{0xde, 0xad}

	b := packets.NewBuilder(packets.LittleEndian, target).InsertUint8(0xbe).InsertUint8(0xef)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b.Bytes())
}

func TestBuilder_InsertAddress(t *testing.T) {
	addr, err := hwaddr.FromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	require.NoError(t, err)

	// address bytes keep their stored order for both byte orders
	for _, order := range []packets.ByteOrder{packets.LittleEndian, packets.BigEndian} {
		b := packets.NewBuilder(order, []byte{0xff}).InsertAddress(addr)
		require.Equal(t, []byte{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, b.Bytes())
	}
}

func TestBuilder_InsertBytes(t *testing.T) {
	b := packets.NewBuilder(packets.BigEndian).InsertBytes([]byte{1, 2, 3}).InsertBytes(nil)
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
}

func TestBuilder_BytesClone(t *testing.T) {
	b := packets.NewBuilder(packets.LittleEndian).InsertUint8(42)

	clone := b.Bytes(true)
	b.InsertUint8(43)

	require.Equal(t, []byte{42}, clone)
	require.Equal(t, []byte{42, 43}, b.Bytes())
}

func TestBuilder_Order(t *testing.T) {
	require.Equal(t, packets.LittleEndian, packets.NewBuilder(packets.LittleEndian).Order())
	require.Equal(t, packets.BigEndian, packets.NewBuilder(packets.BigEndian).Order())
}

func TestByteOrder_String(t *testing.T) {
	require.Equal(t, "LittleEndian", packets.LittleEndian.String())
	require.Equal(t, "BigEndian", packets.BigEndian.String())
}
