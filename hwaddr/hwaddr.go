package hwaddr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Size contains the amount of bytes of a hardware address.
const Size = 6

var (
	// ErrInvalidLength gets returned when raw bytes of the wrong length are given.
	ErrInvalidLength = errors.New("invalid hardware address length")
	// ErrInvalidAddress gets returned when a textual address can not be parsed.
	ErrInvalidAddress = errors.New("invalid hardware address")
)

// Address is a fixed-length hardware (link-layer) address. Its bytes are
// stored in the order they appear on the wire.
type Address [Size]byte

// FromBytes creates an Address from exactly Size raw bytes.
func FromBytes(bytes []byte) (Address, error) {
	var addr Address
	if len(bytes) != Size {
		return addr, errors.Wrapf(ErrInvalidLength, "need %d bytes but got %d", Size, len(bytes))
	}
	copy(addr[:], bytes)

	return addr, nil
}

// Parse parses an address in the colon separated form "01:23:45:67:89:ab".
func Parse(s string) (Address, error) {
	var addr Address
	octets := strings.Split(s, ":")
	if len(octets) != Size {
		return addr, errors.Wrapf(ErrInvalidAddress, "need %d octets but got %d", Size, len(octets))
	}
	for i, octet := range octets {
		if len(octet) != 2 {
			return addr, errors.Wrapf(ErrInvalidAddress, "octet %q must be 2 hex chars", octet)
		}
		value, err := strconv.ParseUint(octet, 16, 8)
		if err != nil {
			return addr, errors.Wrapf(ErrInvalidAddress, "octet %q is not hexadecimal", octet)
		}
		addr[i] = byte(value)
	}

	return addr, nil
}

// Bytes returns the byte slice representation of the Address.
func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the colon separated hex representation of the Address.
func (a Address) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}
