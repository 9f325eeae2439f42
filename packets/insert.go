package packets

import (
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/Evolution-X/packages-modules-Bluetooth/constraints"
)

// InsertInteger appends the byte representation of the given fixed-width
// integer value to the Builder. An integer of width W produces exactly W
// bytes, decomposed according to the Builder's byte order, regardless of the
// value's sign or magnitude. Types without a statically known width (int,
// uint, uintptr) are rejected by the constraint at compile time.
func InsertInteger[T constraints.FixedWidthInteger](b *Builder, value T) *Builder {
	width := int(unsafe.Sizeof(value))
	for i := 0; i < width; i++ {
		shift := i
		if b.order == BigEndian {
			shift = width - 1 - i
		}
		b.bytes = append(b.bytes, byte(uint64(value)>>(shift*8)))
	}

	return b
}

// InsertIntegerSlice appends each element of the given slice in slice order
// by repeated application of InsertInteger, producing width*len(values)
// bytes. An empty slice appends nothing.
func InsertIntegerSlice[T constraints.FixedWidthInteger](b *Builder, values []T) *Builder {
	for _, value := range values {
		InsertInteger(b, value)
	}

	return b
}

// InsertObject serializes the given object and appends its bytes to the
// Builder.
func InsertObject[T constraints.Serializable](b *Builder, object T) (*Builder, error) {
	objectBytes, err := object.Bytes()
	if err != nil {
		return b, errors.Wrap(err, "failed to serialize object")
	}

	return b.InsertBytes(objectBytes), nil
}
