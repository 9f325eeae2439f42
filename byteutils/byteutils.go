package byteutils

// Concat concatenates the byte slices into a new byte slice.
func Concat(byteSlices ...[]byte) (result []byte) {
	// sanitize parameters
	if len(byteSlices) == 0 {
		panic("calls to Concat require at least one argument")
	}

	// concat byte slices
	for _, byteSlice := range byteSlices {
		result = append(result, byteSlice...)
	}

	return
}

// Reverse returns a new byte slice containing the bytes of the given slice in
// reverse order.
func Reverse(bytes []byte) (result []byte) {
	result = make([]byte, len(bytes))
	for i, element := range bytes {
		result[len(bytes)-1-i] = element
	}

	return
}
