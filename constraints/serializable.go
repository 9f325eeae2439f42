package constraints

// Serializable is a type constraint that ensures that the type can be serialized to bytes.
type Serializable interface {
	Bytes() ([]byte, error)
}
