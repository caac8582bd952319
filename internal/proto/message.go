package proto

// Message is the encode surface shared by both families.
type Message interface {
	// EncodedSize is the exact number of bytes Encode will write.
	EncodedSize() int
	// Encode writes the message into dst and returns the number of bytes
	// written. Fails with *InsufficientCapacityError if dst is too short.
	Encode(dst []byte) (int, error)
}

// Marshal encodes into a freshly allocated, exactly sized buffer.
func Marshal(m Message) []byte {
	buf := make([]byte, m.EncodedSize())
	if _, err := m.Encode(buf); err != nil {
		// EncodedSize sized the buffer; an error here is a codec bug.
		panic(err)
	}
	return buf
}
