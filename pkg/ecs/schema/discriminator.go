package schema

// DiscriminatorSize is the length of the tag prefixing every stored record.
const DiscriminatorSize = 8

// Discriminator derives the 8 byte account tag from a seed. The seed's bytes
// are copied left to right with trailing zero fill; seeds longer than 8 bytes
// are truncated, so two seeds sharing an 8 byte prefix collide (the Registry
// rejects that at registration time).
func Discriminator(seed []byte) [DiscriminatorSize]byte {
	var discriminator [DiscriminatorSize]byte
	copy(discriminator[:], seed)
	return discriminator
}
