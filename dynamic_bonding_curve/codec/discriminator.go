package codec

import "bytes"

// PoolConfigDiscriminator is the Anchor account discriminator of PoolConfig,
// sha256("account:PoolConfig")[:8].
var PoolConfigDiscriminator = [DiscriminatorSize]byte{26, 108, 14, 123, 116, 230, 129, 43}

// ValidateDiscriminator checks that data starts with the PoolConfig
// discriminator. It only looks at the first eight bytes, so a wrong header is
// reported the same way whatever follows it.
func ValidateDiscriminator(data []byte) error {
	if len(data) < DiscriminatorSize {
		return &FormatError{Len: len(data)}
	}
	if !bytes.Equal(data[:DiscriminatorSize], PoolConfigDiscriminator[:]) {
		got := make([]byte, DiscriminatorSize)
		copy(got, data[:DiscriminatorSize])
		return &FormatError{Len: len(data), Discriminator: got}
	}
	return nil
}

func IsPoolConfigAccount(data []byte) bool {
	return ValidateDiscriminator(data) == nil
}
