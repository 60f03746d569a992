package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPoolConfig matches every *FormatError.
	ErrNotPoolConfig = errors.New("not a PoolConfig account")
	// ErrTruncated matches every *TruncatedBufferError.
	ErrTruncated = errors.New("account data truncated")
	// ErrUnknownEnumValue matches every *DomainError.
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// FormatError reports a buffer that does not carry the PoolConfig
// discriminator, either because it is too short to hold one or because the
// leading bytes differ.
type FormatError struct {
	Len           int
	Discriminator []byte
}

func (e *FormatError) Error() string {
	if e.Len < DiscriminatorSize {
		return fmt.Sprintf("%s: %d bytes is shorter than the %d-byte discriminator", ErrNotPoolConfig, e.Len, DiscriminatorSize)
	}
	return fmt.Sprintf("%s: discriminator %v, want %v", ErrNotPoolConfig, e.Discriminator, PoolConfigDiscriminator)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrNotPoolConfig
}

// TruncatedBufferError reports a read that needed more bytes than remain.
type TruncatedBufferError struct {
	Field     string
	Offset    int
	Width     int
	Remaining int
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("%s: reading %s needs %d bytes at offset %d, %d remain", ErrTruncated, e.Field, e.Width, e.Offset, e.Remaining)
}

func (e *TruncatedBufferError) Is(target error) bool {
	return target == ErrTruncated
}

// DomainError reports an enum-coded byte outside its known value set.
// It is only produced when enum validation is enabled.
type DomainError struct {
	Field string
	Value uint8
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %d", ErrUnknownEnumValue, e.Field, e.Value)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}
