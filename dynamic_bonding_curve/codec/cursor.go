package codec

import (
	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/meteora-dbc-config/u128"
)

// cursor is a checked little-endian reader over one account buffer. Every
// read verifies the remaining length before touching the underlying decoder,
// so a short buffer always surfaces as a *TruncatedBufferError naming the
// field, never as a zero value.
type cursor struct {
	buf   []byte
	dec   *binary.Decoder
	count int
}

func newCursor(data []byte) *cursor {
	return &cursor{buf: data, dec: binary.NewBinDecoder(data)}
}

// data is the whole source buffer, for checks that look at it without
// consuming anything.
func (c *cursor) data() []byte {
	return c.buf
}

func (c *cursor) pos() int {
	return int(c.dec.Position())
}

func (c *cursor) remaining() int {
	return c.dec.Remaining()
}

// reads is the number of successful read and skip operations so far.
func (c *cursor) reads() int {
	return c.count
}

func (c *cursor) need(field string, width int) error {
	if c.remaining() < width {
		return &TruncatedBufferError{
			Field:     field,
			Offset:    c.pos(),
			Width:     width,
			Remaining: c.remaining(),
		}
	}
	return nil
}

func (c *cursor) readU8(field string) (uint8, error) {
	if err := c.need(field, 1); err != nil {
		return 0, err
	}
	v, err := c.dec.ReadUint8()
	if err != nil {
		return 0, err
	}
	c.count++
	return v, nil
}

func (c *cursor) readU16(field string) (uint16, error) {
	if err := c.need(field, 2); err != nil {
		return 0, err
	}
	v, err := c.dec.ReadUint16(binary.LE)
	if err != nil {
		return 0, err
	}
	c.count++
	return v, nil
}

func (c *cursor) readU32(field string) (uint32, error) {
	if err := c.need(field, 4); err != nil {
		return 0, err
	}
	v, err := c.dec.ReadUint32(binary.LE)
	if err != nil {
		return 0, err
	}
	c.count++
	return v, nil
}

func (c *cursor) readU64(field string) (uint64, error) {
	if err := c.need(field, 8); err != nil {
		return 0, err
	}
	v, err := c.dec.ReadUint64(binary.LE)
	if err != nil {
		return 0, err
	}
	c.count++
	return v, nil
}

// readU128 reads the low word then the high word. The width is checked up
// front so a buffer ending between the two words is reported against the
// whole 16-byte field.
func (c *cursor) readU128(field string) (u128.Uint128, error) {
	if err := c.need(field, u128Size); err != nil {
		return u128.Uint128{}, err
	}
	lo, err := c.dec.ReadUint64(binary.LE)
	if err != nil {
		return u128.Uint128{}, err
	}
	hi, err := c.dec.ReadUint64(binary.LE)
	if err != nil {
		return u128.Uint128{}, err
	}
	c.count++
	return u128.New(lo, hi), nil
}

// readFixedBytes returns a copy; the caller never aliases the source buffer.
func (c *cursor) readFixedBytes(field string, n int) ([]byte, error) {
	if err := c.need(field, n); err != nil {
		return nil, err
	}
	b, err := c.dec.ReadNBytes(n)
	if err != nil {
		return nil, err
	}
	c.count++
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (c *cursor) readPublicKey(field string) (solanago.PublicKey, error) {
	b, err := c.readFixedBytes(field, PublicKeySize)
	if err != nil {
		return solanago.PublicKey{}, err
	}
	return solanago.PublicKeyFromBytes(b), nil
}

func (c *cursor) skip(field string, n int) error {
	if err := c.need(field, n); err != nil {
		return err
	}
	if err := c.dec.SkipBytes(uint(n)); err != nil {
		return err
	}
	c.count++
	return nil
}
