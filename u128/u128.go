package u128

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	binary "github.com/gagliardetto/binary"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words.
// The logical value is (Hi << 64) | Lo.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

var (
	ErrNegative = errors.New("value cannot be negative")
	ErrOverflow = errors.New("value overflows Uint128")

	ErrInvalidNumber = errors.New("invalid decimal number")
)

// Max is 2^128 - 1.
var Max = Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}

func New(lo, hi uint64) Uint128 {
	return Uint128{Lo: lo, Hi: hi}
}

func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBig converts a big.Int, rejecting negative values and values wider than 128 bits.
func FromBig(i *big.Int) (Uint128, error) {
	if i == nil {
		return Uint128{}, nil
	}
	if i.Sign() < 0 {
		return Uint128{}, ErrNegative
	}
	if i.BitLen() > 128 {
		return Uint128{}, ErrOverflow
	}
	lo := new(big.Int).And(i, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(i, 64).Uint64()
	return Uint128{Lo: lo, Hi: hi}, nil
}

// FromString parses a base-10 integer. The whole string must be digits,
// apart from surrounding whitespace and an optional sign.
func FromString(num string) (Uint128, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
	if !ok {
		return Uint128{}, fmt.Errorf("%w: %q", ErrInvalidNumber, num)
	}
	return FromBig(i)
}

// MustFromString is FromString for literals; it panics on invalid input.
func MustFromString(num string) Uint128 {
	u, err := FromString(num)
	if err != nil {
		panic(err)
	}
	return u
}

func FromBinary(b binary.Uint128) Uint128 {
	return Uint128{Lo: b.Lo, Hi: b.Hi}
}

// Binary returns the little-endian wire representation used by gagliardetto/binary.
func (u Uint128) Binary() binary.Uint128 {
	return binary.Uint128{Lo: u.Lo, Hi: u.Hi, Endianness: binary.LE}
}

func (u Uint128) Big() *big.Int {
	out := new(big.Int).SetUint64(u.Hi)
	out.Lsh(out, 64)
	return out.Or(out, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

func (u Uint128) Equals(v Uint128) bool {
	return u == v
}

func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return u.Big().String()
}

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	v, err := FromBig(i)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON encodes the value as a quoted decimal string so no JSON
// consumer truncates it to a float64.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(u.String())), nil
}

// UnmarshalJSON accepts a quoted or bare decimal number. null leaves u unchanged.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := FromString(s)
	if err != nil {
		return fmt.Errorf("u128: %w", err)
	}
	*u = v
	return nil
}
