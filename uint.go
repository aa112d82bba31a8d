package bitnum

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// UInt is an arbitrary-width unsigned integer stored one bit per slot in
// order of descending significance: bits[0] is the most significant bit.
// The stored width is part of the value's observable state; leading false
// bits are kept, not normalized away.
//
// Every instance owns its storage outright. Operations that change the
// width allocate a fresh slice, and nothing ever hands out or retains a
// reference to another instance's bits, so distinct instances are safe to
// use from concurrent goroutines.
//
// The zero value of the struct is an empty, zero-width zero. Constructed
// values always carry at least one bit.
type UInt struct {
	bits []bool
}

// UIntFrom64 creates a UInt from a uint64 using the smallest width that
// holds the value plus one leading false bit: UIntFrom64(5) is 0b0101.
// Zero is the two-bit pattern 0b00.
func UIntFrom64(v uint64) *UInt {
	n := bits.Len64(v) + 1
	if v == 0 {
		n = 2
	}
	u := &UInt{bits: make([]bool, n)}
	for i := n - 1; v != 0; i-- {
		u.bits[i] = v&1 != 0
		v >>= 1
	}
	return u
}

// UIntFromBits creates a UInt from a raw bit pattern in storage order, most
// significant first. The pattern is copied verbatim, width included; it is
// not normalized, so a pattern with a set top bit is a legal input to every
// operation even though no constructor produces one. An empty pattern is an
// error.
func UIntFromBits(pattern []bool) (*UInt, error) {
	if len(pattern) == 0 {
		return nil, errors.New("bitnum: empty bit pattern")
	}
	u := &UInt{bits: make([]bool, len(pattern))}
	copy(u.bits, pattern)
	return u, nil
}

// UIntFromBigInt creates a UInt from a big.Int, with the same width rule as
// UIntFrom64. There is no upper width limit. Negative values are an error.
func UIntFromBigInt(v *big.Int) (*UInt, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("bitnum: negative value %s", v)
	}
	n := v.BitLen() + 1
	if v.Sign() == 0 {
		n = 2
	}
	u := &UInt{bits: make([]bool, n)}
	for i := v.BitLen() - 1; i >= 0; i-- {
		u.bits[n-1-i] = v.Bit(i) == 1
	}
	return u, nil
}

// UIntFromString creates a UInt from a string. A 0b prefix followed only by
// binary digits is read bit for bit, preserving the exact width String
// emits. Anything else goes through big.Int with base selection by prefix,
// and gets the width UIntFromBigInt would produce.
func UIntFromString(s string) (*UInt, error) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') && isBinary(s[2:]) {
		u := &UInt{bits: make([]bool, len(s)-2)}
		for i := 2; i < len(s); i++ {
			u.bits[i-2] = s[i] == '1'
		}
		return u, nil
	}
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("bitnum: string %q invalid", s)
	}
	return UIntFromBigInt(b)
}

func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of u sharing no storage with it.
func (u *UInt) Clone() *UInt {
	v := &UInt{bits: make([]bool, len(u.bits))}
	copy(v.bits, u.bits)
	return v
}

func (u *UInt) IsZero() bool {
	for _, b := range u.bits {
		if b {
			return false
		}
	}
	return true
}

// Len returns the storage width in bits, leading zeros included.
func (u *UInt) Len() int { return len(u.bits) }

// BitLen returns the number of significant bits, counted the way
// big.Int.BitLen counts them. The BitLen of any zero is 0.
func (u *UInt) BitLen() int {
	for i, b := range u.bits {
		if b {
			return len(u.bits) - i
		}
	}
	return 0
}

// Bit returns the value of the i'th bit counting from the least significant
// end, like big.Int.Bit. Positions at or beyond the width are 0. Bit panics
// if i is negative.
func (u *UInt) Bit(i int) uint {
	if i < 0 {
		panic("bitnum: negative bit index")
	}
	if i >= len(u.bits) || !u.bits[len(u.bits)-1-i] {
		return 0
	}
	return 1
}

// Bits returns a copy of the stored pattern, most significant first. See
// UIntFromBits for the counterpart.
func (u *UInt) Bits() []bool {
	out := make([]bool, len(u.bits))
	copy(out, u.bits)
	return out
}

// lowBit reads bit i counting from the least significant end, treating
// positions beyond the width as false. Alignment of mixed-width operands
// happens through this instead of physically padding the shorter one.
func (u *UInt) lowBit(i int) bool {
	if i >= len(u.bits) {
		return false
	}
	return u.bits[len(u.bits)-1-i]
}

// Cmp compares the numeric values of u and n. Widths need not match; the
// shorter operand reads as if padded with leading false bits.
//
// Returns 1 if u > n, -1 if u < n, 0 if they are equal.
func (u *UInt) Cmp(n *UInt) int {
	ln := len(u.bits)
	if len(n.bits) > ln {
		ln = len(n.bits)
	}
	for i := ln - 1; i >= 0; i-- {
		ub, nb := u.lowBit(i), n.lowBit(i)
		if ub != nb {
			if ub {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Equal reports whether u and n hold the same numeric value. Widths are not
// compared: 0b0101 and 0b00101 are equal.
func (u *UInt) Equal(n *UInt) bool {
	return u.Cmp(n) == 0
}

func (u *UInt) GreaterThan(n *UInt) bool      { return u.Cmp(n) > 0 }
func (u *UInt) GreaterOrEqualTo(n *UInt) bool { return u.Cmp(n) >= 0 }
func (u *UInt) LessThan(n *UInt) bool         { return u.Cmp(n) < 0 }
func (u *UInt) LessOrEqualTo(n *UInt) bool    { return u.Cmp(n) <= 0 }

// AsUint64 folds the stored bits most significant first into a uint64.
// Values wider than 64 significant bits truncate. See IsUint64() if you
// want to check before you convert.
func (u *UInt) AsUint64() uint64 {
	var v uint64
	for _, b := range u.bits {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u *UInt) IsUint64() bool {
	return u.BitLen() <= 64
}

func (u *UInt) IntoBigInt(b *big.Int) {
	b.SetUint64(0)
	ln := len(u.bits)
	for i, bit := range u.bits {
		if bit {
			b.SetBit(b, ln-1-i, 1)
		}
	}
}

func (u *UInt) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// String renders the stored bits in storage order behind a 0b prefix,
// leading zeros included, so the exact width is visible:
// UIntFrom64(5).String() is "0b0101".
func (u *UInt) String() string {
	if len(u.bits) == 0 {
		return "0b0"
	}
	out := make([]byte, len(u.bits)+2)
	out[0], out[1] = '0', 'b'
	for i, b := range u.bits {
		if b {
			out[i+2] = '1'
		} else {
			out[i+2] = '0'
		}
	}
	return string(out)
}

// Format implements fmt.Formatter. The 's' and 'v' verbs print the exact
// bit string, same as String(); numeric verbs print the value and are
// forwarded to big.Int.
func (u *UInt) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u *UInt) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UInt) UnmarshalText(bts []byte) error {
	v, err := UIntFromString(string(bts))
	if err != nil {
		return err
	}
	u.bits = v.bits
	return nil
}

func (u *UInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UInt) UnmarshalJSON(bts []byte) error {
	if len(bts) > 1 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bitnum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}

// PadLeadingZeros grows u by n leading false bits into fresh storage. The
// numeric value is unchanged. Padding never truncates; a negative count
// panics.
func (u *UInt) PadLeadingZeros(n int) {
	if n < 0 {
		panic("bitnum: negative pad count")
	}
	if n == 0 {
		return
	}
	out := make([]bool, len(u.bits)+n)
	copy(out[n:], u.bits)
	u.bits = out
}

// padTo pads u to width w if it is narrower; wider stays as it is.
func (u *UInt) padTo(w int) {
	if w > len(u.bits) {
		u.PadLeadingZeros(w - len(u.bits))
	}
}
