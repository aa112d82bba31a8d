package bitnum

// And replaces u with u AND v, both operands aligned at their least
// significant bits. The width of u is preserved. Positions of u beyond v's
// width clear, because the matching bits of the shorter operand read as
// false; a wider v's extra high bits do not participate.
func (u *UInt) And(v *UInt) {
	ul, vl := len(u.bits), len(v.bits)
	min := ul
	if vl < min {
		min = vl
	}
	for i := 0; i < min; i++ {
		u.bits[ul-1-i] = u.bits[ul-1-i] && v.bits[vl-1-i]
	}
	for i := min; i < ul; i++ {
		u.bits[ul-1-i] = false
	}
}

// Or replaces u with u OR v, aligned at the least significant bits. The
// width of u is preserved and, unlike And, positions of u beyond v's width
// keep their values.
func (u *UInt) Or(v *UInt) {
	ul, vl := len(u.bits), len(v.bits)
	min := ul
	if vl < min {
		min = vl
	}
	for i := 0; i < min; i++ {
		u.bits[ul-1-i] = u.bits[ul-1-i] || v.bits[vl-1-i]
	}
}

// Xor replaces u with u XOR v, aligned at the least significant bits, with
// the same width rules as Or.
func (u *UInt) Xor(v *UInt) {
	ul, vl := len(u.bits), len(v.bits)
	min := ul
	if vl < min {
		min = vl
	}
	for i := 0; i < min; i++ {
		u.bits[ul-1-i] = u.bits[ul-1-i] != v.bits[vl-1-i]
	}
}

// Not flips every stored bit in place: a complement within the current
// width, not a negation. The width is preserved.
func (u *UInt) Not() {
	for i := range u.bits {
		u.bits[i] = !u.bits[i]
	}
}

// Lsh shifts u left n bits by growing the width: n false bits are appended
// at the least significant end, so no high bits are ever lost.
func (u *UInt) Lsh(n uint) {
	if n == 0 {
		return
	}
	out := make([]bool, len(u.bits)+int(n))
	copy(out, u.bits)
	u.bits = out
}

// Rsh shifts u right n bits within its current width: every bit moves n
// positions toward the least significant end and the vacated high positions
// fill with false. The shift is logical and the width is preserved.
func (u *UInt) Rsh(n uint) {
	ln := len(u.bits)
	if n == 0 {
		return
	}
	out := make([]bool, ln)
	if n < uint(ln) {
		copy(out[n:], u.bits[:uint(ln)-n])
	}
	u.bits = out
}

// And returns a AND b as a new value, leaving both operands unmodified.
func And(a, b *UInt) *UInt {
	out := a.Clone()
	out.And(b)
	return out
}

// Or returns a OR b as a new value, leaving both operands unmodified.
func Or(a, b *UInt) *UInt {
	out := a.Clone()
	out.Or(b)
	return out
}

// Xor returns a XOR b as a new value, leaving both operands unmodified.
func Xor(a, b *UInt) *UInt {
	out := a.Clone()
	out.Xor(b)
	return out
}

// Not returns the width-bounded complement of a as a new value.
func Not(a *UInt) *UInt {
	out := a.Clone()
	out.Not()
	return out
}

// Lsh returns a shifted left n bits as a new value.
func Lsh(a *UInt, n uint) *UInt {
	out := a.Clone()
	out.Lsh(n)
	return out
}

// Rsh returns a shifted right n bits as a new value.
func Rsh(a *UInt, n uint) *UInt {
	out := a.Clone()
	out.Rsh(n)
	return out
}
