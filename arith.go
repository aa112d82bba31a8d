package bitnum

// fullAdd is a one-bit full adder.
func fullAdd(a, b, cin bool) (sum, cout bool) {
	sum = a != b != cin
	cout = (a && b) || (a && cin) || (b && cin)
	return sum, cout
}

// Add replaces u with u + v, rippling the carry up from the least
// significant end. The result is one bit wider than the wider operand and
// the extra top slot receives the final carry, so a sum is never truncated:
// 0b011 + 0b001 is 0b0100.
func (u *UInt) Add(v *UInt) {
	ln := len(u.bits)
	if len(v.bits) > ln {
		ln = len(v.bits)
	}
	out := make([]bool, ln+1)
	carry := false
	for i := 0; i < ln; i++ {
		out[ln-i], carry = fullAdd(u.lowBit(i), v.lowBit(i), carry)
	}
	out[0] = carry
	u.bits = out
}

// addWrap adds v into u at fixed width: the result occupies
// max(len(u), len(v)) bits and the carry out of the top position is
// discarded. Negation, subtraction and the multiply cycles are built on
// this; their register widths must not move.
func (u *UInt) addWrap(v *UInt) {
	u.padTo(len(v.bits))
	ln := len(u.bits)
	carry := false
	for i := 0; i < ln; i++ {
		u.bits[ln-1-i], carry = fullAdd(u.bits[ln-1-i], v.lowBit(i), carry)
	}
}

// negate replaces u with its two's complement within the current width:
// flip every bit, add one back, discard the carry out of the top. The
// increment is a single set bit so the width can never grow. Subtraction
// and the multiply registers are the only callers; UInt has no public
// signed mode.
func (u *UInt) negate() {
	u.Not()
	u.addWrap(&UInt{bits: []bool{true}})
}

// Sub replaces u with u - v, flooring at zero: when v exceeds u the result
// is the minimal zero, a single false bit, never a wrapped value. The
// comparison happens on the original operands before any bit work.
//
// Otherwise both sides align at max(len(u), len(v)) bits, never fewer than
// one, v's two's complement is added with the final carry discarded, and
// the result keeps that width.
func (u *UInt) Sub(v *UInt) {
	if u.Cmp(v) < 0 {
		u.bits = []bool{false}
		return
	}

	// A zero-width zero value still needs one slot here, or the two's
	// complement step would manufacture a set bit from nothing.
	u.padTo(1)

	u.padTo(len(v.bits))
	n := v.Clone()
	n.padTo(len(u.bits))
	n.negate()
	u.addWrap(n)
}

// Add returns a + b as a new value, leaving both operands unmodified.
func Add(a, b *UInt) *UInt {
	out := a.Clone()
	out.Add(b)
	return out
}

// Sub returns a - b as a new value, flooring at zero. Both operands are
// left unmodified.
func Sub(a, b *UInt) *UInt {
	out := a.Clone()
	out.Sub(b)
	return out
}
