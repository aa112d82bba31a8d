package bitnum

// boothRegs is the register file for one multiply: the classic A, S and P
// registers of Booth's algorithm, each 2w+1 bits wide for an equalized
// operand width of w. It exists only for the duration of a single Mul call.
type boothRegs struct {
	a *UInt // multiplicand in the top w bits, rest false
	s *UInt // two's complement of the multiplicand in the top w bits
	p *UInt // multiplier in bits [w, 2w), scratch bit in the last slot
}

// newBoothRegs lays out the registers for multiplicand m and multiplier r,
// which must already share a width with a false top bit.
func newBoothRegs(m, r *UInt) boothRegs {
	w := len(m.bits)
	asp := 2*w + 1

	mneg := m.Clone()
	mneg.negate()

	regs := boothRegs{
		a: &UInt{bits: make([]bool, asp)},
		s: &UInt{bits: make([]bool, asp)},
		p: &UInt{bits: make([]bool, asp)},
	}
	copy(regs.a.bits, m.bits)
	copy(regs.s.bits, mneg.bits)
	copy(regs.p.bits[asp-w-1:asp-1], r.bits)
	return regs
}

// cycle runs one Booth step. The low two bits of P pick the action: a
// falling edge (01) adds A, a rising edge (10) adds S, equal bits add
// nothing. P then shifts right one position arithmetically. All additions
// wrap at the register width.
func (b boothRegs) cycle() {
	asp := len(b.p.bits)
	secondToLast, last := b.p.bits[asp-2], b.p.bits[asp-1]
	if secondToLast && !last {
		b.p.addWrap(b.s)
	} else if !secondToLast && last {
		b.p.addWrap(b.a)
	}
	b.p.arithShiftRight()
}

// Mul replaces u with u * v using Booth's algorithm. Private clones of both
// operands are padded to a common width w; the product accumulates in the P
// register across w cycles and the result keeps the full 2w+1 bit register
// width, so a product is never truncated.
//
// The registers hold two's complement intermediates, but that arithmetic
// never escapes them: operands and result are unsigned throughout.
func (u *UInt) Mul(v *UInt) {
	m, r := u.Clone(), v.Clone()
	m.padTo(1)
	r.padTo(1)
	if len(r.bits) > len(m.bits) {
		m.padTo(len(r.bits))
	} else {
		r.padTo(len(m.bits))
	}

	// The signed register arithmetic needs the top bit of both operands
	// clear. Constructed values always have it clear; raw patterns from
	// UIntFromBits may not.
	if m.bits[0] || r.bits[0] {
		m.PadLeadingZeros(1)
		r.PadLeadingZeros(1)
	}

	w := len(m.bits)
	regs := newBoothRegs(m, r)
	for i := 0; i < w; i++ {
		regs.cycle()
	}

	// The scratch bit has served its purpose; drop it and slide the
	// product down one slot, leaving a false top bit.
	asp := 2*w + 1
	out := make([]bool, asp)
	copy(out[1:], regs.p.bits[:asp-1])
	u.bits = out
}

// arithShiftRight shifts every bit one position toward the least
// significant end, discarding the old last bit. The top slot keeps its
// value (sign extension).
func (u *UInt) arithShiftRight() {
	for i := len(u.bits) - 1; i >= 1; i-- {
		u.bits[i] = u.bits[i-1]
	}
}

// Mul returns a * b as a new value, leaving both operands unmodified.
func Mul(a, b *UInt) *UInt {
	out := a.Clone()
	out.Mul(b)
	return out
}
