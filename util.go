package bitnum

type RandSource interface {
	Uint64() uint64
}

// RandUInt generates a UInt of the given storage width from an external
// random source. The top bit is always false, matching what construction
// guarantees; the remaining width-1 bits are random. RandUInt panics if
// width is less than 1.
func RandUInt(source RandSource, width int) *UInt {
	if width < 1 {
		panic("bitnum: random width must be at least 1")
	}
	u := &UInt{bits: make([]bool, width)}
	var buf uint64
	var left int
	for i := width - 1; i >= 1; i-- {
		if left == 0 {
			buf = source.Uint64()
			left = 64
		}
		u.bits[i] = buf&1 != 0
		buf >>= 1
		left--
	}
	return u
}

// Difference subtracts the smaller of a and b from the larger. Neither
// operand is modified.
func Difference(a, b *UInt) *UInt {
	if a.Cmp(b) >= 0 {
		return Sub(a, b)
	}
	return Sub(b, a)
}

// Larger returns a copy of the larger of a and b; ties go to a. The copy
// shares no storage with either operand.
func Larger(a, b *UInt) *UInt {
	if a.Cmp(b) >= 0 {
		return a.Clone()
	}
	return b.Clone()
}

// Smaller returns a copy of the smaller of a and b; ties go to a.
func Smaller(a, b *UInt) *UInt {
	if a.Cmp(b) <= 0 {
		return a.Clone()
	}
	return b.Clone()
}
