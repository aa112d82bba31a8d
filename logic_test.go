package bitnum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUIntAnd(t *testing.T) {
	for idx, tc := range []struct {
		a, b *UInt
		r    string
	}{
		{u64(5), u64(3), "0b0001"},
		{u64(3), u64(5), "0b001"},
		{u64(5), u64(5), "0b0101"},
		{u64(0), u64(255), "0b00"},

		// Receiver bits above the argument's width are cleared:
		{uints("0b1111"), u64(1), "0b0001"},
		{uints("0b1010"), uints("0b10"), "0b0010"},

		// A wider argument's high bits never land in the receiver:
		{uints("0b01"), uints("0b0111"), "0b01"},
	} {
		t.Run(fmt.Sprintf("%d/%s&%s=%s", idx, tc.a, tc.b, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u := tc.a.Clone()
			u.And(tc.b)
			tt.MustEqual(tc.r, u.String())
		})
	}
}

func TestUIntOr(t *testing.T) {
	for idx, tc := range []struct {
		a, b *UInt
		r    string
	}{
		{u64(5), u64(3), "0b0111"},
		{u64(3), u64(5), "0b111"},
		{u64(5), u64(5), "0b0101"},
		{u64(0), u64(0), "0b00"},

		// Receiver bits above the argument's width are kept:
		{uints("0b1000"), u64(1), "0b1001"},

		// A wider argument's high bits never land in the receiver:
		{u64(1), u64(6), "0b11"},
	} {
		t.Run(fmt.Sprintf("%d/%s|%s=%s", idx, tc.a, tc.b, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u := tc.a.Clone()
			u.Or(tc.b)
			tt.MustEqual(tc.r, u.String())
		})
	}
}

func TestUIntOrRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		b1 := randomBigUInt(nil)
		b2 := randomBigUInt(nil)
		u1 := mustUIntFromBigInt(b1)
		u2 := mustUIntFromBigInt(b2)

		// The receiver's width survives, so the oracle is the big.Int
		// result masked down to it:
		rb := new(big.Int).Or(b1, b2)
		rb.And(rb, notMaskBig(u1.Len()))

		ru := Or(u1, u2)
		tt.MustEqual(rb.String(), ru.AsBigInt().String(), "failed at index %d", i)
		tt.MustEqual(u1.Len(), ru.Len(), "width moved at index %d", i)
	}
}

func TestUIntXor(t *testing.T) {
	for idx, tc := range []struct {
		a, b *UInt
		r    string
	}{
		{u64(5), u64(3), "0b0110"},
		{u64(3), u64(5), "0b110"},
		{u64(5), u64(5), "0b0000"},
		{uints("0b1010"), u64(3), "0b1001"},

		// A wider argument's high bits never land in the receiver:
		{u64(1), u64(6), "0b11"},
	} {
		t.Run(fmt.Sprintf("%d/%s^%s=%s", idx, tc.a, tc.b, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u := tc.a.Clone()
			u.Xor(tc.b)
			tt.MustEqual(tc.r, u.String())
		})
	}
}

func TestUIntXorRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		b1 := randomBigUInt(nil)
		b2 := randomBigUInt(nil)
		u1 := mustUIntFromBigInt(b1)
		u2 := mustUIntFromBigInt(b2)

		// Same width rule as Or:
		rb := new(big.Int).Xor(b1, b2)
		rb.And(rb, notMaskBig(u1.Len()))

		ru := Xor(u1, u2)
		tt.MustEqual(rb.String(), ru.AsBigInt().String(), "failed at index %d", i)
		tt.MustEqual(u1.Len(), ru.Len(), "width moved at index %d", i)
	}
}

func TestUIntNot(t *testing.T) {
	for idx, tc := range []struct {
		a *UInt
		r string
	}{
		{u64(5), "0b1010"},
		{u64(0), "0b11"},
		{uints("0b0"), "0b1"},
		{uints("0b111"), "0b000"},
		{uints("0b0011"), "0b1100"},
	} {
		t.Run(fmt.Sprintf("%d/^%s=%s", idx, tc.a, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			u := tc.a.Clone()
			u.Not()
			tt.MustEqual(tc.r, u.String())

			u.Not()
			tt.MustEqual(tc.a.String(), u.String())
		})
	}
}

func TestUIntLsh(t *testing.T) {
	for idx, tc := range []struct {
		u  *UInt
		by uint
		r  string
	}{
		{u64(5), 0, "0b0101"},
		{u64(5), 1, "0b01010"},
		{u64(5), 2, "0b010100"},
		{u64(1), 3, "0b01000"},
		{u64(0), 4, "0b000000"},
		{uints("0b11"), 2, "0b1100"},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u := tc.u.Clone()
			u.Lsh(tc.by)
			tt.MustEqual(tc.r, u.String())
			tt.MustEqual(tc.u.Len()+int(tc.by), u.Len())
		})
	}
}

func TestUIntLshRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		b1 := randomBigUInt(nil)
		u1 := mustUIntFromBigInt(b1)
		by := uint(i % 131)

		// The width grows with the shift, so nothing falls off the top and
		// no mask is needed:
		rb := new(big.Int).Lsh(b1, by)
		ru := Lsh(u1, by)
		tt.MustEqual(rb.String(), ru.AsBigInt().String(), "failed at index %d", i)
	}
}

func TestUIntRsh(t *testing.T) {
	for idx, tc := range []struct {
		u  *UInt
		by uint
		r  string
	}{
		{u64(5), 0, "0b0101"},
		{u64(5), 1, "0b0010"},
		{u64(5), 2, "0b0001"},
		{u64(5), 3, "0b0000"},
		{uints("0b1100"), 2, "0b0011"},

		// Shifting everything out zeroes the slots but keeps the width:
		{u64(5), 7, "0b0000"},
		{uints("0b11"), 200, "0b00"},
	} {
		t.Run(fmt.Sprintf("%d/%s>>%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u := tc.u.Clone()
			u.Rsh(tc.by)
			tt.MustEqual(tc.r, u.String())
			tt.MustEqual(tc.u.Len(), u.Len())
		})
	}
}

func TestUIntRshRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		b1 := randomBigUInt(nil)
		u1 := mustUIntFromBigInt(b1)
		by := uint(i % 161)

		rb := new(big.Int).Rsh(b1, by)
		ru := Rsh(u1, by)
		tt.MustEqual(rb.String(), ru.AsBigInt().String(), "failed at index %d", i)
	}
}

func TestUIntLogicDeriveForms(t *testing.T) {
	tt := assert.WrapTB(t)

	a, b := u64(5), u64(3)

	tt.MustEqual("0b0001", And(a, b).String())
	tt.MustEqual("0b0111", Or(a, b).String())
	tt.MustEqual("0b0110", Xor(a, b).String())
	tt.MustEqual("0b1010", Not(a).String())
	tt.MustEqual("0b01010", Lsh(a, 1).String())
	tt.MustEqual("0b0010", Rsh(a, 1).String())

	// The derive forms work on copies:
	tt.MustEqual("0b0101", a.String())
	tt.MustEqual("0b011", b.String())
}

func BenchmarkUIntAnd(b *testing.B) {
	u := uints("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")
	v := uints("0x 9234567890123456 7890123456789012")
	for i := 0; i < b.N; i++ {
		BenchUIntResult = And(u, v)
	}
}

func BenchmarkUIntLsh(b *testing.B) {
	for _, tc := range []struct {
		in *UInt
		sh uint
	}{
		{u64(maxUint64), 1},
		{u64(maxUint64), 8},
		{u64(maxUint64), 64},
		{u64(maxUint64), 127},
		{uints("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), 1},
		{uints("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), 64},
	} {
		b.Run(fmt.Sprintf("%s<<%d", tc.in, tc.sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUIntResult = Lsh(tc.in, tc.sh)
			}
		})
	}
}
