/*
Package bitnum provides UInt, an arbitrary-width unsigned integer stored one
bit per slot, most significant bit first.

UInt is a mutable pointer type: methods operate on the receiver in place,
and the package-level functions of the same names derive new values from a
clone of the left operand instead.

Simple example:

	u := bitnum.UIntFrom64(6)
	u.Mul(bitnum.UIntFrom64(7))
	fmt.Println(u.AsUint64())
	// Output: 42

UInt can be created from a variety of sources:

	UIntFrom64(v uint64) *UInt
	UIntFromBits(pattern []bool) (*UInt, error)
	UIntFromBigInt(v *big.Int) (*UInt, error)
	UIntFromString(s string) (*UInt, error)

UInt supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Width is explicit and observable. Construction uses the smallest width that
fits the value plus one leading zero bit; addition grows the result by one
slot for the final carry; multiplication keeps the full double-width
product; subtraction floors at zero instead of wrapping. Nothing truncates
silently.
*/
package bitnum
