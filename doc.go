/*
Package swfloat provides a software emulation of IEEE-754 binary
floating-point arithmetic (binary16, binary32, binary64, with structural
preparation for binary128), built on top of a software emulation of
fixed-width integers up to 128 bits (Uint128, Int128) and a 256-bit
unsigned type (Uint256) for values that can exceed 128 bits; no float
operation uses Uint256.

Float16, Float32 and Float64 are value types; all operations return new
values. For every representable input pair, results are bit-identical to
what a conforming hardware unit would produce, including subnormals,
signed zeros, infinities, NaN propagation, and round-to-nearest-even
rounding. Alternate rounding modes, IEEE exception flags, and the
signaling/quiet NaN distinction are not implemented; see the package-level
constants for the integer-overflow sentinel behaviour this library uses in
place of them.

Simple example:

	a := Float32FromFloat32(1.0)
	b := Float32FromFloat32(2.5)
	fmt.Println(a.Add(b).AsFloat32())
	// Output: 3.5

Float16, Float32, Float64, Uint128 and Int128 support the following
formatting and marshalling interfaces (Uint256 supports only fmt.Formatter
and fmt.Stringer; Float128 supports none of them):

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package swfloat
