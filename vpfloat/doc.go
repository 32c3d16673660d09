// Package vpfloat decodes variable-precision floating-point values from bit cursors.
//
// A value occupies a fixed number of bits, between MinBitCount and MaxBitCount,
// chosen by the caller. Two encodings implement the Codec interface:
//
// Standard (the default) is a sign/exponent/mantissa layout. The top bit is the
// sign; the remaining n = w-1 bits hold E = bits.Len(n) exponent bits followed by
// n-E mantissa bits with an implicit leading one. The all-zero pattern is 0.
// Standard is NOT extension invariant: zero-extending a pattern to a wider width
// changes how its bits are split between exponent and mantissa, and therefore
// its value. For example 0b011 is 8 at width 3 but 0b0011 is 3 at width 4.
//
// Interleaved has no exponent field. After three reserved patterns (0 -> 0,
// 1 -> -1, 2 -> 1) the value v-1 carries a sign flag in its lowest bit and then
// pairs of bits: the even bit of pair i adds 2^(i+1) and the odd bit adds
// 2^-(i+1). Range and precision both grow with the width, and zero-extending a
// pattern never changes its value.
//
// Both encodings are injective for every width as long as the decoded value is
// exactly representable as a float64; at widths above about 50 bits adjacent
// Interleaved values may round to the same float64.
//
//	r, _ := vpfloat.NewReader(cursor.New(arr), vpfloat.Interleaved, 12)
//	for r.Remaining() >= 12 {
//		f, _ := r.ReadFloat()
//		...
//	}
package vpfloat
