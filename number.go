// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

// maxMantissaDigits is the number of significant decimal digits kept in a
// canonicalNumber's mantissa. 10**19 - 1 still fits in a uint64 (which
// tops out at approximately 1.8 * 10**19); a 20th digit would not.
const maxMantissaDigits = 19

// canonicalNumber is the lexer's output: the canonical
// (sign, mantissa, decimal-exponent, truncated) tuple described by
// spec.md section 3. It has no behaviour of its own; shortcut.go consumes
// it directly, eisel_lemire.go receives its mantissa, exp10 and sign as
// separate arguments, and parse.go (the driver) decides which of the two
// to try first.
type canonicalNumber struct {
	negative bool
	// mantissa is the concatenation of all significant digits read,
	// left-to-right, bounded to maxMantissaDigits; see truncated. Leading
	// zeros are not significant and take no part of that bound.
	mantissa uint64
	// exp10 is such that the exact value equals
	// (-1)**negative * mantissa * 10**exp10 when !truncated, and
	// mantissa*10**exp10 <= |value| < (mantissa+1)*10**exp10 when truncated.
	exp10 int32
	// truncated is set when the input's significand had more than
	// maxMantissaDigits digits; mantissa is then a prefix of the true
	// digits, not the full value.
	truncated bool
}

// isZero reports whether n represents a signed zero. The lexer sets
// mantissa to 0 (with exp10 left unconstrained) for any spelling of zero
// ("0", "0.0", "0e9", ...), per spec.md section 3's invariant.
func (n canonicalNumber) isZero() bool {
	return n.mantissa == 0
}
