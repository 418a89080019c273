// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

// shortcut implements the exact-double fast path (spec.md section 4.2). It
// reports ok=false itself for a truncated canonicalNumber or one whose
// mantissa does not fit in 53 bits; parse.go only screens out zero before
// calling it.
//
// A single IEEE double multiply or divide is correctly rounded; chaining
// two is correctly rounded as long as both operands and the intermediate
// result are themselves exact, which is what the range checks below
// guarantee.
func shortcut(n canonicalNumber) (f float64, ok bool) {
	if n.truncated || n.mantissa >= 1<<53 {
		return 0, false
	}

	m := float64(n.mantissa)

	switch {
	case n.exp10 >= -22 && n.exp10 <= 22:
		if n.exp10 >= 0 {
			f = m * exactPowersOfTen[n.exp10]
		} else {
			f = m / exactPowersOfTen[-n.exp10]
		}
	case n.exp10 >= 23 && n.exp10 <= 37:
		// v = m * 10**(exp10-22); if v is still an exact integer in
		// double (|v| <= 1e15), then v*1e22 is a single correctly rounded
		// multiply of two exact operands.
		v := m * exactPowersOfTen[n.exp10-22]
		if v > 1e15 || v < -1e15 {
			return 0, false
		}
		f = v * exactPowersOfTen[22]
	default:
		return 0, false
	}

	if n.negative {
		f = -f
	}
	return f, true
}
