// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import "math"

// maxMantissaValue is 10**maxMantissaDigits - 1, the largest value a
// 19-digit mantissa can hold.
const maxMantissaValue = 9_999_999_999_999_999_999

// ParseDouble parses text, an RFC 7159 JSON number literal, and returns
// the unique binary64 value that is the correctly-rounded (round-half-to-
// even) image of the exact decimal value text denotes.
//
// ParseDouble never returns a partial result: on any grammar violation it
// returns a *MalformedNumber error and a zero float64. It does not accept
// "NaN", "Infinity", hexadecimal, a leading '+', leading zeros beyond a
// single '0', or surrounding whitespace (spec.md section 1's Non-goals).
//
// ParseDouble is a pure function: it performs no I/O, holds no package-
// level mutable state, and is safe for unrestricted concurrent use.
func ParseDouble(text string) (float64, error) {
	n, err := lex(text)
	if err != nil {
		return 0, err
	}

	if n.isZero() || n.exp10 < powerOf10Min {
		return signedZero(n.negative), nil
	}
	if n.exp10 > powerOf10Max {
		return signedInf(n.negative), nil
	}

	if f, ok := shortcut(n); ok {
		return f, nil
	}

	if !n.truncated {
		if f, ok := eiselLemire(n.mantissa, n.exp10, n.negative); ok {
			return f, nil
		}
		return slowParse(text)
	}

	// Truncated: the kept mantissa is only a prefix of the true digits.
	// Try both the bracketing mantissa values (spec.md section 4.3,
	// "Truncation handling"); only agreement between the two proves the
	// dropped digits couldn't have changed the rounded result.
	m2, e2 := truncatedUpperBound(n.mantissa, n.exp10)
	f1, ok1 := eiselLemire(n.mantissa, n.exp10, n.negative)
	f2, ok2 := eiselLemire(m2, e2, n.negative)
	if ok1 && ok2 && f1 == f2 {
		return f1, nil
	}
	return slowParse(text)
}

// truncatedUpperBound computes (mantissa+1, exp10) for the second
// Eisel-Lemire trial required when a canonicalNumber is truncated. The
// naive mantissa+1 always fits in a uint64 here (the largest mantissa is
// 10**19-1, and 10**19 is still well under 2**64), so no special-casing
// is numerically required -- but spec.md section 9's Open Question asks
// for the edge explicitly: when mantissa is already the largest 19-digit
// value, its +1 is a 20-digit power of ten, so we instead renormalize to
// (mantissa+1)/10 at exp10+1, the same value expressed with one fewer
// digit. Both forms are mathematically identical; the renormalized form
// is what spec.md asks implementations to produce.
func truncatedUpperBound(mantissa uint64, exp10 int32) (uint64, int32) {
	if mantissa == maxMantissaValue {
		return (mantissa + 1) / 10, exp10 + 1
	}
	return mantissa + 1, exp10
}

func signedZero(negative bool) float64 {
	if negative {
		return math.Copysign(0, -1)
	}
	return 0
}

func signedInf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
