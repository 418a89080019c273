// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import (
	"math"
	"math/bits"
)

// eiselLemireMagic is floor(2**16 * log2(10)) + 1, used in step 2 below to
// estimate the binary exponent of mantissa * 10**exp10 without a floating
// point log. Verified valid for exp10 in [powerOf10Min, powerOf10Max]; do
// not reuse outside that range without re-deriving the bound (spec.md
// section 9).
const eiselLemireMagic = 217706

// eiselLemire converts mantissa*10**exp10 (negated if neg) to the nearest
// binary64, or reports ok=false ("Unknown" in spec.md's terms) when a
// single 128-bit power-of-ten multiplication cannot prove the rounding is
// correct. The caller (parse.go) is responsible for:
//
//   - ensuring mantissa != 0
//   - ensuring powerOf10Min <= exp10 <= powerOf10Max
//   - re-trying with mantissa+1 when the canonicalNumber was truncated,
//     and only trusting a result both calls agree on (spec.md section 4.3,
//     "Truncation handling")
//
// This function never allocates and never loops; its cost is one table
// lookup and at most two 64x64->128 multiplications (u128.go).
func eiselLemire(mantissa uint64, exp10 int32, neg bool) (f float64, ok bool) {
	if exp10 < powerOf10Min || exp10 > powerOf10Max {
		return 0, false
	}

	// Step 1: normalize the mantissa so its top bit is set.
	lz := bits.LeadingZeros64(mantissa)
	m := mantissa << uint(lz)

	// Step 2: estimate the biased binary exponent.
	e2 := ((eiselLemireMagic * int64(exp10)) >> 16) + 1024 + 63 - int64(lz)

	// Step 3: multiply against the high 64 bits of the tabulated power.
	pow := powersOfTen[exp10-powerOf10Min]
	hi, lo := mul64(m, pow.hi)

	// Step 4: wide-approximation refinement.
	if hi&0x1FF == 0x1FF && lo+m < lo {
		whi, wlo := mul64(m, pow.lo)
		var carry uint64
		lo, carry = add64(lo, whi, 0)
		hi += carry
		if hi&0x1FF == 0x1FF && lo+1 == 0 && wlo+m < wlo {
			return 0, false
		}
	}

	// Step 5: shift the 128-bit product down to a 54-bit significand.
	msb := hi >> 63
	significand := hi >> (msb + 9)
	e2 -= int64(1 - msb)

	// Step 6: half-way detection -- the 128-bit product alone cannot
	// disambiguate an exact tie.
	if lo == 0 && hi&0x1FF == 0 && significand&3 == 1 {
		return 0, false
	}

	// Step 7: round to 53 bits, ties to even.
	significand = (significand + (significand & 1)) >> 1

	// Step 8: rounding may have carried into bit 53.
	if significand>>53 != 0 {
		significand >>= 1
		e2++
	}

	// Step 9: binary64 can't represent this value without going through
	// the slow path (subnormal result, or exponent overflow).
	if e2 <= 0 || e2 >= 0x7FF {
		return 0, false
	}

	// Step 10: assemble the IEEE-754 bit pattern.
	bitsOut := (significand & 0x000F_FFFF_FFFF_FFFF) | (uint64(e2) << 52)
	if neg {
		bitsOut |= 1 << 63
	}
	return math.Float64frombits(bitsOut), true
}
