// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import "math/bits"

// mul64 computes the full 128-bit product of x and y as (hi, lo), hi
// holding the most significant 64 bits. Adapted from the teacher's
// mul10WW_g in dec_arith.go, which also builds on bits.Mul but then folds
// the binary 128-bit product back down into a single base-10**19 "digit"
// (it needs a declet result; this parser needs the raw 128-bit product,
// so the fold-back step is dropped).
func mul64(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

// add64 adds x, y and an incoming carry (0 or 1), returning the 64-bit sum
// and the outgoing carry (0 or 1). Adapted from add10WWW_g in
// dec_arith.go, which does the equivalent bits.Add64-based addition but
// then subtracts the declet base on overflow; over plain binary words,
// bits.Add64 already returns exactly what's needed.
func add64(x, y, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(x, y, carry)
}
