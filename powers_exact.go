// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

// exactPowersOfTen holds 10**0 .. 10**22, each of which is exactly
// representable as a float64 (10**n = 5**n * 2**n, a float64 mantissa
// holds 53 bits, and 5**22 < 2**53, so every entry here round-trips
// through float64 with zero error). Used by the shortcut evaluator (shortcut.go),
// parallel in spirit to the teacher's pow10tab in dec_arith.go, which
// holds the same digit sequence as declet-arithmetic uint64 constants
// rather than exact binary64 values.
var exactPowersOfTen = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}
