// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import "math/big"

// slowParse is the concrete stand-in for spec.md's opaque, host-supplied
// slow_parse collaborator (see SPEC_FULL.md section 1). It is only ever
// reached on paths the fast path has already proven it cannot resolve
// (eiselLemire returning "Unknown", or a still-in-range exponent that
// would produce a subnormal result), so it is never on the hot path and
// can afford to be exact rather than merely fast.
//
// text has already been validated by lex (parse.go never calls slowParse
// before lex has accepted text), so the only grammar slowParse needs to
// accept is the RFC 7159 subset lex already enforces -- a strict subset
// of what *big.Rat.SetString accepts, which additionally tolerates
// rational "a/b" literals that never occur here.
//
// The teacher leans on math/big throughout decimal.go (SetRat, Rat,
// SetInt, Int) for exact conversions between *Decimal and the standard
// library's arbitrary-precision types; slowParse follows the same idiom,
// just the other way around: decimal text -> exact rational -> correctly
// rounded float64.
func slowParse(text string) (float64, error) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		// lex already validated text, so this should be unreachable; kept
		// as a defensive error rather than a panic since it crosses a
		// package boundary (*big.Rat's grammar, not ours).
		return 0, malformed(text, 0, "slow path rejected a literal the lexer accepted")
	}
	f, _ := r.Float64()
	return f, nil
}
