// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import (
	"testing"
)

var shortcutTests = []struct {
	n    canonicalNumber
	want float64
	ok   bool
}{
	{canonicalNumber{mantissa: 1}, 1, true},
	{canonicalNumber{mantissa: 5, exp10: -1}, 0.5, true},
	{canonicalNumber{mantissa: 1, exp10: 22}, 1e22, true},
	{canonicalNumber{mantissa: 1, exp10: -22}, 1e-22, true},
	{canonicalNumber{mantissa: 123456789, exp10: -5}, 1234.56789, true},
	{canonicalNumber{negative: true, mantissa: 5, exp10: -1}, -0.5, true},
	{canonicalNumber{mantissa: 1, exp10: 23}, 1e23, true},
	{canonicalNumber{mantissa: 1, exp10: 37}, 1e37, true},
	// exp10 outside the shortcut's supported range falls through.
	{canonicalNumber{mantissa: 1, exp10: 38}, 0, false},
	{canonicalNumber{mantissa: 1, exp10: -23}, 0, false},
	// a mantissa that does not fit in 53 bits is never exact.
	{canonicalNumber{mantissa: 1 << 53}, 0, false},
	// a truncated canonicalNumber is never exact.
	{canonicalNumber{mantissa: 1, truncated: true}, 0, false},
}

func TestShortcut(t *testing.T) {
	for _, tt := range shortcutTests {
		got, ok := shortcut(tt.n)
		if ok != tt.ok {
			t.Errorf("shortcut(%+v) ok = %v; want %v", tt.n, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("shortcut(%+v) = %v; want %v", tt.n, got, tt.want)
		}
	}
}

func TestShortcutExtendedRangeBail(t *testing.T) {
	// A mantissa whose value * 10**(exp10-22) overflows the |v| <= 1e15
	// guard must fall through rather than return an inexact result.
	n := canonicalNumber{mantissa: 9_007_199_254_740_991, exp10: 30}
	if _, ok := shortcut(n); ok {
		t.Errorf("shortcut(%+v) reported ok; want a fall-through", n)
	}
}

func TestShortcutAgreesWithItselfAcrossSigns(t *testing.T) {
	// shortcut must apply the sign last, so |shortcut(n)| is independent of
	// n.negative for every exp10 the fast path supports.
	for exp := -22; exp <= 37; exp++ {
		pos := canonicalNumber{mantissa: 123, exp10: int32(exp)}
		neg := canonicalNumber{negative: true, mantissa: 123, exp10: int32(exp)}
		gotPos, okPos := shortcut(pos)
		gotNeg, okNeg := shortcut(neg)
		if okPos != okNeg {
			t.Fatalf("exp10=%d: ok mismatch between signs", exp)
		}
		if !okPos {
			continue
		}
		if gotPos != -gotNeg {
			t.Errorf("exp10=%d: shortcut(+) = %v, shortcut(-) = %v; want negatives of each other", exp, gotPos, gotNeg)
		}
	}
}
