// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import (
	"math"
	"testing"
)

var slowParseTests = []struct {
	text string
	want float64
}{
	{"0", 0},
	{"1", 1},
	{"3.14159", 3.14159},
	{"2.2250738585072012e-308", 2.2250738585072012e-308},
	{"1e308", 1e308},
	{"-1.5", -1.5},
}

func TestSlowParse(t *testing.T) {
	for _, tt := range slowParseTests {
		got, err := slowParse(tt.text)
		if err != nil {
			t.Errorf("slowParse(%q) returned error %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("slowParse(%q) = %v (%#016x); want %v (%#016x)",
				tt.text, got, math.Float64bits(got), tt.want, math.Float64bits(tt.want))
		}
	}
}
