// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var parseDoubleTests = []struct {
	text string
	want float64
}{
	{"0", 0},
	{"-0", math.Copysign(0, -1)},
	{"-0.0", math.Copysign(0, -1)},
	{"0.0", 0},
	{"1", 1},
	{"-1", -1},
	{"3.14159", 3.14159},
	{"0.1", 0.1},
	{"1e10", 1e10},
	{"1e-10", 1e-10},
	{"123456.789", 123456.789},
	{"1e308", 1e308},
	{"1e-323", 1e-323},
	{"5e-324", math.SmallestNonzeroFloat64},
	{"2.2250738585072012e-308", 2.2250738585072012e-308},
	{"1.7976931348623157e308", math.MaxFloat64},
	{"999999999999999999", 999999999999999999},  // 18 digits, no truncation
	{"99999999999999999999", 99999999999999999999}, // 20 digits, truncated path
}

func TestParseDouble(t *testing.T) {
	for _, tt := range parseDoubleTests {
		got, err := ParseDouble(tt.text)
		if err != nil {
			t.Errorf("ParseDouble(%q) returned error %v", tt.text, err)
			continue
		}
		if got != tt.want || math.Signbit(got) != math.Signbit(tt.want) {
			t.Errorf("ParseDouble(%q) = %v (%#016x); want %v (%#016x)",
				tt.text, got, math.Float64bits(got), tt.want, math.Float64bits(tt.want))
		}
	}
}

func TestParseDoubleOverflowsToInf(t *testing.T) {
	got, err := ParseDouble("1e309")
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1), "ParseDouble(1e309) = %v; want +Inf", got)

	got, err = ParseDouble("-1e309")
	require.NoError(t, err)
	require.True(t, math.IsInf(got, -1), "ParseDouble(-1e309) = %v; want -Inf", got)
}

func TestParseDoubleUnderflowsToZero(t *testing.T) {
	got, err := ParseDouble("1e-400")
	require.NoError(t, err)
	require.Zero(t, got)
	require.False(t, math.Signbit(got))

	got, err = ParseDouble("-1e-400")
	require.NoError(t, err)
	require.Zero(t, got)
	require.True(t, math.Signbit(got))
}

var parseDoubleRejectTests = []string{
	"",
	"NaN",
	"Infinity",
	"-Infinity",
	"+1",
	"01",
	"1.",
	".5",
	" 1",
	"1 ",
	"0x1",
}

func TestParseDoubleRejects(t *testing.T) {
	for _, text := range parseDoubleRejectTests {
		_, err := ParseDouble(text)
		require.Error(t, err, "ParseDouble(%q) should have failed", text)
		var mn *MalformedNumber
		require.ErrorAs(t, err, &mn)
	}
}
