// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var lexTests = []struct {
	text string
	want canonicalNumber
}{
	{"0", canonicalNumber{}},
	{"-0", canonicalNumber{negative: true}},
	{"0.0", canonicalNumber{exp10: -1}},
	{"0e9", canonicalNumber{exp10: 9}},
	{"1", canonicalNumber{mantissa: 1}},
	{"-1", canonicalNumber{negative: true, mantissa: 1}},
	{"123", canonicalNumber{mantissa: 123}},
	{"1.5", canonicalNumber{mantissa: 15, exp10: -1}},
	{"1.50", canonicalNumber{mantissa: 150, exp10: -2}},
	{"1e10", canonicalNumber{mantissa: 1, exp10: 10}},
	{"1e+10", canonicalNumber{mantissa: 1, exp10: 10}},
	{"1e-10", canonicalNumber{mantissa: 1, exp10: -10}},
	{"1E10", canonicalNumber{mantissa: 1, exp10: 10}},
	{"1.5e2", canonicalNumber{mantissa: 15, exp10: 1}},
	{"123.456e7", canonicalNumber{mantissa: 123456, exp10: 4}},
	{"9999999999999999999", canonicalNumber{mantissa: 9999999999999999999}},
	{
		"99999999999999999999",
		canonicalNumber{mantissa: 9999999999999999999, exp10: 1, truncated: true},
	},
	{
		"1.99999999999999999995",
		canonicalNumber{mantissa: 1999999999999999999, exp10: -18, truncated: true},
	},
}

func TestLex(t *testing.T) {
	for _, tt := range lexTests {
		got, err := lex(tt.text)
		if err != nil {
			t.Errorf("lex(%q) returned error %v; want %+v", tt.text, err, tt.want)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(canonicalNumber{})); diff != "" {
			t.Errorf("lex(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

var lexRejectTests = []string{
	"",
	"+1",
	"01",
	"1.",
	".5",
	"-",
	"- 1",
	" 1",
	"1 ",
	"1e",
	"1e+",
	"1e-",
	"1.5.6",
	"NaN",
	"Infinity",
	"-Infinity",
	"0x1",
	"1,5",
	"--1",
}

func TestLexRejects(t *testing.T) {
	for _, text := range lexRejectTests {
		if _, err := lex(text); err == nil {
			t.Errorf("lex(%q) succeeded; want a MalformedNumber error", text)
		}
	}
}

func TestLexRejectsHaveMalformedNumberType(t *testing.T) {
	_, err := lex("not a number")
	if err == nil {
		t.Fatal("lex succeeded; want error")
	}
	var mn *MalformedNumber
	if _, ok := err.(*MalformedNumber); !ok {
		t.Errorf("lex returned %T; want %T", err, mn)
	}
}
