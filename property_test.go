// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import (
	"math"
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// fuzzIterations reads EISELFLOAT_FUZZ_N, defaulting to a count that keeps
// `go test` fast; set it higher in CI to exercise the full round-trip
// property at scale.
func fuzzIterations() int {
	const def = 4000
	v := os.Getenv("EISELFLOAT_FUZZ_N")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// TestRoundTrip generates random finite float64 values, formats each with
// strconv's shortest round-tripping decimal representation, and checks
// that ParseDouble recovers the exact original bit pattern. This is the
// universal correctness property described in section 8: the shortest
// decimal that round-trips through the standard library must also
// round-trip through ParseDouble.
func TestRoundTrip(t *testing.T) {
	n := fuzzIterations()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		bits := rng.Uint64()
		want := math.Float64frombits(bits)
		if math.IsNaN(want) || math.IsInf(want, 0) {
			continue
		}
		text := strconv.FormatFloat(want, 'g', -1, 64)
		got, err := ParseDouble(text)
		require.NoErrorf(t, err, "ParseDouble(%q) (round %d)", text, i)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("round %d: ParseDouble(%q) = %#016x; want %#016x",
				i, text, math.Float64bits(got), bits)
		}
	}
}

// TestRoundTripSmallIntegers exercises the shortcut path directly: every
// small non-negative integer is exactly representable and must parse back
// to the identical value.
func TestRoundTripSmallIntegers(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		v := rng.Int63n(1 << 53)
		text := strconv.FormatInt(v, 10)
		got, err := ParseDouble(text)
		require.NoError(t, err)
		want := float64(v)
		if got != want {
			t.Errorf("ParseDouble(%q) = %v; want %v", text, got, want)
		}
	}
}

// TestSignIsAlwaysHonored checks that negating a literal's text always
// negates ParseDouble's result, including for signed zero.
func TestSignIsAlwaysHonored(t *testing.T) {
	texts := []string{"0", "0.0", "1", "3.14159", "1e300", "1e-300", "123456789.987654321"}
	for _, text := range texts {
		pos, err := ParseDouble(text)
		require.NoError(t, err)
		neg, err := ParseDouble("-" + text)
		require.NoError(t, err)
		if math.Signbit(pos) == math.Signbit(neg) {
			t.Errorf("ParseDouble(%q) and ParseDouble(%q) have the same sign", text, "-"+text)
		}
		if math.Abs(pos) != math.Abs(neg) {
			t.Errorf("ParseDouble(%q) and ParseDouble(%q) differ in magnitude: %v vs %v", text, "-"+text, pos, neg)
		}
	}
}
