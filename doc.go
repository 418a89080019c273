// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package eiselfloat parses JSON-conformant decimal number literals (the
RFC 7159 number grammar) directly to the nearest binary64, without an
intermediate arbitrary-precision decimal value.

Converting decimal text to the correctly rounded binary64 is normally done
in two steps: parse the text into an exact decimal (or rational) value,
then round that value to the nearest double. Doing so for every number in
a large JSON document is wasteful, since the overwhelming majority of
literals round-trip exactly through a handful of float64 multiplies.

ParseDouble instead tries three strategies, cheapest first, each one
falling through to the next only when it cannot prove its answer is
correctly rounded:

  - a direct float64 multiply/divide against a table of exact powers of
    ten, valid whenever the mantissa and the scaling power of ten are both
    exactly representable in a double;
  - the Eisel-Lemire algorithm, a single 128-bit multiplication against a
    tabulated power of ten that resolves almost every remaining case in
    constant time;
  - an exact fallback built on math/big, reached only for the rare
    literals the first two strategies cannot disambiguate.

	f, err := eiselfloat.ParseDouble("3.14159")

ParseDouble returns an error of type *MalformedNumber for any text that is
not a complete RFC 7159 number: no "NaN"/"Infinity", no leading '+', no
leading zeros beyond a single '0', no surrounding whitespace, and no
partial matches -- the whole string must be one number.
*/
package eiselfloat
