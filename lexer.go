// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

// lex scans text, which must be an RFC 7159 number in its entirety (not
// merely a prefix of text), and returns the equivalent canonicalNumber.
//
//	number   = [ '-' ] int [ frac ] [ exp ]
//	int      = '0' | nonzero-digit *digit
//	frac     = '.' 1*digit
//	exp      = ('e' | 'E') [ '+' | '-' ] 1*digit
//
// Unlike the teacher's (*Decimal).scan, which reads from an io.ByteScanner
// to also serve fmt.Scanner, lex works directly over the input string with
// a plain index: this parser never needs to stop short of the full text
// (ParseDouble's contract is "the whole string is one number, or it
// isn't"), so the extra reader indirection the teacher needs for %v-style
// scanning buys nothing here and is dropped.
//
// lex allocates nothing except the *MalformedNumber it returns on a grammar
// violation; the canonicalNumber returned alongside that error holds
// whatever was scanned before the violation and carries no meaning.
func lex(text string) (canonicalNumber, error) {
	var n canonicalNumber
	i, ln := 0, len(text)

	if ln == 0 {
		return n, malformed(text, 0, "empty input")
	}

	if text[0] == '-' {
		n.negative = true
		i++
	}
	if i >= ln || !isDigit(text[i]) {
		return n, malformed(text, i, "expected digit")
	}

	var digitsSeen int
	var fracDigitsCounted int32
	var intDigitsTruncated int32

	addDigit := func(d byte, afterPoint bool) {
		if n.mantissa == 0 && d == '0' {
			// Leading zeros are not significant digits: they use none of
			// the mantissa's budget, but one after the point still scales.
			if afterPoint {
				fracDigitsCounted++
			}
			return
		}
		if digitsSeen < maxMantissaDigits {
			n.mantissa = n.mantissa*10 + uint64(d-'0')
			digitsSeen++
			if afterPoint {
				fracDigitsCounted++
			}
		} else {
			n.truncated = true
			if !afterPoint {
				intDigitsTruncated++
			}
		}
	}

	// int part: '0' | nonzero-digit *digit
	if text[i] == '0' {
		addDigit(text[i], false)
		i++
		if i < ln && isDigit(text[i]) {
			return n, malformed(text, i, "leading zeros are not permitted")
		}
	} else {
		for i < ln && isDigit(text[i]) {
			addDigit(text[i], false)
			i++
		}
	}

	// frac: '.' 1*digit
	if i < ln && text[i] == '.' {
		i++
		if i >= ln || !isDigit(text[i]) {
			return n, malformed(text, i, "expected digit after decimal point")
		}
		for i < ln && isDigit(text[i]) {
			addDigit(text[i], true)
			i++
		}
	}

	// exp: ('e'|'E') ['+'|'-'] 1*digit
	var explicitExp int64
	if i < ln && (text[i] == 'e' || text[i] == 'E') {
		i++
		expNeg := false
		if i < ln && (text[i] == '+' || text[i] == '-') {
			expNeg = text[i] == '-'
			i++
		}
		if i >= ln || !isDigit(text[i]) {
			return n, malformed(text, i, "expected digit in exponent")
		}
		const saturateBound = 1_000_000
		for i < ln && isDigit(text[i]) {
			if explicitExp < saturateBound {
				explicitExp = explicitExp*10 + int64(text[i]-'0')
			}
			i++
		}
		if explicitExp > saturateBound {
			explicitExp = saturateBound
		}
		if expNeg {
			explicitExp = -explicitExp
		}
	}

	if i != ln {
		return n, malformed(text, i, "unexpected trailing character")
	}

	n.exp10 = int32(explicitExp) - fracDigitsCounted + intDigitsTruncated
	return n, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
