// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat

import "fmt"

// MalformedNumber reports that a text literal does not conform to the
// RFC 7159 number grammar (lexer.go). It is the only error ParseDouble
// ever returns.
type MalformedNumber struct {
	Text string
	Pos  int
	Msg  string
}

func (e *MalformedNumber) Error() string {
	return fmt.Sprintf("eiselfloat: malformed number %q at offset %d: %s", e.Text, e.Pos, e.Msg)
}

func malformed(text string, pos int, msg string) error {
	return &MalformedNumber{Text: text, Pos: pos, Msg: msg}
}
