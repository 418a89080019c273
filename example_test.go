// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eiselfloat_test

import (
	"fmt"

	"github.com/db47h/eiselfloat"
)

func ExampleParseDouble() {
	f, err := eiselfloat.ParseDouble("3.14159")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output:
	// 3.14159
}

func ExampleParseDouble_malformed() {
	_, err := eiselfloat.ParseDouble("+1")
	fmt.Println(err)
	// Output:
	// eiselfloat: malformed number "+1" at offset 0: expected digit
}
