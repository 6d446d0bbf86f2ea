// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bindata

import (
	"fmt"
	"testing"
)

func ExampleTag_String() {
	t1 := Tag{Class: ClassApplication, Number: 17}
	t2 := Tag{Class: ClassContextSpecific, Number: 8}
	t3 := Universal(TagInteger)
	fmt.Println(t1.String())
	fmt.Println(t2.String())
	fmt.Println(t3.String())
	// Output:
	// [APPLICATION 17]
	// [8]
	// [UNIVERSAL 2]
}

func TestClassIsValid(t *testing.T) {
	for c := Class(0); c <= 3; c++ {
		if !c.IsValid() {
			t.Errorf("Class(%d).IsValid() = false", c)
		}
	}
	if Class(4).IsValid() {
		t.Errorf("Class(4).IsValid() = true")
	}
}

func TestClassString(t *testing.T) {
	tests := map[Class]string{
		ClassUniversal:       "Universal",
		ClassApplication:     "Application",
		ClassContextSpecific: "ContextSpecific",
		ClassPrivate:         "Private",
		Class(7):             "Class(7)",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", uint8(c), got, want)
		}
	}
}
