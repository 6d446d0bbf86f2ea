// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/PenguinOwl/bindata"
)

// Object identifier arcs after the joint leading octet are encoded base 128:
// each arc is split into 7-bit groups, most significant group first, and
// every octet except the last of an arc has its top bit set. This is the
// general X.690 continuation scheme; arcs are limited only by the size of the
// Go uint type.

// parseArcs decodes a sequence of base-128 encoded arcs. A final octet with
// its continuation bit set and arcs exceeding the uint range are reported as
// errors wrapping [bindata.ErrInvalidObjectID].
func parseArcs(p []byte) ([]uint, error) {
	var arcs []uint
	var arc uint
	pending := false
	for _, b := range p {
		if arc>>(bits.UintSize-7) != 0 {
			return nil, fmt.Errorf("ber: %w: arc too large", bindata.ErrInvalidObjectID)
		}
		arc = arc<<7 | uint(b&0x7f)
		if b&0x80 != 0 {
			pending = true
			continue
		}
		arcs = append(arcs, arc)
		arc = 0
		pending = false
	}
	if pending {
		return nil, fmt.Errorf("ber: %w: truncated arc", bindata.ErrInvalidObjectID)
	}
	return arcs, nil
}

// parseArcString parses a single decimal arc of a dotted identifier.
func parseArcString(s string) (uint, error) {
	a, err := strconv.ParseUint(s, 10, bits.UintSize)
	if err != nil {
		return 0, fmt.Errorf("ber: %w: arc %q: %v", bindata.ErrInvalidObjectID, s, err)
	}
	return uint(a), nil
}

// base128Len returns the number of octets needed to encode n base 128.
func base128Len(n uint) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// appendBase128 appends the base-128 encoding of n to dst.
func appendBase128(dst []byte, n uint) []byte {
	for j := base128Len(n) - 1; j >= 0; j-- {
		b := byte(n>>(j*7)) & 0x7f
		if j != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
