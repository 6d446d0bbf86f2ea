// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/PenguinOwl/bindata"
)

// Bool decodes the content octets of v as an ASN.1 BOOLEAN. Following the
// permissive BER rule any nonzero octet decodes to true, not only the 0xFF
// octet that DER mandates. The encoding must consist of exactly one octet;
// other lengths fail with an error wrapping [bindata.ErrOutOfRange].
func (v *Value) Bool() (bool, error) {
	if err := v.expectUniversal(bindata.TagBoolean); err != nil {
		return false, err
	}
	if len(v.payload) != 1 {
		return false, fmt.Errorf("ber: %w: boolean of %d octets", bindata.ErrOutOfRange, len(v.payload))
	}
	return v.payload[0] != 0, nil
}

// Int64 decodes the content octets of v as an ASN.1 INTEGER. The content
// octets are the two's-complement big-endian representation of the value.
// An empty encoding decodes to 0. Encodings longer than 8 octets do not fit
// an int64 and fail with an error wrapping [bindata.ErrOutOfRange]; no
// minimality check is performed on shorter encodings.
func (v *Value) Int64() (int64, error) {
	if err := v.expectUniversal(bindata.TagInteger); err != nil {
		return 0, err
	}
	n := len(v.payload)
	if n == 0 {
		return 0, nil
	}
	if n > 8 {
		return 0, fmt.Errorf("ber: %w: integer of %d octets exceeds 64 bits", bindata.ErrOutOfRange, n)
	}
	var u uint64
	for _, b := range v.payload {
		u = u<<8 | uint64(b)
	}
	// Shift up and down in order to sign extend the result.
	i := int64(u)
	i <<= 64 - n*8
	i >>= 64 - n*8
	return i, nil
}

// ObjectID decodes the content octets of v as an ASN.1 OBJECT IDENTIFIER and
// returns its dotted decimal notation. An empty encoding decodes to the empty
// string. The leading octet encodes the first two arcs jointly; a first arc
// greater than 2 and a truncated or oversized arc encoding fail with an error
// wrapping [bindata.ErrInvalidObjectID].
func (v *Value) ObjectID() (string, error) {
	if err := v.expectUniversal(bindata.TagOID); err != nil {
		return "", err
	}
	if len(v.payload) == 0 {
		return "", nil
	}
	second := uint(v.payload[0]) % 40
	first := (uint(v.payload[0]) - second) / 40
	if first > 2 {
		return "", fmt.Errorf("ber: %w: first arc %d exceeds 2", bindata.ErrInvalidObjectID, first)
	}
	arcs, err := parseArcs(v.payload[1:])
	if err != nil {
		return "", err
	}

	var s strings.Builder
	s.Grow(32)
	s.WriteString(strconv.FormatUint(uint64(first), 10))
	s.WriteByte('.')
	s.WriteString(strconv.FormatUint(uint64(second), 10))
	for _, a := range arcs {
		s.WriteByte('.')
		s.WriteString(strconv.FormatUint(uint64(a), 10))
	}
	return s.String(), nil
}

// OctetString decodes the content octets of v as an ASN.1 OCTET STRING and
// returns their hexadecimal representation, two lower-case hex characters per
// octet.
func (v *Value) OctetString() (string, error) {
	if err := v.expectUniversal(bindata.TagOctetString); err != nil {
		return "", err
	}
	return hex.EncodeToString(v.payload), nil
}

// Text decodes the content octets of v as a character string. The tag of v
// must be one of UTF8String, CHARACTER STRING, PrintableString or IA5String.
// The content octets are returned as a Go string without validating the
// character-set constraints of the specific string type.
func (v *Value) Text() (string, error) {
	err := v.expectUniversal(
		bindata.TagUTF8String,
		bindata.TagCharacterString,
		bindata.TagPrintableString,
		bindata.TagIA5String,
	)
	if err != nil {
		return "", err
	}
	return string(v.payload), nil
}

// BitString decodes the content octets of v as an ASN.1 BIT STRING and
// returns the bits packed into bytes. The first content octet holds the
// number of unused trailing bits; an encoding without it fails with an error
// wrapping [bindata.ErrOutOfRange]. Only whole-byte bit strings are
// supported: a nonzero unused-bit count fails with an error wrapping
// [bindata.ErrUnsupported] rather than silently truncating the final octet.
func (v *Value) BitString() ([]byte, error) {
	if err := v.expectUniversal(bindata.TagBitString); err != nil {
		return nil, err
	}
	if len(v.payload) == 0 {
		return nil, fmt.Errorf("ber: %w: bit string without unused-bit octet", bindata.ErrOutOfRange)
	}
	if unused := v.payload[0]; unused != 0 {
		return nil, fmt.Errorf("ber: %w: bit string with %d unused bits", bindata.ErrUnsupported, unused)
	}
	if len(v.payload) == 1 {
		return nil, nil
	}
	bits := make([]byte, len(v.payload)-1)
	copy(bits, v.payload[1:])
	return bits, nil
}
