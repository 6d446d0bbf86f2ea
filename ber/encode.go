// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/PenguinOwl/bindata"
)

// SetBool encodes b as an ASN.1 BOOLEAN into v: a single octet, 0xFF for true
// and 0x00 for false.
func (v *Value) SetBool(b bool) {
	if b {
		v.payload = []byte{0xff}
	} else {
		v.payload = []byte{0x00}
	}
	v.tag = bindata.Universal(bindata.TagBoolean)
}

// SetInt64 encodes i as an ASN.1 INTEGER into v. The content octets are the
// minimal-length two's-complement big-endian representation: leading 0x00
// octets (for non-negative values) or 0xFF octets (for negative values) are
// stripped as long as the following octet's sign bit still agrees with the
// sign of i. The values 0 and -1 encode as the single octets 0x00 and 0xFF.
func (v *Value) SetInt64(i int64) {
	var bs [8]byte
	binary.BigEndian.PutUint64(bs[:], uint64(i))
	n := 0
	for n < 7 {
		if bs[n] == 0x00 && bs[n+1]&0x80 == 0 {
			n++
			continue
		}
		if bs[n] == 0xff && bs[n+1]&0x80 != 0 {
			n++
			continue
		}
		break
	}
	v.payload = append([]byte(nil), bs[n:]...)
	v.tag = bindata.Universal(bindata.TagInteger)
}

// SetObjectID encodes the object identifier given in dotted decimal notation
// as an ASN.1 OBJECT IDENTIFIER into v. The identifier must consist of at
// least one arc, the first arc must not exceed 2 and, if a second arc is
// present, it must not exceed 39 so that the joint leading octet decodes
// unambiguously. Violations fail with an error wrapping
// [bindata.ErrInvalidObjectID] and leave v unmodified.
func (v *Value) SetObjectID(s string) error {
	arcs, err := parseDotted(s)
	if err != nil {
		return err
	}

	p := make([]byte, 0, len(s)/2+1)
	if len(arcs) == 1 {
		p = append(p, byte(40*arcs[0]))
	} else {
		p = append(p, byte(40*arcs[0]+arcs[1]))
		for _, a := range arcs[2:] {
			p = appendBase128(p, a)
		}
	}
	v.payload = p
	v.tag = bindata.Universal(bindata.TagOID)
	return nil
}

// parseDotted parses and validates a dotted decimal object identifier.
func parseDotted(s string) ([]uint, error) {
	if s == "" {
		return nil, fmt.Errorf("ber: %w: empty identifier", bindata.ErrInvalidObjectID)
	}
	parts := strings.Split(s, ".")
	arcs := make([]uint, len(parts))
	for i, part := range parts {
		a, err := parseArcString(part)
		if err != nil {
			return nil, err
		}
		arcs[i] = a
	}
	if arcs[0] > 2 {
		return nil, fmt.Errorf("ber: %w: first arc %d exceeds 2", bindata.ErrInvalidObjectID, arcs[0])
	}
	if len(arcs) > 1 && arcs[1] > 39 {
		return nil, fmt.Errorf("ber: %w: second arc %d exceeds 39", bindata.ErrInvalidObjectID, arcs[1])
	}
	return arcs, nil
}

// SetOctetString encodes s as an ASN.1 OCTET STRING into v. s is interpreted
// as a hexadecimal string: an optional 0x or 0X prefix and any characters
// outside [0-9a-fA-F] are discarded, and an odd number of remaining hex
// digits is left-padded with a single '0'.
func (v *Value) SetOctetString(s string) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	digits := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return r
		}
		return -1
	}, s)
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	p, _ := hex.DecodeString(digits) // cannot fail on filtered input
	v.payload = p
	v.tag = bindata.Universal(bindata.TagOctetString)
}

// SetText encodes s as an ASN.1 UTF8String into v. The content octets are the
// UTF-8 encoding of s. To use one of the other character string types see
// [Value.SetTextWithTag].
func (v *Value) SetText(s string) {
	v.payload = []byte(s)
	v.tag = bindata.Universal(bindata.TagUTF8String)
}

// SetTextWithTag encodes s like [Value.SetText] but tags v with the given
// universal tag number. The number must identify one of the supported
// character string types UTF8String, CHARACTER STRING, PrintableString or
// IA5String; any other number fails with an error wrapping
// [bindata.ErrInvalidTag] and leaves v unmodified. No character-set
// validation is performed for the chosen string type.
func (v *Value) SetTextWithTag(s string, number uint) error {
	switch number {
	case bindata.TagUTF8String,
		bindata.TagCharacterString,
		bindata.TagPrintableString,
		bindata.TagIA5String:
	default:
		return fmt.Errorf("ber: %w: %s is not a supported string type",
			bindata.ErrInvalidTag, bindata.Universal(number))
	}
	v.payload = []byte(s)
	v.tag = bindata.Universal(number)
	return nil
}

// SetBitString encodes the given whole-byte bit string as an ASN.1 BIT STRING
// into v. The content octets consist of a zero unused-bit count octet
// followed by the bits packed into bytes, mirroring the convention accepted
// by [Value.BitString].
func (v *Value) SetBitString(bits []byte) {
	p := make([]byte, len(bits)+1)
	copy(p[1:], bits)
	v.payload = p
	v.tag = bindata.Universal(bindata.TagBitString)
}
