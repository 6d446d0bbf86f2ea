// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements encoding and decoding of values of the ASN.1
// universal types using the Basic Encoding Rules (BER). The Basic Encoding
// Rules are defined in [Rec. ITU-T X.690]. See also “[A Layman's Guide to a
// Subset of ASN.1, BER, and DER]”.
//
// This package operates below the TLV envelope. A [Value] holds the tag and
// the content octets of a single data value encoding; the identifier and
// length octets are the concern of the surrounding TLV layer. Before a decode
// accessor is called, that layer must have populated the tag and the content
// octets (see [NewValue]). After an encode setter returns, the tag and the
// content octets are ready and the caller emits the length header.
//
// All decode accessors first verify that the tag identifies the expected
// universal type and fail with an error wrapping [bindata.ErrInvalidTag]
// otherwise. The supported types are BOOLEAN, INTEGER, OBJECT IDENTIFIER,
// OCTET STRING, BIT STRING and the UTF8String, CHARACTER STRING,
// PrintableString and IA5String character string types.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

import (
	"fmt"

	"github.com/PenguinOwl/bindata"
)

// A Value represents a single ASN.1 data value: a tag together with the
// content octets of its encoding. The content octets are owned exclusively by
// the Value. [NewValue] copies the bytes it is given, [Value.Payload] returns
// a fresh copy and every encode setter replaces the payload with a newly
// allocated slice, so no two Values and no caller-held slices alias each
// other across re-encodes.
//
// The zero Value has tag [UNIVERSAL 0] (reserved) and an empty payload. A
// Value must not be shared between goroutines without external
// synchronization.
type Value struct {
	tag     bindata.Tag
	payload []byte
}

// NewValue returns a Value with the given tag and content octets, as located
// by a TLV header parser. The payload bytes are copied.
func NewValue(tag bindata.Tag, payload []byte) *Value {
	v := &Value{tag: tag}
	if len(payload) > 0 {
		v.payload = make([]byte, len(payload))
		copy(v.payload, payload)
	}
	return v
}

// Tag returns the tag identifying the type of v.
func (v *Value) Tag() bindata.Tag {
	return v.tag
}

// Len returns the number of content octets of v. This is the L that a TLV
// layer encodes into the length header.
func (v *Value) Len() int {
	return len(v.payload)
}

// Payload returns a copy of the content octets of v.
func (v *Value) Payload() []byte {
	if len(v.payload) == 0 {
		return nil
	}
	p := make([]byte, len(v.payload))
	copy(p, v.payload)
	return p
}

// String returns a string representation of v. The byte contents of v are
// only included if they are short enough.
func (v *Value) String() string {
	if len(v.payload) > 24 {
		return fmt.Sprintf("Value{%s {%d bytes}}", v.tag.String(), len(v.payload))
	}
	return fmt.Sprintf("Value{%s {% X}}", v.tag.String(), v.payload)
}

// expectUniversal verifies that the tag of v is one of the given numbers in
// the universal class. It returns an error wrapping [bindata.ErrInvalidTag]
// otherwise.
func (v *Value) expectUniversal(numbers ...uint) error {
	if v.tag.Class != bindata.ClassUniversal {
		return fmt.Errorf("ber: %w: %s is not universal", bindata.ErrInvalidTag, v.tag)
	}
	for _, n := range numbers {
		if v.tag.Number == n {
			return nil
		}
	}
	return fmt.Errorf("ber: %w: unexpected %s", bindata.ErrInvalidTag, v.tag)
}
