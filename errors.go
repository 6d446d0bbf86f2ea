// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bindata

import "errors"

// Error kinds shared by the codec packages. Errors returned by the ber and
// bitfield packages wrap one of these sentinels, so callers can classify
// failures with [errors.Is] without depending on message contents. None of
// these conditions is retried internally; a failed operation aborts and
// leaves its target unmodified.
var (
	// ErrInvalidTag reports that the tag class or tag number of a value does
	// not match what the requested decode operation expects.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidObjectID reports a malformed object identifier, either as a
	// byte payload or as a dotted decimal string.
	ErrInvalidObjectID = errors.New("invalid object identifier")

	// ErrUnsupported reports an input that is valid but deliberately not
	// implemented. It is returned instead of producing incorrect data.
	ErrUnsupported = errors.New("unsupported feature")

	// ErrOutOfRange reports a value or encoding that does not fit its
	// destination: a bit-field value exceeding its declared width, an
	// invalid field declaration, access to an unknown field, or content
	// octets whose length is not valid for the requested type.
	ErrOutOfRange = errors.New("out of range")
)
