// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitfield packs and unpacks sequences of named, fixed-width bit
// fields. A layout is declared on a [Builder] and finalized into an immutable
// [Schema]; binding the schema with [Schema.New] yields a [Struct] whose
// fields can be read from and written to a byte stream.
//
// Bits are numbered from the most significant bit of the first byte to the
// least significant bit of the last byte, matching network bit order. Fields
// occupy consecutive bits in declaration order with no padding and no
// re-alignment between fields, so a field may span byte boundaries. The byte
// order passed to [Struct.Read] and [Struct.Write] affects only how the
// extracted bits of a multi-byte field are assembled into its integer value,
// never the order in which bits are consumed from the stream.
package bitfield

import (
	"encoding/binary"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/PenguinOwl/bindata"
)

// Field describes a single named bit field in a layout.
type Field struct {
	Name  string
	Width int // width in bits, 1 to 64
}

// A Builder accumulates field declarations for a [Schema]. The zero value is
// an empty layout ready for use. Builders are write-only: once [Builder.Apply]
// has produced a Schema, further declarations on the Builder do not affect it.
type Builder struct {
	fields []Field
}

// Add appends a field of the given bit width to the layout and returns b to
// allow chaining. Validation is deferred to [Builder.Apply].
func (b *Builder) Add(width int, name string) *Builder {
	b.fields = append(b.fields, Field{Name: name, Width: width})
	return b
}

// Apply validates the declared layout and finalizes it into an immutable
// [Schema]. A field width outside [1, 64], an empty field name and a
// duplicate field name are each reported as an error wrapping
// [bindata.ErrOutOfRange]; all violations are collected and returned
// together.
func (b *Builder) Apply() (*Schema, error) {
	var errs error
	index := make(map[string]int, len(b.fields))
	total := 0
	for i, f := range b.fields {
		if f.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("bitfield: %w: field %d has no name", bindata.ErrOutOfRange, i))
		}
		if f.Width < 1 || f.Width > 64 {
			errs = multierr.Append(errs, fmt.Errorf("bitfield: %w: field %q has width %d", bindata.ErrOutOfRange, f.Name, f.Width))
		}
		if _, ok := index[f.Name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("bitfield: %w: duplicate field %q", bindata.ErrOutOfRange, f.Name))
			continue
		}
		index[f.Name] = i
		total += f.Width
	}
	if errs != nil {
		return nil, errs
	}
	s := &Schema{
		fields:    make([]Field, len(b.fields)),
		index:     index,
		totalBits: total,
	}
	copy(s.fields, b.fields)
	return s, nil
}

// A Schema is a finalized bit-field layout. Schemas are immutable and can be
// shared freely; per-instance field storage lives in the [Struct] values
// created by [Schema.New].
type Schema struct {
	fields    []Field
	index     map[string]int
	totalBits int
}

// NumBits returns the total bit width of the layout.
func (s *Schema) NumBits() int {
	return s.totalBits
}

// Size returns the number of stream bytes the layout occupies. This is the
// total bit width rounded up to whole bytes.
func (s *Schema) Size() int {
	return (s.totalBits + 7) / 8
}

// Fields returns the declared fields in order.
func (s *Schema) Fields() []Field {
	fs := make([]Field, len(s.fields))
	copy(fs, s.fields)
	return fs
}

// New binds the schema to fresh field storage. All fields of the returned
// Struct are zero until set explicitly or populated by [Struct.Read].
func (s *Schema) New() *Struct {
	return &Struct{schema: s, values: make([]uint64, len(s.fields))}
}

// A Struct is a bound instance of a [Schema]: a mapping from field name to an
// unsigned integer value of that field's width. A Struct must not be shared
// between goroutines without external synchronization.
type Struct struct {
	schema *Schema
	values []uint64
}

// Schema returns the layout st is bound to.
func (st *Struct) Schema() *Schema {
	return st.schema
}

// Get returns the current value of the named field. Unknown field names fail
// with an error wrapping [bindata.ErrOutOfRange].
func (st *Struct) Get(name string) (uint64, error) {
	i, ok := st.schema.index[name]
	if !ok {
		return 0, fmt.Errorf("bitfield: %w: unknown field %q", bindata.ErrOutOfRange, name)
	}
	return st.values[i], nil
}

// Set assigns a value to the named field. Values of a field of width w must
// be below 2^w; larger values and unknown field names fail with an error
// wrapping [bindata.ErrOutOfRange].
func (st *Struct) Set(name string, v uint64) error {
	i, ok := st.schema.index[name]
	if !ok {
		return fmt.Errorf("bitfield: %w: unknown field %q", bindata.ErrOutOfRange, name)
	}
	if w := st.schema.fields[i].Width; w < 64 && v >= uint64(1)<<w {
		return fmt.Errorf("bitfield: %w: value %d does not fit field %q of width %d", bindata.ErrOutOfRange, v, name, w)
	}
	st.values[i] = v
	return nil
}

// Read consumes exactly [Schema.Size] bytes from r and populates every field
// from the bitstream in declaration order. order selects how the extracted
// bits of fields wider than 8 bits are assembled: [binary.BigEndian] keeps
// the first-extracted bits most significant, [binary.LittleEndian] reverses
// the order of the extracted byte groups, with the leading group of a field
// whose width is not a multiple of 8 keeping its partial size so that the
// assembled value always fits the field. A short stream fails with io.ErrUnexpectedEOF;
// other stream errors are propagated unchanged. On failure no field is
// modified.
func (st *Struct) Read(r io.Reader, order binary.ByteOrder) error {
	buf := make([]byte, st.schema.Size())
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("bitfield: read: %w", noEOF(err))
	}
	pos := 0
	for i, f := range st.schema.fields {
		v := extractBits(buf, pos, f.Width)
		if isLittleEndian(order) {
			v = gatherLE(v, f.Width)
		}
		st.values[i] = v
		pos += f.Width
	}
	return nil
}

// Write serializes the current field values back into a contiguous bitstream
// and writes it to w as [Schema.Size] whole bytes, zero-padding the unused
// low-order bits of the final byte. order must match the order used with
// [Struct.Read] for the round trip to reproduce the original stream.
func (st *Struct) Write(w io.Writer, order binary.ByteOrder) error {
	buf := make([]byte, st.schema.Size())
	pos := 0
	for i, f := range st.schema.fields {
		v := st.values[i]
		if isLittleEndian(order) {
			v = scatterLE(v, f.Width)
		}
		depositBits(buf, pos, f.Width, v)
		pos += f.Width
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("bitfield: write: %w", err)
	}
	return nil
}

// isLittleEndian probes order instead of comparing against
// binary.LittleEndian so that any ByteOrder implementation works.
func isLittleEndian(order binary.ByteOrder) bool {
	return order != nil && order.Uint16([]byte{0x01, 0x00}) == 1
}

// extractBits reads n bits MSB-first from buf starting at bit position pos.
func extractBits(buf []byte, pos, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		byteIdx := (pos + i) / 8
		bitIdx := 7 - (pos+i)%8
		v = v<<1 | uint64(buf[byteIdx]>>bitIdx&1)
	}
	return v
}

// depositBits writes the low n bits of v MSB-first into buf starting at bit
// position pos. buf must be zeroed at the target positions.
func depositBits(buf []byte, pos, n int, v uint64) {
	for i := n - 1; i >= 0; i-- {
		if v&1 != 0 {
			buf[(pos+i)/8] |= 1 << (7 - (pos+i)%8)
		}
		v >>= 1
	}
}

// gatherLE reassembles a value extracted MSB-first from a width-bit field so
// that earlier stream byte groups end up less significant. If width is not a
// multiple of 8 the leading stream group carries only width%8 bits; the
// groups keep their own sizes during reassembly, which makes the mapping a
// bijection on [0, 2^width). Read therefore never stores a value that
// exceeds the field's range.
func gatherLE(v uint64, width int) uint64 {
	var out uint64
	shift := 0
	for width > 0 {
		g := width % 8
		if g == 0 {
			g = 8
		}
		width -= g
		out |= (v >> width & (1<<g - 1)) << shift
		shift += g
	}
	return out
}

// scatterLE splits a field value into its byte groups, least significant
// first, and lays them out in stream order. It is the inverse of gatherLE;
// for widths that are a multiple of 8 both reduce to the same byte reversal.
func scatterLE(v uint64, width int) uint64 {
	var out uint64
	shift := 0
	for width > 0 {
		g := width % 8
		if g == 0 {
			g = 8
		}
		width -= g
		out |= (v >> shift & (1<<g - 1)) << width
		shift += g
	}
	return out
}

// noEOF returns err, unless err == io.EOF, in which case it returns
// io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
