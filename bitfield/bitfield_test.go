// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitfield_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"math/rand"
	"testing"

	"go.uber.org/multierr"

	"github.com/PenguinOwl/bindata"
	"github.com/PenguinOwl/bindata/bitfield"
	"github.com/PenguinOwl/bindata/internal/testenv"
)

var makeAR = testenv.MakeAR

// mustApply builds the schema used throughout these tests: three fields of
// widths 7, 2 and 23 bits, 32 bits total.
func mustApply(t *testing.T) *bitfield.Schema {
	t.Helper()
	var b bitfield.Builder
	schema, e := b.Add(7, "version").Add(2, "flags").Add(23, "offset").Apply()
	if e != nil {
		t.Fatalf("Apply(): %v", e)
	}
	return schema
}

func TestApply(t *testing.T) {
	assert, require := makeAR(t)

	schema := mustApply(t)
	assert.Equal(32, schema.NumBits())
	assert.Equal(4, schema.Size())
	require.Len(schema.Fields(), 3)
	assert.Equal(bitfield.Field{Name: "version", Width: 7}, schema.Fields()[0])
}

func TestApplyErrors(t *testing.T) {
	assert, require := makeAR(t)

	var b bitfield.Builder
	b.Add(0, "a").Add(3, "").Add(2, "b").Add(2, "b").Add(65, "c")
	schema, e := b.Apply()
	assert.Nil(schema)
	require.Error(e)
	assert.ErrorIs(e, bindata.ErrOutOfRange)
	assert.Len(multierr.Errors(e), 4)
}

func TestReadGet(t *testing.T) {
	assert, require := makeAR(t)

	st := mustApply(t).New()
	input := testenv.BytesFromHex("AB CD EF 12")
	require.NoError(st.Read(bytes.NewReader(input), binary.BigEndian))

	version, e := st.Get("version")
	require.NoError(e)
	assert.Equal(uint64(0x55), version)
	flags, e := st.Get("flags")
	require.NoError(e)
	assert.Equal(uint64(0x03), flags)
	offset, e := st.Get("offset")
	require.NoError(e)
	assert.Equal(uint64(0x4DEF12), offset)
}

func TestReadLittleEndian(t *testing.T) {
	assert, require := makeAR(t)

	st := mustApply(t).New()
	input := testenv.BytesFromHex("AB CD EF 12")
	require.NoError(st.Read(bytes.NewReader(input), binary.LittleEndian))

	// single-byte fields are unaffected by the byte order
	version, e := st.Get("version")
	require.NoError(e)
	assert.Equal(uint64(0x55), version)
	// the stream groups of the 23-bit field (7, 8 and 8 bits wide) are
	// assembled least significant first: 0x4D | 0xEF<<7 | 0x12<<15
	offset, e := st.Get("offset")
	require.NoError(e)
	assert.Equal(uint64(0x977CD), offset)
}

func TestSetWrite(t *testing.T) {
	assert, require := makeAR(t)

	var b bitfield.Builder
	schema, e := b.Add(3, "mode").Add(6, "unit").Apply()
	require.NoError(e)
	assert.Equal(9, schema.NumBits())
	assert.Equal(2, schema.Size())

	st := schema.New()
	require.NoError(st.Set("mode", 0b101))
	require.NoError(st.Set("unit", 0b110011))

	var buf bytes.Buffer
	require.NoError(st.Write(&buf, binary.BigEndian))
	// 101 110011 followed by 7 zero padding bits
	assert.Equal(testenv.BytesFromHex("B9 80"), buf.Bytes())
}

func TestRoundTrip(t *testing.T) {
	assert, require := makeAR(t)

	rnd := rand.New(rand.NewSource(1))
	schema := mustApply(t)
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		for i := 0; i < 100; i++ {
			input := make([]byte, schema.Size())
			rnd.Read(input)

			st := schema.New()
			require.NoError(st.Read(bytes.NewReader(input), order))
			var buf bytes.Buffer
			require.NoError(st.Write(&buf, order))
			assert.Equal(input, buf.Bytes(), "order=%v input=% X", order, input)
		}
	}
}

func TestLittleEndianSetWriteGet(t *testing.T) {
	assert, require := makeAR(t)

	var b bitfield.Builder
	schema, e := b.Add(23, "f").Apply()
	require.NoError(e)

	// 0x80 has bit 7 set; a swap of full 8-bit groups would push it beyond
	// the field's 23 deposit bits and lose it.
	st := schema.New()
	require.NoError(st.Set("f", 0x80))
	var buf bytes.Buffer
	require.NoError(st.Write(&buf, binary.LittleEndian))
	assert.Equal(testenv.BytesFromHex("00 02 00"), buf.Bytes())

	back := schema.New()
	require.NoError(back.Read(bytes.NewReader(buf.Bytes()), binary.LittleEndian))
	f, e := back.Get("f")
	require.NoError(e)
	assert.Equal(uint64(0x80), f)
}

func TestLittleEndianReadRange(t *testing.T) {
	assert, require := makeAR(t)

	var b bitfield.Builder
	schema, e := b.Add(23, "f").Apply()
	require.NoError(e)

	st := schema.New()
	require.NoError(st.Read(bytes.NewReader(testenv.BytesFromHex("00 01 00")), binary.LittleEndian))
	f, e := st.Get("f")
	require.NoError(e)
	assert.Equal(uint64(0x400000), f)
	assert.Less(f, uint64(1)<<23)
	// whatever Read stores, Set must accept back
	assert.NoError(st.Set("f", f))
}

func TestLittleEndianValueRoundTrip(t *testing.T) {
	assert, require := makeAR(t)

	rnd := rand.New(rand.NewSource(2))
	var b bitfield.Builder
	schema, e := b.Add(23, "f").Apply()
	require.NoError(e)

	for i := 0; i < 100; i++ {
		want := rnd.Uint64() & (1<<23 - 1)
		st := schema.New()
		require.NoError(st.Set("f", want))
		var buf bytes.Buffer
		require.NoError(st.Write(&buf, binary.LittleEndian))

		back := schema.New()
		require.NoError(back.Read(bytes.NewReader(buf.Bytes()), binary.LittleEndian))
		got, e := back.Get("f")
		require.NoError(e)
		assert.Equal(want, got, "value=%#x stream=% X", want, buf.Bytes())
	}
}

func TestGetBeforeRead(t *testing.T) {
	assert, require := makeAR(t)

	st := mustApply(t).New()
	offset, e := st.Get("offset")
	require.NoError(e)
	assert.Equal(uint64(0), offset)
}

func TestUnknownField(t *testing.T) {
	assert, _ := makeAR(t)

	st := mustApply(t).New()
	_, e := st.Get("nonexistent")
	assert.ErrorIs(e, bindata.ErrOutOfRange)
	assert.ErrorIs(st.Set("nonexistent", 1), bindata.ErrOutOfRange)
}

func TestSetRange(t *testing.T) {
	assert, require := makeAR(t)

	st := mustApply(t).New()
	assert.NoError(st.Set("flags", 3))
	assert.ErrorIs(st.Set("flags", 4), bindata.ErrOutOfRange)

	var b bitfield.Builder
	schema, e := b.Add(64, "wide").Apply()
	require.NoError(e)
	wide := schema.New()
	assert.NoError(wide.Set("wide", math.MaxUint64))
}

func TestShortStream(t *testing.T) {
	assert, _ := makeAR(t)

	st := mustApply(t).New()
	e := st.Read(bytes.NewReader([]byte{0xAB, 0xCD}), binary.BigEndian)
	assert.ErrorIs(e, io.ErrUnexpectedEOF)
	e = st.Read(bytes.NewReader(nil), binary.BigEndian)
	assert.ErrorIs(e, io.ErrUnexpectedEOF)
}

func TestFieldSpansBytes(t *testing.T) {
	assert, require := makeAR(t)

	// a 12-bit field straddling two bytes, preceded by 4 bits
	var b bitfield.Builder
	schema, e := b.Add(4, "hi").Add(12, "lo").Apply()
	require.NoError(e)

	st := schema.New()
	require.NoError(st.Read(bytes.NewReader(testenv.BytesFromHex("AB CD")), binary.BigEndian))
	hi, e := st.Get("hi")
	require.NoError(e)
	assert.Equal(uint64(0xA), hi)
	lo, e := st.Get("lo")
	require.NoError(e)
	assert.Equal(uint64(0xBCD), lo)
}
