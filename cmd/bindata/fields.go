// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/PenguinOwl/bindata/bitfield"
)

func init() {
	defineCommand(&cli.Command{
		Name:      "fields",
		Usage:     "Unpack a bit-field layout from hex input.",
		ArgsUsage: "HEX",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "layout",
				Usage:    "comma-separated `width:name` field declarations",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "little",
				Usage: "assemble multi-byte field values little-endian",
			},
		},
		Action: func(c *cli.Context) error {
			schema, e := parseLayout(c.String("layout"))
			if e != nil {
				return e
			}
			data, e := hexArg(c.Args().First())
			if e != nil {
				return e
			}
			order := binary.ByteOrder(binary.BigEndian)
			if c.Bool("little") {
				order = binary.LittleEndian
			}
			logger.Debug("unpacking fields",
				zap.Int("bits", schema.NumBits()),
				zap.Int("size", schema.Size()),
				zap.Int("input-len", len(data)),
			)

			st := schema.New()
			if e := st.Read(bytes.NewReader(data), order); e != nil {
				return e
			}
			for _, f := range schema.Fields() {
				v, e := st.Get(f.Name)
				if e != nil {
					return e
				}
				fmt.Printf("%s = %d\n", f.Name, v)
			}
			return nil
		},
	})
}

// parseLayout builds a schema from comma-separated width:name declarations.
func parseLayout(layout string) (*bitfield.Schema, error) {
	var b bitfield.Builder
	for _, decl := range strings.Split(layout, ",") {
		width, name, ok := strings.Cut(decl, ":")
		if !ok {
			return nil, fmt.Errorf("malformed field declaration %q", decl)
		}
		w, e := strconv.Atoi(strings.TrimSpace(width))
		if e != nil {
			return nil, fmt.Errorf("malformed field width in %q: %w", decl, e)
		}
		b.Add(w, strings.TrimSpace(name))
	}
	return b.Apply()
}
