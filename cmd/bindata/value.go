// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/PenguinOwl/bindata"
	"github.com/PenguinOwl/bindata/ber"
)

func init() {
	defineCommand(&cli.Command{
		Name:      "value",
		Usage:     "Decode a universal BER value from its hex content octets.",
		ArgsUsage: "HEX",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:     "tag",
				Usage:    "universal tag `number` of the value",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			payload, e := hexArg(c.Args().First())
			if e != nil {
				return e
			}
			tag := c.Uint("tag")
			v := ber.NewValue(bindata.Universal(tag), payload)
			logger.Debug("decoding value",
				zap.Stringer("tag", v.Tag()),
				zap.Int("len", v.Len()),
			)

			switch tag {
			case bindata.TagBoolean:
				b, e := v.Bool()
				if e != nil {
					return e
				}
				fmt.Println(b)
			case bindata.TagInteger:
				i, e := v.Int64()
				if e != nil {
					return e
				}
				fmt.Println(i)
			case bindata.TagOID:
				s, e := v.ObjectID()
				if e != nil {
					return e
				}
				fmt.Println(s)
			case bindata.TagOctetString:
				s, e := v.OctetString()
				if e != nil {
					return e
				}
				fmt.Println(s)
			case bindata.TagUTF8String, bindata.TagCharacterString,
				bindata.TagPrintableString, bindata.TagIA5String:
				s, e := v.Text()
				if e != nil {
					return e
				}
				fmt.Println(s)
			case bindata.TagBitString:
				bits, e := v.BitString()
				if e != nil {
					return e
				}
				fmt.Printf("% X\n", bits)
			default:
				return fmt.Errorf("no decoder for %s", bindata.Universal(tag))
			}
			return nil
		},
	})
}
