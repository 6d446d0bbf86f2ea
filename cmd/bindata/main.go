// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bindata inspects binary structured data using the codec packages of
// this module: it decodes BER-encoded universal values from their content
// octets and unpacks ad-hoc bit-field layouts.
package main

import (
	"encoding/hex"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/PenguinOwl/bindata/internal/logging"
)

var logger = logging.New("bindata")

var app = &cli.App{
	Name:  "bindata",
	Usage: "Inspect BER values and bit-field layouts.",
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

// hexArg decodes a hexadecimal command line argument, ignoring spaces.
func hexArg(s string) ([]byte, error) {
	return hex.DecodeString(strings.ReplaceAll(s, " ", ""))
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	if e := app.Run(os.Args); e != nil {
		logger.Fatal("command failed", zap.Error(e))
	}
}
