// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/ava-labs/aliassampler/cmd/aliassample/sample"
)

func main() {
	if err := sample.Command().Execute(); err != nil {
		os.Exit(1)
	}
}
